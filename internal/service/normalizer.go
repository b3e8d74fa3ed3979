package service

import (
	"html"
	"math/rand"
	"time"

	"github.com/kevfromglasgow/quiz/internal/domain/entities"
	"github.com/kevfromglasgow/quiz/internal/trivia"
)

// Normalizer turns raw API questions into presentation-ready ones:
// HTML entities decoded, options built and shuffled.
type Normalizer struct {
	rng *rand.Rand
}

// NewNormalizer creates a Normalizer with a time-seeded rng.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithSeed(time.Now().UnixNano())
}

// NewNormalizerWithSeed creates a Normalizer with a fixed seed.
// Useful in tests where the option order must be reproducible.
func NewNormalizerWithSeed(seed int64) *Normalizer {
	return &Normalizer{rng: rand.New(rand.NewSource(seed))}
}

// Normalize builds a Question with the given ordinal from a raw API
// question. Options are shuffled here, exactly once; re-rendering the
// returned question must never reshuffle them.
func (n *Normalizer) Normalize(id int, raw trivia.RawQuestion) entities.Question {
	incorrect := make([]string, 0, len(raw.IncorrectAnswers))
	for _, a := range raw.IncorrectAnswers {
		incorrect = append(incorrect, html.UnescapeString(a))
	}

	correct := html.UnescapeString(raw.CorrectAnswer)

	options := make([]string, 0, len(incorrect)+1)
	options = append(options, incorrect...)
	options = append(options, correct)

	n.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return entities.Question{
		ID:               id,
		Text:             html.UnescapeString(raw.Question.Text),
		CorrectAnswer:    correct,
		IncorrectAnswers: incorrect,
		Options:          options,
		ImageURL:         raw.Image,
	}
}
