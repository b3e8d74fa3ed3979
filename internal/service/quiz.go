package service

import (
	"context"
	"fmt"

	"github.com/kevfromglasgow/quiz/internal/domain/entities"
	"github.com/kevfromglasgow/quiz/internal/trivia"
)

// QuizService builds quiz sessions: it validates the setup, fetches raw
// questions, normalizes them and starts a session over the result.
type QuizService struct {
	fetcher    QuestionFetcher
	normalizer *Normalizer
}

// NewQuizService creates a QuizService.
func NewQuizService(fetcher QuestionFetcher, normalizer *Normalizer) *QuizService {
	return &QuizService{
		fetcher:    fetcher,
		normalizer: normalizer,
	}
}

// StartQuiz fetches questions matching the setup and returns a session
// in progress over them. An empty category selection fails with
// ErrInvalidStart before any request is made. Fetch failures surface as
// the trivia package sentinels; the caller decides how to report them
// and the user may simply retry.
func (s *QuizService) StartQuiz(ctx context.Context, setup *entities.QuizSetup) (*entities.QuizSession, error) {
	categoryIDs := trivia.CategoryIDs(setup.Categories)
	if len(categoryIDs) == 0 {
		return nil, entities.ErrInvalidStart
	}

	limit := entities.ClampQuestionCount(setup.Count)

	raws, err := s.fetcher.Fetch(ctx, categoryIDs, string(setup.Difficulty), limit)
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}

	questions := make([]entities.Question, 0, len(raws))
	for i, raw := range raws {
		questions = append(questions, s.normalizer.Normalize(i, raw))
	}

	session := entities.NewQuizSession()
	if err := session.Start(questions); err != nil {
		return nil, err
	}

	return session, nil
}
