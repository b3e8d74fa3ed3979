package service

import (
	"github.com/kevfromglasgow/quiz/internal/domain/entities"
)

// ReviewEntry is one line of the post-quiz breakdown.
type ReviewEntry struct {
	QuestionText  string
	UserChoice    string // empty when the question was never answered
	Answered      bool
	CorrectAnswer string
	IsCorrect     bool
}

// Summary is the final result of a finished quiz session.
type Summary struct {
	FinalScore     int
	TotalQuestions int
	Review         []ReviewEntry // in question order
}

// Summarize derives the final score and per-question review from a
// finished session. It has no side effects on the session. A question
// with no recorded answer reports an absent choice and counts as
// incorrect; the normal flow never produces one, but the summary must
// not trust that.
func Summarize(session *entities.QuizSession) (*Summary, error) {
	if session.Status != entities.StatusFinished {
		return nil, entities.ErrNotFinished
	}

	review := make([]ReviewEntry, 0, len(session.Questions))
	for i, q := range session.Questions {
		entry := ReviewEntry{
			QuestionText:  q.Text,
			CorrectAnswer: q.CorrectAnswer,
		}

		if record, ok := session.Answers[i]; ok {
			entry.UserChoice = record.UserChoice
			entry.Answered = true
			entry.IsCorrect = record.IsCorrect
		}

		review = append(review, entry)
	}

	return &Summary{
		FinalScore:     session.Score,
		TotalQuestions: len(session.Questions),
		Review:         review,
	}, nil
}
