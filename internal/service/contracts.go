package service

import (
	"context"

	"github.com/kevfromglasgow/quiz/internal/trivia"
)

// QuestionFetcher pulls raw questions from the trivia API.
type QuestionFetcher interface {
	Fetch(ctx context.Context, categories []string, difficulty string, limit int) ([]trivia.RawQuestion, error)
}
