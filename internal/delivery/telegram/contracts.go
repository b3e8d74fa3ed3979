package telegram

import (
	"context"

	"github.com/kevfromglasgow/quiz/internal/domain/entities"
)

type QuizService interface {
	StartQuiz(ctx context.Context, setup *entities.QuizSetup) (*entities.QuizSession, error)
}

type SessionStore interface {
	Store(chatID int64, session *entities.QuizSession)
	Get(chatID int64) (*entities.QuizSession, bool)
	Delete(chatID int64)
}

type SetupStore interface {
	Store(chatID int64, setup *entities.QuizSetup)
	Get(chatID int64) (*entities.QuizSetup, bool)
	Delete(chatID int64)
}
