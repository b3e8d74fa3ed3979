package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionSetup:
		h.handleSetupCallback(ctx, cb, data)
	case actionQuiz:
		h.handleQuizCallback(ctx, cb, data)
	default:
		h.logger.Debug("unknown callback action", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
	}
}
