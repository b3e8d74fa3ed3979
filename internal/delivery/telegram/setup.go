package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kevfromglasgow/quiz/internal/domain/entities"
	"github.com/kevfromglasgow/quiz/internal/trivia"
)

const msgSetupHeader = "🏆 <b>Sports Quiz Challenge</b>\n\n" +
	"Tap categories to toggle them, pick a difficulty and a number of questions, then hit Start."

// openSetupHandler opens a fresh quiz setup for the chat, replacing any
// pending one and abandoning an unfinished session.
func (h *Handler) openSetupHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.sessions.Delete(chatID)

		setup := entities.NewQuizSetup(h.defaults.Difficulty, h.defaults.Count)
		// Preselect the first category, as a hint that at least one is required.
		if len(trivia.CategoryLabels) > 0 {
			setup.ToggleCategory(trivia.CategoryLabels[0])
		}
		h.setups.Store(chatID, setup)

		msg := newHTMLMessage(chatID, msgSetupHeader)
		msg.ReplyMarkup = buildSetupKeyboard(setup)
		h.send(msg)

		return nil
	}
}

// cancelHandler abandons the current session and pending setup.
func (h *Handler) cancelHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session, hadSession := h.sessions.Get(chatID)
		_, hadSetup := h.setups.Get(chatID)

		if hadSession {
			session.Reset()
		}
		h.sessions.Delete(chatID)
		h.setups.Delete(chatID)

		if !hadSession && !hadSetup {
			h.send(newPlainMessage(chatID, msgNothingToCancel))
			return nil
		}

		h.send(newPlainMessage(chatID, msgCancelled))
		return nil
	}
}

func (h *Handler) handleSetupCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	chatID := cb.Message.Chat.ID

	setup, ok := h.setups.Get(chatID)
	if !ok {
		h.answerCallback(cb.ID, msgSetupUnavailable)
		return
	}

	// A start must not be re-issued while its fetch is outstanding, so
	// the whole setup freezes until the fetch resolves: every tap,
	// including a repeated Start, is acked and dropped.
	if setup.Pending {
		h.answerCallback(cb.ID, msgFetching)
		return
	}

	if len(data.Params) == 0 {
		h.answerCallback(cb.ID, "")
		return
	}

	switch data.Params[0] {
	case setupCategory:
		if len(data.Params) < 2 {
			h.answerCallback(cb.ID, "")
			return
		}
		setup.ToggleCategory(data.Params[1])
		h.refreshSetupKeyboard(chatID, cb.Message.MessageID, setup)
		h.answerCallback(cb.ID, "")

	case setupDifficulty:
		if len(data.Params) < 2 {
			h.answerCallback(cb.ID, "")
			return
		}
		setup.Difficulty = entities.ParseDifficulty(data.Params[1])
		h.refreshSetupKeyboard(chatID, cb.Message.MessageID, setup)
		h.answerCallback(cb.ID, "")

	case setupCount:
		if len(data.Params) < 2 {
			h.answerCallback(cb.ID, "")
			return
		}
		n, err := strconv.Atoi(data.Params[1])
		if err != nil {
			h.logger.Debug("invalid count in callback", zap.String("data", cb.Data))
			h.answerCallback(cb.ID, "")
			return
		}
		setup.Count = entities.ClampQuestionCount(n)
		h.refreshSetupKeyboard(chatID, cb.Message.MessageID, setup)
		h.answerCallback(cb.ID, "")

	case setupStart:
		h.startQuiz(ctx, cb, setup)

	default:
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) refreshSetupKeyboard(chatID int64, messageID int, setup *entities.QuizSetup) {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, buildSetupKeyboard(setup))
	h.send(edit)
}

// startQuiz kicks off the fetch for the pending setup. The fetch runs in
// its own goroutine so the update loop stays responsive; the setup is
// frozen while the fetch is outstanding, and a result that resolves
// after the chat's pending setup changed is discarded.
func (h *Handler) startQuiz(ctx context.Context, cb *tgbotapi.CallbackQuery, setup *entities.QuizSetup) {
	chatID := cb.Message.Chat.ID

	// Guard-rail: never hit the API with an empty selection.
	if len(setup.Categories) == 0 {
		h.answerCallback(cb.ID, msgNoCategories)
		return
	}

	setup.Pending = true

	h.answerCallback(cb.ID, msgFetching)

	// The goroutine works on its own copy; the stored pointer identifies
	// this particular setup so a stale result can be recognized. The
	// categories slice must be deep-copied, otherwise the copy would
	// share its backing array with the live setup.
	snapshot := *setup
	snapshot.Categories = append([]string(nil), setup.Categories...)

	go func() {
		session, err := h.quizService.StartQuiz(ctx, &snapshot)

		// The user may have cancelled or reopened setup while the fetch
		// ran; neither a session nor an error report belongs to them
		// anymore.
		current, ok := h.setups.Get(chatID)
		if !ok || current != setup {
			h.logger.Debug("discarding stale fetch result",
				zap.Int64("chat_id", chatID),
			)
			return
		}

		if err != nil {
			h.logger.Error("failed to start quiz",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			// Re-arm the setup for another attempt. Storing a fresh
			// copy keeps this goroutine from writing fields the update
			// loop reads.
			retry := snapshot
			retry.Pending = false
			h.setups.Store(chatID, &retry)
			h.sendError(chatID, fetchErrorMessage(err))
			return
		}

		h.setups.Delete(chatID)
		h.sessions.Store(chatID, session)
		h.sendQuestion(chatID, session)
	}()
}

// fetchErrorMessage maps a start failure onto a dismissable user message.
func fetchErrorMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrInvalidStart):
		return msgNoCategories
	case errors.Is(err, trivia.ErrEmpty):
		return msgNoQuestions
	case errors.Is(err, trivia.ErrDecode):
		return msgDecodeFailed
	case errors.Is(err, trivia.ErrTransport):
		return msgFetchFailed
	default:
		return msgInternalError
	}
}
