package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kevfromglasgow/quiz/internal/domain/entities"
	"github.com/kevfromglasgow/quiz/internal/service"
)

// sendQuestion renders the session's current question with one answer
// button per option. Options were shuffled once at normalization time;
// rendering never reorders them.
func (h *Handler) sendQuestion(chatID int64, session *entities.QuizSession) {
	q, err := session.CurrentQuestion()
	if err != nil {
		h.logger.Error("no current question to send",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return
	}

	answered, total := session.Progress()
	text := fmt.Sprintf(
		"<b>Question %d of %d</b>\n\n%s",
		answered+1, total, esc(q.Text),
	)
	keyboard := buildAnswerKeyboard(q, session.CurrentIndex)

	// The trivia API rarely provides images, but when it does the
	// question goes out as a photo caption.
	if q.HasImage() {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(q.ImageURL))
		photo.Caption = text
		photo.ParseMode = tgbotapi.ModeHTML
		photo.ReplyMarkup = keyboard
		h.send(photo)
		return
	}

	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	h.send(msg)
}

func (h *Handler) handleQuizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) {
	if len(data.Params) == 0 {
		h.answerCallback(cb.ID, "")
		return
	}

	switch data.Params[0] {
	case quizAnswer:
		h.handleAnswer(cb, data)
	case quizAgain:
		h.answerCallback(cb.ID, "")
		_ = h.withErrorHandling(h.openSetupHandler())(ctx, cb.Message.Chat.ID)
	default:
		h.answerCallback(cb.ID, "")
	}
}

func (h *Handler) handleAnswer(cb *tgbotapi.CallbackQuery, data callbackData) {
	chatID := cb.Message.Chat.ID

	if len(data.Params) < 3 {
		h.logger.Debug("invalid answer callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	questionIndex, err1 := strconv.Atoi(data.Params[1])
	optionIndex, err2 := strconv.Atoi(data.Params[2])
	if err1 != nil || err2 != nil {
		h.logger.Debug("invalid answer callback values", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	session, ok := h.sessions.Get(chatID)
	if !ok || session.Status != entities.StatusInProgress {
		h.answerCallback(cb.ID, msgNoActiveQuiz)
		return
	}

	// A tap on an already-answered question's message must not advance
	// the session again.
	if questionIndex != session.CurrentIndex {
		h.answerCallback(cb.ID, "")
		return
	}

	q, err := session.CurrentQuestion()
	if err != nil {
		h.answerCallback(cb.ID, msgNoActiveQuiz)
		return
	}

	if optionIndex < 0 || optionIndex >= len(q.Options) {
		h.logger.Debug("option index out of range",
			zap.String("data", cb.Data),
			zap.Int("options", len(q.Options)),
		)
		h.answerCallback(cb.ID, "")
		return
	}

	record, err := session.SubmitAnswer(q.Options[optionIndex])
	if err != nil {
		h.answerCallback(cb.ID, msgNoActiveQuiz)
		return
	}

	h.answerCallback(cb.ID, "")
	h.showAnswerFeedback(cb, q, record)

	if session.Status == entities.StatusFinished {
		h.sendResults(chatID, session)
		return
	}

	h.sendQuestion(chatID, session)
}

// showAnswerFeedback rewrites the answered question's message into
// immediate feedback, dropping its keyboard.
func (h *Handler) showAnswerFeedback(cb *tgbotapi.CallbackQuery, q *entities.Question, record *entities.AnswerRecord) {
	var feedback string
	if record.IsCorrect {
		feedback = fmt.Sprintf("✅ <b>Correct!</b> %s", esc(record.UserChoice))
	} else {
		feedback = fmt.Sprintf(
			"❌ <b>Incorrect.</b> You picked %s.\nThe correct answer was <b>%s</b>.",
			esc(record.UserChoice), esc(record.CorrectAnswer),
		)
	}

	text := fmt.Sprintf("%s\n\n%s", esc(q.Text), feedback)

	// Photo questions carry the text in a caption, which needs its own
	// edit config.
	if q.HasImage() {
		edit := tgbotapi.NewEditMessageCaption(cb.Message.Chat.ID, cb.Message.MessageID, text)
		edit.ParseMode = tgbotapi.ModeHTML
		h.send(edit)
		return
	}

	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	h.send(edit)
}

// sendResults renders the final score and the per-question review.
func (h *Handler) sendResults(chatID int64, session *entities.QuizSession) {
	summary, err := service.Summarize(session)
	if err != nil {
		h.logger.Error("failed to summarize session",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return
	}

	var sb strings.Builder
	sb.WriteString("🎉 <b>Quiz Over!</b>\n\n")
	sb.WriteString(fmt.Sprintf("Your final score: <b>%d / %d</b>\n\n", summary.FinalScore, summary.TotalQuestions))
	sb.WriteString("<b>Review your answers:</b>\n")

	for i, entry := range summary.Review {
		mark := "❌"
		if entry.IsCorrect {
			mark = "✅"
		}

		choice := "—"
		if entry.Answered {
			choice = esc(entry.UserChoice)
		}

		sb.WriteString(fmt.Sprintf("\n%s <b>%d.</b> %s\n", mark, i+1, esc(entry.QuestionText)))
		sb.WriteString(fmt.Sprintf("Your answer: %s\n", choice))
		if !entry.IsCorrect {
			sb.WriteString(fmt.Sprintf("Correct answer: %s\n", esc(entry.CorrectAnswer)))
		}
	}

	msg := newHTMLMessage(chatID, sb.String())
	msg.ReplyMarkup = buildResultKeyboard()
	h.send(msg)

	h.sessions.Delete(chatID)
}
