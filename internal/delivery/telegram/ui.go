package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kevfromglasgow/quiz/internal/domain/entities"
	"github.com/kevfromglasgow/quiz/internal/trivia"
)

const categoriesPerRow = 2

// buildSetupKeyboard builds the quiz setup keyboard: category toggles,
// difficulty row, question count row and the start button.
func buildSetupKeyboard(setup *entities.QuizSetup) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var row []tgbotapi.InlineKeyboardButton
	for _, label := range trivia.CategoryLabels {
		text := label
		if setup.HasCategory(label) {
			text = "✅ " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(text, buildCategoryCallback(label)))
		if len(row) == categoriesPerRow {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		difficultyButton(entities.DifficultyEasy, setup.Difficulty),
		difficultyButton(entities.DifficultyMedium, setup.Difficulty),
		difficultyButton(entities.DifficultyHard, setup.Difficulty),
	))

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		countButton(5, setup.Count),
		countButton(10, setup.Count),
		countButton(15, setup.Count),
		countButton(20, setup.Count),
	))

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🚀 Start Quiz", buildStartCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

var difficultyLabels = map[entities.Difficulty]string{
	entities.DifficultyEasy:   "Easy",
	entities.DifficultyMedium: "Medium",
	entities.DifficultyHard:   "Hard",
}

func difficultyButton(d, selected entities.Difficulty) tgbotapi.InlineKeyboardButton {
	text := difficultyLabels[d]
	if d == selected {
		text = "• " + text + " •"
	}
	return tgbotapi.NewInlineKeyboardButtonData(text, buildDifficultyCallback(string(d)))
}

func countButton(n, selected int) tgbotapi.InlineKeyboardButton {
	text := fmt.Sprintf("%d", n)
	if n == selected {
		text = fmt.Sprintf("• %d •", n)
	}
	return tgbotapi.NewInlineKeyboardButtonData(text, buildCountCallback(n))
}

// buildAnswerKeyboard builds one button per option for a quiz question.
func buildAnswerKeyboard(q *entities.Question, questionIndex int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range q.Options {
		callback := buildAnswerCallback(questionIndex, i)
		button := tgbotapi.NewInlineKeyboardButtonData(option, callback)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResultKeyboard builds the keyboard for the results screen.
func buildResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play Again", buildPlayAgainCallback()),
		),
	)
}
