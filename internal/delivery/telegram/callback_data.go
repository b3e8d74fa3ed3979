package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionSetup = "setup"
	actionQuiz  = "quiz"
)

// Setup sub-actions.
const (
	setupCategory   = "cat"
	setupDifficulty = "diff"
	setupCount      = "count"
	setupStart      = "start"
)

// Quiz sub-actions.
const (
	quizAnswer = "answer"
	quizAgain  = "again"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildCategoryCallback builds callback data for toggling a category label.
func buildCategoryCallback(label string) string {
	return callbackData{
		Action: actionSetup,
		Params: []string{setupCategory, label},
	}.encode()
}

// buildDifficultyCallback builds callback data for picking a difficulty.
func buildDifficultyCallback(difficulty string) string {
	return callbackData{
		Action: actionSetup,
		Params: []string{setupDifficulty, difficulty},
	}.encode()
}

// buildCountCallback builds callback data for picking a question count.
func buildCountCallback(count int) string {
	return callbackData{
		Action: actionSetup,
		Params: []string{setupCount, strconv.Itoa(count)},
	}.encode()
}

// buildStartCallback builds callback data for the start quiz button.
func buildStartCallback() string {
	return callbackData{
		Action: actionSetup,
		Params: []string{setupStart},
	}.encode()
}

// buildAnswerCallback builds callback data for answering a quiz question.
// The question index lets the handler drop taps on an already-answered
// message.
func buildAnswerCallback(questionIndex, optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			strconv.Itoa(questionIndex),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

// buildPlayAgainCallback builds callback data for the play again button.
func buildPlayAgainCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizAgain},
	}.encode()
}
