// messages.go contains message templates for Telegram.

package telegram

// User-facing messages.
const (
	msgWelcome = "Welcome to the Sports Quiz Challenge! 🏆\n\n" +
		"Use /quiz to pick your categories, difficulty and question count, then hit Start."
	msgHelp = "Commands:\n\n" +
		"/quiz — set up and start a new quiz\n" +
		"/cancel — abandon the current quiz\n" +
		"/help — show this message"
	msgUnknownCommand  = "Unknown command. Use /quiz to start a quiz or /help for the full list."
	msgNothingToCancel = "There is no quiz in progress."
	msgCancelled       = "Quiz cancelled. Use /quiz whenever you want another go."
	msgNoActiveQuiz    = "That quiz is over. Use /quiz to start a new one."
)

// Error messages.
const (
	msgNoCategories     = "Please select at least one category first."
	msgFetching         = "Fetching questions…"
	msgFetchFailed      = "Couldn't fetch questions from the trivia API. Please try again."
	msgDecodeFailed     = "The trivia API returned something unexpected. Please try again later."
	msgNoQuestions      = "No questions matched your settings. Try a different difficulty."
	msgInternalError    = "Something went wrong. Please try again."
	msgSetupUnavailable = "Quiz setup expired. Use /quiz to open it again."
)
