package entities

// Difficulty filters the fetched question pool.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question count bounds accepted by the trivia API.
const (
	MinQuestionCount = 5
	MaxQuestionCount = 20
)

// ParseDifficulty maps a string onto a known difficulty, falling back to
// medium for anything unrecognized.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s)
	default:
		return DifficultyMedium
	}
}

// ClampQuestionCount forces n into the accepted [5, 20] range.
func ClampQuestionCount(n int) int {
	if n < MinQuestionCount {
		return MinQuestionCount
	}
	if n > MaxQuestionCount {
		return MaxQuestionCount
	}
	return n
}

// QuizSetup holds the user's pending quiz configuration before a session
// is started: which category labels are ticked, the difficulty and the
// question count.
type QuizSetup struct {
	Categories []string // selected labels, in selection order
	Difficulty Difficulty
	Count      int
	Pending    bool // a fetch for this setup is outstanding; the setup is frozen
}

// NewQuizSetup creates a setup with the given defaults applied.
func NewQuizSetup(difficulty Difficulty, count int) *QuizSetup {
	return &QuizSetup{
		Difficulty: difficulty,
		Count:      ClampQuestionCount(count),
	}
}

// ToggleCategory adds the label to the selection, or removes it if it is
// already selected.
func (s *QuizSetup) ToggleCategory(label string) {
	for i, c := range s.Categories {
		if c == label {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return
		}
	}
	s.Categories = append(s.Categories, label)
}

// HasCategory reports whether the label is currently selected.
func (s *QuizSetup) HasCategory(label string) bool {
	for _, c := range s.Categories {
		if c == label {
			return true
		}
	}
	return false
}
