package entities

// Question is a fully normalized quiz question ready for presentation.
// Options are shuffled exactly once when the question is built and keep
// that order for the lifetime of the instance.
type Question struct {
	ID               int      // ordinal assigned at normalization time
	Text             string   // decoded question text
	CorrectAnswer    string   // decoded correct answer
	IncorrectAnswers []string // decoded incorrect answers, at least one
	Options          []string // shuffled union of incorrect answers and the correct one
	ImageURL         string   // optional illustration URL, empty when absent
}

// HasImage reports whether the question carries an illustration.
func (q Question) HasImage() bool {
	return q.ImageURL != ""
}
