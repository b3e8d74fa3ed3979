package entities

import (
	"errors"
	"time"
)

// Session sequencing errors.
var (
	ErrInvalidStart = errors.New("cannot start a quiz without questions")
	ErrNotActive    = errors.New("quiz session is not active")
	ErrNotFinished  = errors.New("quiz session is not finished")
)

// SessionStatus represents the lifecycle state of a quiz session.
type SessionStatus string

const (
	StatusNotStarted SessionStatus = "not_started"
	StatusInProgress SessionStatus = "in_progress"
	StatusFinished   SessionStatus = "finished"
)

// AnswerRecord captures a single submitted answer.
type AnswerRecord struct {
	QuestionIndex int       // 0-based index of the answered question
	UserChoice    string    // what the user picked
	CorrectAnswer string    // what the correct answer was
	IsCorrect     bool      // whether the two matched
	AnsweredAt    time.Time // timestamp when the answer was submitted
}

// QuizSession is one complete run through a fixed question list.
// All operations are synchronous; a session is owned by a single chat
// and must not be shared across concurrent control flows.
type QuizSession struct {
	Questions    []Question            // fixed once Start succeeds
	CurrentIndex int                   // 0-based, advances on every submit
	Score        int                   // count of correct answers so far
	Answers      map[int]*AnswerRecord // keyed by question index
	Status       SessionStatus
	StartedAt    time.Time
	CompletedAt  *time.Time // set when the last question is answered
}

// NewQuizSession creates an empty session in the NotStarted state.
func NewQuizSession() *QuizSession {
	return &QuizSession{
		Answers: make(map[int]*AnswerRecord),
		Status:  StatusNotStarted,
	}
}

// Start begins a run over the given questions. The previous run, if any,
// is discarded. Returns ErrInvalidStart when questions is empty.
func (s *QuizSession) Start(questions []Question) error {
	if len(questions) == 0 {
		return ErrInvalidStart
	}

	s.Questions = questions
	s.CurrentIndex = 0
	s.Score = 0
	s.Answers = make(map[int]*AnswerRecord, len(questions))
	s.Status = StatusInProgress
	s.StartedAt = time.Now()
	s.CompletedAt = nil

	return nil
}

// CurrentQuestion returns the question awaiting an answer.
func (s *QuizSession) CurrentQuestion() (*Question, error) {
	if s.Status != StatusInProgress {
		return nil, ErrNotActive
	}
	return &s.Questions[s.CurrentIndex], nil
}

// SubmitAnswer records choice for the current question, updates the score
// and advances to the next question. The returned record describes the
// question just answered, not the new current index. Any string is
// accepted as a choice; one that is not among the options simply scores
// as incorrect, so a desynced UI cannot wedge the session.
func (s *QuizSession) SubmitAnswer(choice string) (*AnswerRecord, error) {
	if s.Status != StatusInProgress {
		return nil, ErrNotActive
	}

	q := s.Questions[s.CurrentIndex]

	record := &AnswerRecord{
		QuestionIndex: s.CurrentIndex,
		UserChoice:    choice,
		CorrectAnswer: q.CorrectAnswer,
		IsCorrect:     choice == q.CorrectAnswer,
		AnsweredAt:    time.Now(),
	}
	s.Answers[s.CurrentIndex] = record

	if record.IsCorrect {
		s.Score++
	}

	s.CurrentIndex++
	if s.CurrentIndex == len(s.Questions) {
		s.Status = StatusFinished
		now := time.Now()
		s.CompletedAt = &now
	}

	return record, nil
}

// Progress returns how many questions have been answered and how many
// the session holds in total.
func (s *QuizSession) Progress() (answered, total int) {
	return len(s.Answers), len(s.Questions)
}

// Reset returns the session to the NotStarted state from any state.
func (s *QuizSession) Reset() {
	s.Questions = nil
	s.CurrentIndex = 0
	s.Score = 0
	s.Answers = make(map[int]*AnswerRecord)
	s.Status = StatusNotStarted
	s.StartedAt = time.Time{}
	s.CompletedAt = nil
}
