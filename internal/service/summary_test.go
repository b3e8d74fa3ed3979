package service

import (
	"errors"
	"testing"

	"github.com/kevfromglasgow/quiz/internal/domain/entities"
)

func startedSession(t *testing.T) *entities.QuizSession {
	t.Helper()

	session := entities.NewQuizSession()
	err := session.Start([]entities.Question{
		{ID: 0, Text: "First?", CorrectAnswer: "A", IncorrectAnswers: []string{"B", "C"}, Options: []string{"B", "A", "C"}},
		{ID: 1, Text: "Second?", CorrectAnswer: "X", IncorrectAnswers: []string{"Y"}, Options: []string{"X", "Y"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return session
}

func TestSummarizeBeforeFinished(t *testing.T) {
	session := startedSession(t)

	if _, err := Summarize(session); !errors.Is(err, entities.ErrNotFinished) {
		t.Fatalf("Summarize on active session error = %v, want ErrNotFinished", err)
	}
}

func TestSummarizeReview(t *testing.T) {
	session := startedSession(t)
	if _, err := session.SubmitAnswer("A"); err != nil {
		t.Fatal(err)
	}
	if _, err := session.SubmitAnswer("Y"); err != nil {
		t.Fatal(err)
	}

	summary, err := Summarize(session)
	if err != nil {
		t.Fatal(err)
	}

	if summary.FinalScore != 1 || summary.TotalQuestions != 2 {
		t.Errorf("score = %d/%d, want 1/2", summary.FinalScore, summary.TotalQuestions)
	}
	if len(summary.Review) != 2 {
		t.Fatalf("len(review) = %d, want 2", len(summary.Review))
	}

	if !summary.Review[0].IsCorrect {
		t.Error("review[0] should be correct")
	}
	if summary.Review[1].IsCorrect {
		t.Error("review[1] should be incorrect")
	}
	if summary.Review[1].UserChoice != "Y" || summary.Review[1].CorrectAnswer != "X" {
		t.Errorf("review[1] = %+v", summary.Review[1])
	}
	if summary.Review[0].QuestionText != "First?" || summary.Review[1].QuestionText != "Second?" {
		t.Error("review must be in question order")
	}
}

func TestSummarizeHandlesMissingAnswer(t *testing.T) {
	session := startedSession(t)
	if _, err := session.SubmitAnswer("A"); err != nil {
		t.Fatal(err)
	}
	if _, err := session.SubmitAnswer("X"); err != nil {
		t.Fatal(err)
	}

	// The normal flow always records an answer per question; a summary
	// must still cope with a hole.
	delete(session.Answers, 1)

	summary, err := Summarize(session)
	if err != nil {
		t.Fatal(err)
	}

	entry := summary.Review[1]
	if entry.Answered {
		t.Error("missing record should report an absent choice")
	}
	if entry.UserChoice != "" {
		t.Errorf("user choice = %q, want empty", entry.UserChoice)
	}
	if entry.IsCorrect {
		t.Error("missing record must count as incorrect")
	}
}
