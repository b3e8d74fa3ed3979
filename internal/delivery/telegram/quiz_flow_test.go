package telegram

import (
	"context"
	"testing"

	"github.com/kevfromglasgow/quiz/internal/domain/entities"
)

func TestAnswerTapAdvancesSession(t *testing.T) {
	h, sessions, _ := newTestHandler(t, &fakeQuizService{})

	session := startedTestSession(t)
	sessions.Store(testChatID, session)

	// First question's options are [B A]; option 1 is the correct "A".
	h.handleCallback(context.Background(), callbackFor(buildAnswerCallback(0, 1)))

	if session.CurrentIndex != 1 {
		t.Fatalf("current index = %d, want 1", session.CurrentIndex)
	}
	if session.Score != 1 {
		t.Errorf("score = %d, want 1", session.Score)
	}
}

func TestStaleAnswerTapIsIgnored(t *testing.T) {
	h, sessions, _ := newTestHandler(t, &fakeQuizService{})

	session := startedTestSession(t)
	sessions.Store(testChatID, session)

	h.handleCallback(context.Background(), callbackFor(buildAnswerCallback(0, 1)))
	if session.CurrentIndex != 1 {
		t.Fatalf("current index = %d, want 1", session.CurrentIndex)
	}

	// A late tap on the already-answered first question's message: its
	// index no longer matches the session's current one, so it must not
	// record anything or advance the session again.
	h.handleCallback(context.Background(), callbackFor(buildAnswerCallback(0, 0)))

	if session.CurrentIndex != 1 {
		t.Errorf("stale tap advanced the session to index %d", session.CurrentIndex)
	}
	if len(session.Answers) != 1 {
		t.Errorf("stale tap recorded an answer: %d records", len(session.Answers))
	}
	if session.Score != 1 {
		t.Errorf("stale tap changed the score to %d", session.Score)
	}

	// The session still accepts the tap that matches the current index.
	// Second question's options are [X Y]; option 0 is the correct "X".
	h.handleCallback(context.Background(), callbackFor(buildAnswerCallback(1, 0)))

	if session.Status != entities.StatusFinished {
		t.Errorf("status = %q, want %q", session.Status, entities.StatusFinished)
	}
	if session.Score != 2 {
		t.Errorf("final score = %d, want 2", session.Score)
	}
	if _, ok := sessions.Get(testChatID); ok {
		t.Error("finished session should be removed from the store after results")
	}
}

func TestAnswerTapOutOfRangeOptionIsIgnored(t *testing.T) {
	h, sessions, _ := newTestHandler(t, &fakeQuizService{})

	session := startedTestSession(t)
	sessions.Store(testChatID, session)

	h.handleCallback(context.Background(), callbackFor(buildAnswerCallback(0, 99)))

	if session.CurrentIndex != 0 || len(session.Answers) != 0 {
		t.Errorf("out-of-range option mutated the session: index=%d answers=%d",
			session.CurrentIndex, len(session.Answers))
	}
}

func TestAnswerTapWithoutSessionIsAcked(t *testing.T) {
	h, _, _ := newTestHandler(t, &fakeQuizService{})

	// Must not panic or send a question; there is nothing to answer.
	h.handleCallback(context.Background(), callbackFor(buildAnswerCallback(0, 0)))
}
