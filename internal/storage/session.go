package storage

import (
	"sync"

	"github.com/kevfromglasgow/quiz/internal/domain/entities"
)

// SessionStore provides in-memory storage for quiz sessions by chat ID.
// One chat owns at most one session at a time.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// Store saves the session for a given chat ID, replacing any previous one.
func (s *SessionStore) Store(chatID int64, session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the session for a given chat ID.
func (s *SessionStore) Get(chatID int64) (*entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[chatID]
	return session, ok
}

// Delete removes the session for a given chat ID.
func (s *SessionStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
