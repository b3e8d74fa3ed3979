package storage

import (
	"sync"

	"github.com/kevfromglasgow/quiz/internal/domain/entities"
)

// SetupStore provides in-memory storage for pending quiz setups by chat ID.
type SetupStore struct {
	mu     sync.RWMutex
	setups map[int64]*entities.QuizSetup
}

// NewSetupStore creates a new SetupStore.
func NewSetupStore() *SetupStore {
	return &SetupStore{
		setups: make(map[int64]*entities.QuizSetup),
	}
}

// Store saves the setup for a given chat ID, replacing any previous one.
func (s *SetupStore) Store(chatID int64, setup *entities.QuizSetup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setups[chatID] = setup
}

// Get retrieves the setup for a given chat ID.
func (s *SetupStore) Get(chatID int64) (*entities.QuizSetup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	setup, ok := s.setups[chatID]
	return setup, ok
}

// Delete removes the setup for a given chat ID.
func (s *SetupStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.setups, chatID)
}
