package storage

import (
	"sync"

	"github.com/this4dani/crochet-glossary-api/internal/domain/entities"
)

// QuizStorage provides in-memory storage for session questions by session ID.
type QuizStorage struct {
	mu        sync.RWMutex
	questions map[int64][]entities.SessionQuestion
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		questions: make(map[int64][]entities.SessionQuestion),
	}
}

// Store saves a list of questions for a given session ID.
func (s *QuizStorage) Store(sessionID int64, questions []entities.SessionQuestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[sessionID] = questions
}

// Get retrieves the list of questions for a given session ID.
func (s *QuizStorage) Get(sessionID int64) []entities.SessionQuestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questions[sessionID]
}

// Delete removes questions for a given session ID.
func (s *QuizStorage) Delete(sessionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.questions, sessionID)
}
