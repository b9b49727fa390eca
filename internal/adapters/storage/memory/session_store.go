package memory

import (
	"sync"

	"github.com/parksandresorts/backster-agent/internal/domain"
)

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*domain.Conversation
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.SessionID]*domain.Conversation),
	}
}

func (s *SessionStore) Get(id domain.SessionID) (*domain.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return conv, nil
}

func (s *SessionStore) Put(conv *domain.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[conv.ID] = conv
	return nil
}
