package session

import (
	"context"
	"sync"

	"portfolio-be/internal/models"
)

type sessionState struct {
	identityToken string
	history       []models.ChatTurn
}

// memoryStore keeps sessions in process memory. Used when Redis is not
// configured or unreachable; state is lost on restart.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]*sessionState)}
}

func (s *memoryStore) IdentityToken(_ context.Context, sid string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.sessions[sid]; ok {
		return state.identityToken
	}
	return ""
}

func (s *memoryStore) SetIdentityToken(_ context.Context, sid, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(sid).identityToken = token
	return nil
}

func (s *memoryStore) History(_ context.Context, sid string) []models.ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.sessions[sid]; ok {
		return state.history
	}
	return nil
}

func (s *memoryStore) SetHistory(_ context.Context, sid string, history []models.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state(sid).history = history
	return nil
}

func (s *memoryStore) Clear(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

// state must be called with the write lock held.
func (s *memoryStore) state(sid string) *sessionState {
	if existing, ok := s.sessions[sid]; ok {
		return existing
	}
	created := &sessionState{}
	s.sessions[sid] = created
	return created
}
