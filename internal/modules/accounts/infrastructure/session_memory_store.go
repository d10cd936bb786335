package infrastructure

import (
	"context"
	"sync"

	"sduiGateway/internal/modules/accounts/application/port"
	"sduiGateway/internal/modules/accounts/domain"
)

// SessionMemoryStore keeps sessions in process memory. Used for local runs
// without a database and for tests; sessions vanish on restart.
type SessionMemoryStore struct {
	mu      sync.RWMutex
	byToken map[string]domain.Session
}

func NewSessionMemoryStore() *SessionMemoryStore {
	return &SessionMemoryStore{byToken: make(map[string]domain.Session)}
}

func (s *SessionMemoryStore) Create(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[session.Token] = session
	return nil
}

func (s *SessionMemoryStore) FindByToken(_ context.Context, token string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.byToken[token]
	if !ok {
		return domain.Session{}, port.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionMemoryStore) DeleteByToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byToken[token]; !ok {
		return port.ErrSessionNotFound
	}
	delete(s.byToken, token)
	return nil
}

var _ port.SessionStore = (*SessionMemoryStore)(nil)
