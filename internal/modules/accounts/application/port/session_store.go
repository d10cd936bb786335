package port

import (
	"context"
	"errors"

	"sduiGateway/internal/modules/accounts/domain"
)

var (
	// ErrSessionNotFound is returned when no session matches the given token.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionStoreUnavailable marks a session store I/O failure.
	ErrSessionStoreUnavailable = errors.New("session store unavailable")
)

// SessionStore persists opaque session tokens. Expired sessions are still
// returned by FindByToken so callers can distinguish an expired session from
// an unknown token.
type SessionStore interface {
	Create(ctx context.Context, session domain.Session) error
	FindByToken(ctx context.Context, token string) (domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}
