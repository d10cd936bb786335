package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sduiGateway/internal/modules/accounts/application/port"
	"sduiGateway/internal/modules/accounts/domain"
)

// SessionPgStore persists sessions in Postgres. Expired rows are returned as
// is; expiry interpretation belongs to the caller.
type SessionPgStore struct {
	pool *pgxpool.Pool
}

func NewSessionPgStore(pool *pgxpool.Pool) *SessionPgStore {
	return &SessionPgStore{pool: pool}
}

func (s *SessionPgStore) Create(ctx context.Context, session domain.Session) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO mobile_sessions (id, user_id, token, created_at, expires_at) VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.UserID, session.Token, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("%w: insert session: %v", port.ErrSessionStoreUnavailable, err)
	}
	return nil
}

func (s *SessionPgStore) FindByToken(ctx context.Context, token string) (domain.Session, error) {
	var session domain.Session
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, token, created_at, expires_at FROM mobile_sessions WHERE token = $1`,
		token).Scan(&session.ID, &session.UserID, &session.Token, &session.CreatedAt, &session.ExpiresAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.Session{}, port.ErrSessionNotFound
	case err != nil:
		return domain.Session{}, fmt.Errorf("%w: find session: %v", port.ErrSessionStoreUnavailable, err)
	}
	return session, nil
}

func (s *SessionPgStore) DeleteByToken(ctx context.Context, token string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM mobile_sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("%w: delete session: %v", port.ErrSessionStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrSessionNotFound
	}
	return nil
}

var _ port.SessionStore = (*SessionPgStore)(nil)
