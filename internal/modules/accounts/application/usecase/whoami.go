package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"sduiGateway/internal/modules/accounts/application/port"
	"sduiGateway/internal/modules/accounts/domain"
)

// WhoamiUseCase derives the three-state identity of a request from its
// optional bearer session token.
type WhoamiUseCase struct {
	Sessions port.SessionStore
	now      func() time.Time
}

func NewWhoamiUseCase(sessions port.SessionStore) *WhoamiUseCase {
	return &WhoamiUseCase{Sessions: sessions, now: time.Now}
}

// Execute maps the token onto an identity: no token is anonymous, a valid
// session is authorized, an expired session is unauthorized but identified,
// and an unrecognized token is unauthorized without an identifier. Only a
// store failure is an error.
func (uc *WhoamiUseCase) Execute(ctx context.Context, sessionToken string) (domain.Identity, error) {
	token := strings.TrimSpace(sessionToken)
	if token == "" {
		return domain.AnonymousUser(), nil
	}

	session, err := uc.Sessions.FindByToken(ctx, token)
	switch {
	case errors.Is(err, port.ErrSessionNotFound):
		return domain.UnauthorizedUser(""), nil
	case err != nil:
		slog.Error("whoami session lookup failed", slog.Any("error", err))
		return domain.Identity{}, err
	}

	if session.Expired(uc.now().UTC()) {
		return domain.UnauthorizedUser(session.UserID), nil
	}
	return domain.AuthorizedUser(session.UserID), nil
}
