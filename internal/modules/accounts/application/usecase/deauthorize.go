package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sduiGateway/internal/modules/accounts/application/port"
)

// DeauthorizeUseCase removes the active session so the mobile application
// becomes effectively unsigned. Clients drop the token once deauthorized.
type DeauthorizeUseCase struct {
	Sessions port.SessionStore
}

func NewDeauthorizeUseCase(sessions port.SessionStore) *DeauthorizeUseCase {
	return &DeauthorizeUseCase{Sessions: sessions}
}

func (uc *DeauthorizeUseCase) Execute(ctx context.Context, sessionToken string) error {
	token := strings.TrimSpace(sessionToken)
	if token == "" {
		return fmt.Errorf("%w: empty token", port.ErrSessionNotFound)
	}
	if err := uc.Sessions.DeleteByToken(ctx, token); err != nil {
		slog.Warn("deauthorize failed", slog.Any("error", err))
		return err
	}
	slog.Info("session revoked")
	return nil
}
