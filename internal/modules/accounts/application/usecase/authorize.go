package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"sduiGateway/internal/modules/accounts/application/port"
	"sduiGateway/internal/modules/accounts/domain"
)

// userIDNamespace makes user ids a pure function of the federated subject, so
// a returning user maps onto the same id without a separate registration step.
// There is no sign-in versus sign-up distinction: every valid identity token
// is either authorized or registered-and-authorized.
var userIDNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// AuthorizeUseCase exchanges a federated identity token for an opaque session
// token with a bounded lifetime.
type AuthorizeUseCase struct {
	Verifier   port.IdentityTokenVerifier
	Sessions   port.SessionStore
	SessionTTL time.Duration
	now        func() time.Time
}

func NewAuthorizeUseCase(verifier port.IdentityTokenVerifier, sessions port.SessionStore, ttl time.Duration) *AuthorizeUseCase {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &AuthorizeUseCase{Verifier: verifier, Sessions: sessions, SessionTTL: ttl, now: time.Now}
}

func (uc *AuthorizeUseCase) Execute(ctx context.Context, identityToken string) (domain.Session, error) {
	if strings.TrimSpace(identityToken) == "" {
		return domain.Session{}, fmt.Errorf("%w: empty token", port.ErrInvalidIdentityToken)
	}

	claims, err := uc.Verifier.Verify(identityToken)
	if err != nil {
		slog.Warn("authorize identity token rejected", slog.Any("error", err))
		return domain.Session{}, err
	}

	token, err := newSessionToken()
	if err != nil {
		return domain.Session{}, err
	}

	now := uc.now().UTC()
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    uuid.NewSHA1(userIDNamespace, []byte(claims.Subject)).String(),
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.SessionTTL),
	}
	if err := uc.Sessions.Create(ctx, session); err != nil {
		slog.Error("authorize session create failed", slog.String("userId", session.UserID), slog.Any("error", err))
		return domain.Session{}, err
	}

	slog.Info("session issued", slog.String("userId", session.UserID), slog.Time("expiresAt", session.ExpiresAt))
	return session, nil
}

// newSessionToken mints 32 random bytes encoded as URL-safe base64. The token
// is opaque on purpose: it carries no claims a client could inspect or forge.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("mint session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
