package infrastructure

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sduiGateway/internal/modules/accounts/application/port"
)

const verifierSecret = "test-secret"

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestVerifyValidToken(t *testing.T) {
	t.Parallel()

	verifier := NewJWTIdentityVerifier(verifierSecret, "")
	token := signHS256(t, verifierSecret, jwt.MapClaims{
		"sub":   "google:123",
		"email": "a@example.com",
		"name":  "Ada",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "google:123" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if claims.Email != "a@example.com" || claims.Name != "Ada" {
		t.Fatalf("profile claims = %q / %q", claims.Email, claims.Name)
	}
}

func TestVerifyRejections(t *testing.T) {
	t.Parallel()

	verifier := NewJWTIdentityVerifier(verifierSecret, "")
	future := time.Now().Add(time.Hour).Unix()

	cases := []struct {
		name  string
		token string
	}{
		{"empty token", "   "},
		{"garbage", "not-a-jwt"},
		{"wrong secret", signHS256(t, "other-secret", jwt.MapClaims{"sub": "u", "exp": future})},
		{"missing subject", signHS256(t, verifierSecret, jwt.MapClaims{"exp": future})},
		{"expired", signHS256(t, verifierSecret, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()})},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := verifier.Verify(tc.token); !errors.Is(err, port.ErrInvalidIdentityToken) {
				t.Fatalf("expected invalid identity token error, got %v", err)
			}
		})
	}
}

func TestVerifyWithoutConfiguredKey(t *testing.T) {
	t.Parallel()

	verifier := NewJWTIdentityVerifier("", "")
	token := signHS256(t, verifierSecret, jwt.MapClaims{"sub": "u"})
	if _, err := verifier.Verify(token); !errors.Is(err, port.ErrInvalidIdentityToken) {
		t.Fatalf("expected invalid identity token error, got %v", err)
	}
}
