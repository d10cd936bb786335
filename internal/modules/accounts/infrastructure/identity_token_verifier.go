package infrastructure

import (
	"crypto/rsa"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sduiGateway/internal/modules/accounts/application/port"
)

type identityClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTIdentityVerifier validates the signed identity token issued by the
// federated sign-in provider. RS256 with a configured public key is preferred;
// HS256 with a shared secret is the development fallback.
type JWTIdentityVerifier struct {
	secret    []byte
	publicKey *rsa.PublicKey
	now       func() time.Time
}

func NewJWTIdentityVerifier(secret, publicKeyPEM string) *JWTIdentityVerifier {
	v := &JWTIdentityVerifier{secret: []byte(strings.TrimSpace(secret)), now: time.Now}
	if publicKeyPEM != "" {
		if key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM)); err == nil {
			v.publicKey = key
		}
	}
	return v
}

func (v *JWTIdentityVerifier) Verify(token string) (port.IdentityClaims, error) {
	if strings.TrimSpace(token) == "" {
		return port.IdentityClaims{}, fmt.Errorf("%w: empty token", port.ErrInvalidIdentityToken)
	}
	if v.publicKey == nil && len(v.secret) == 0 {
		return port.IdentityClaims{}, fmt.Errorf("%w: verifier key not configured", port.ErrInvalidIdentityToken)
	}

	claims := &identityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if v.publicKey != nil {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v, expected RS256", t.Header["alg"])
			}
			return v.publicKey, nil
		}
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithLeeway(5*time.Second))
	if err != nil {
		return port.IdentityClaims{}, fmt.Errorf("%w: %v", port.ErrInvalidIdentityToken, err)
	}
	if !parsed.Valid {
		return port.IdentityClaims{}, port.ErrInvalidIdentityToken
	}

	if claims.Subject == "" {
		return port.IdentityClaims{}, fmt.Errorf("%w: missing subject", port.ErrInvalidIdentityToken)
	}
	if exp := claims.ExpiresAt; exp != nil && !exp.Time.After(v.now()) {
		return port.IdentityClaims{}, fmt.Errorf("%w: token expired", port.ErrInvalidIdentityToken)
	}

	return port.IdentityClaims{Subject: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}

var _ port.IdentityTokenVerifier = (*JWTIdentityVerifier)(nil)
