package port

import "errors"

// ErrInvalidIdentityToken covers malformed, mis-signed, and expired federated
// identity tokens.
var ErrInvalidIdentityToken = errors.New("invalid identity token")

// IdentityClaims is the subset of a federated identity token this service
// cares about. Subject is always present after a successful verification.
type IdentityClaims struct {
	Subject string
	Email   string
	Name    string
}

// IdentityTokenVerifier validates the signed identity token a mobile device
// obtains from its federated sign-in provider.
type IdentityTokenVerifier interface {
	Verify(token string) (IdentityClaims, error)
}
