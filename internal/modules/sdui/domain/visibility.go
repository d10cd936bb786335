package domain

import accounts "sduiGateway/internal/modules/accounts/domain"

// Visibility rules understood by the default policy. Storage may introduce new
// rules; the default policy denies rules it does not recognize so fresh
// restrictions never leak content to old deployments.
const (
	VisibilityPublic         = "public"
	VisibilityAuthorizedOnly = "authorized-only"
)

// VisibilityPolicy decides whether the requesting identity may see a record
// carrying the given visibility rule. The exact predicate is owned by the
// authorization subsystem, which is why it is injected rather than hard-coded.
type VisibilityPolicy func(identity accounts.Identity, rule string) bool

// DefaultVisibilityPolicy shows unrestricted records to everyone and
// authorized-only records to authorized identities exclusively.
func DefaultVisibilityPolicy(identity accounts.Identity, rule string) bool {
	switch rule {
	case "", VisibilityPublic:
		return true
	case VisibilityAuthorizedOnly:
		return identity.Kind() == accounts.IdentityAuthorized
	default:
		return false
	}
}
