package domain

import (
	"testing"

	accounts "sduiGateway/internal/modules/accounts/domain"
)

func TestDefaultVisibilityPolicy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		identity accounts.Identity
		rule     string
		visible  bool
	}{
		{"anonymous sees public", accounts.AnonymousUser(), VisibilityPublic, true},
		{"anonymous sees unrestricted", accounts.AnonymousUser(), "", true},
		{"anonymous blocked from restricted", accounts.AnonymousUser(), VisibilityAuthorizedOnly, false},
		{"unauthorized blocked from restricted", accounts.UnauthorizedUser("user-1"), VisibilityAuthorizedOnly, false},
		{"authorized sees restricted", accounts.AuthorizedUser("user-1"), VisibilityAuthorizedOnly, true},
		{"authorized sees public", accounts.AuthorizedUser("user-1"), VisibilityPublic, true},
		{"unknown rule denies everyone", accounts.AuthorizedUser("user-1"), "staff-only", false},
	}

	for _, tc := range cases {
		if got := DefaultVisibilityPolicy(tc.identity, tc.rule); got != tc.visible {
			t.Fatalf("%s: expected visible=%v, got %v", tc.name, tc.visible, got)
		}
	}
}
