package domain

import "testing"

func TestIdentityKinds(t *testing.T) {
	t.Parallel()

	authorized := AuthorizedUser("user-1")
	if authorized.Kind() != IdentityAuthorized {
		t.Fatalf("unexpected kind: %s", authorized.Kind())
	}
	if authorized.ID() != "user-1" {
		t.Fatalf("unexpected id: %s", authorized.ID())
	}

	anonymous := AnonymousUser()
	if anonymous.Kind() != IdentityAnonymous {
		t.Fatalf("unexpected kind: %s", anonymous.Kind())
	}
	if anonymous.ID() != "" {
		t.Fatalf("anonymous identity should carry no id, got %s", anonymous.ID())
	}

	unauthorized := UnauthorizedUser("user-2")
	if unauthorized.Kind() != IdentityUnauthorized {
		t.Fatalf("unexpected kind: %s", unauthorized.Kind())
	}
	if unauthorized.ID() != "user-2" {
		t.Fatalf("unexpected id: %s", unauthorized.ID())
	}
}

func TestIdentityHumanReadableTypes(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		AuthorizedUser("u").HumanReadableType():   "authorized user",
		AnonymousUser().HumanReadableType():       "anonymous user",
		UnauthorizedUser("u").HumanReadableType(): "unauthorized (but not anonymous) user",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
