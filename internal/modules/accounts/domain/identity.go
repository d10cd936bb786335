package domain

// IdentityKind is the three-state classification of a requesting user.
type IdentityKind string

const (
	// IdentityAuthorized is a user with a valid, unexpired session.
	IdentityAuthorized IdentityKind = "authorized"
	// IdentityAnonymous is a caller that presented no credentials at all.
	IdentityAnonymous IdentityKind = "anonymous"
	// IdentityUnauthorized is a caller whose credentials were recognized but
	// no longer grant access (expired or revoked session).
	IdentityUnauthorized IdentityKind = "unauthorized"
)

// Identity is a tagged three-case value, not a boolean "logged in" flag.
// Resolvers and visibility rules switch on Kind so a fourth state shows up as
// an unhandled case instead of a silent misclassification.
type Identity struct {
	kind IdentityKind
	id   string
}

func AuthorizedUser(id string) Identity {
	return Identity{kind: IdentityAuthorized, id: id}
}

func AnonymousUser() Identity {
	return Identity{kind: IdentityAnonymous}
}

func UnauthorizedUser(id string) Identity {
	return Identity{kind: IdentityUnauthorized, id: id}
}

func (i Identity) Kind() IdentityKind { return i.kind }

// ID returns the user identifier when one is known, empty otherwise.
func (i Identity) ID() string { return i.id }

// HumanReadableType should be used only for testing and debugging purposes.
// The format is not guaranteed and can change completely.
func (i Identity) HumanReadableType() string {
	switch i.kind {
	case IdentityAuthorized:
		return "authorized user"
	case IdentityAnonymous:
		return "anonymous user"
	case IdentityUnauthorized:
		return "unauthorized (but not anonymous) user"
	default:
		return "unknown user"
	}
}
