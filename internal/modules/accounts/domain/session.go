package domain

import "time"

// Session binds an opaque token to a user for a bounded period. The token is
// random, carries no claims, and is only meaningful to the session store.
type Session struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
