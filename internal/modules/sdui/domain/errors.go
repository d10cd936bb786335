package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownComponentKind marks a discriminator tag with no registered variant.
	ErrUnknownComponentKind = errors.New("unknown component kind")
	// ErrInvalidEntrypointKey marks an empty or blank entrypoint key.
	ErrInvalidEntrypointKey = errors.New("invalid entrypoint key")
)

// DecodeError describes a structural failure while decoding component data.
// Decode failures are permanent: the persisted payload is malformed and
// retrying cannot fix it.
type DecodeError struct {
	// Tag is the discriminator the payload claimed.
	Tag string
	// Field names the offending field, empty when the payload as a whole is bad.
	Field string
	// SectionID is filled in once the failure is tied to a persisted section.
	SectionID string
	// Err carries the underlying cause when one exists.
	Err error
}

func (e *DecodeError) Error() string {
	msg := "decode component"
	if e.Tag != "" {
		msg += " " + e.Tag
	}
	if e.SectionID != "" {
		msg += " (section " + e.SectionID + ")"
	}
	if e.Field != "" {
		msg += ": field " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ResolutionKind classifies entrypoint resolution failures.
type ResolutionKind string

const (
	ResolutionStorage    ResolutionKind = "storage"
	ResolutionDecode     ResolutionKind = "decode"
	ResolutionInvalidKey ResolutionKind = "invalid-key"
)

// ResolutionError wraps any failure surfaced by entrypoint resolution with the
// key being resolved. Storage failures may be retried by the caller; decode and
// invalid-key failures are permanent.
type ResolutionError struct {
	Kind ResolutionKind
	Key  string
	Err  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve entrypoint %q: %s: %v", e.Key, e.Kind, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
