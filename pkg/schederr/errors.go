package schederr

import (
	"errors"
	"fmt"
)

// Kind categorizes an error the way spec.md §7 categorizes them.
type Kind int

const (
	// KindUnexpected is any error the core itself did not raise as one
	// of the typed kinds below; callers map it to HTTP 500.
	KindUnexpected Kind = iota
	// KindInputShape marks a malformed request body: wrong top-level
	// shape, an array containing non-objects, or a non-object
	// dependency-rules value. Maps to HTTP 422.
	KindInputShape
	// KindMissingArtifact marks a missing prerequisite stage artifact
	// on disk. Maps to HTTP 404.
	KindMissingArtifact
	// KindConfiguration marks an activity type with no entry in the
	// install exponent table. Maps to HTTP 422.
	KindConfiguration
)

// Error wraps an underlying cause with a Kind so transports can branch
// on it with errors.As instead of matching message text.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string { return e.Cause.Error() }

func (e *Error) Unwrap() error { return e.Cause }

// New builds a Kind-tagged error from a format string, mirroring the
// plain fmt.Errorf idiom used throughout the pipeline packages.
func New(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Cause: fmt.Errorf(format, args...)}
}

// Wrap tags an existing error with a Kind without altering its message.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Cause: err}
}

// KindOf extracts the Kind of err, defaulting to KindUnexpected when err
// is not (or does not wrap) a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
