package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrRemote         = errors.New("remote call failed")
	ErrValidation     = errors.New("invalid input")
	ErrRecapEmpty     = errors.New("recap has no entries")
	ErrRecapNotReady  = errors.New("recap is still loading")
	ErrSecretNotFound = errors.New("secret not found")
	ErrTokenMissing   = errors.New("no workspace token configured")
)

// NotFoundError reports a channel, user or message reference that could not be
// resolved locally or remotely.
type NotFoundError struct {
	Kind string
	Ref  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, quote(e.Ref))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type RemoteErrorKind string

const (
	RemoteAuthorization RemoteErrorKind = "authorization"
	RemoteRateLimited   RemoteErrorKind = "rate_limited"
	RemoteTransport     RemoteErrorKind = "transport"
)

// RemoteError is the tagged form of every gateway failure.
type RemoteError struct {
	Kind         RemoteErrorKind
	Op           string
	Detail       string
	MissingScope string
	RetryAfter   time.Duration
	Err          error
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.MissingScope != "" {
		msg += " (missing scope " + e.MissingScope + ")"
	}
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// AsRemoteError tags err as a transport failure of op unless it already is a
// RemoteError.
func AsRemoteError(op string, err error) error {
	if err == nil {
		return nil
	}

	var remote *RemoteError
	if errors.As(err, &remote) {
		return err
	}

	return &RemoteError{Kind: RemoteTransport, Op: op, Detail: err.Error(), Err: err}
}

// ValidationError reports malformed human input such as an empty channel name.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func quote(s string) string {
	return strconv.Quote(s)
}
