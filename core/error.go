package core

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrProviderUnavailable   ErrorKind = "provider_unavailable"
	ErrConnectionRejected    ErrorKind = "connection_rejected"
	ErrCapabilityUnsupported ErrorKind = "capability_unsupported"
	ErrBalanceUnavailable    ErrorKind = "balance_unavailable"
	ErrIndexerUnavailable    ErrorKind = "indexer_unavailable"
	ErrMalformedResponse     ErrorKind = "malformed_response"
)

var (
	ErrNotConnected     = errors.New("no wallet connected")
	ErrAlreadyConnected = errors.New("already connected, disconnect first")
	ErrSessionChanged   = errors.New("session changed, result discarded")
)

// Error tags an underlying cause with a stable kind and provider context.
// Status carries the HTTP status for indexer failures when one was received.
type Error struct {
	Kind     ErrorKind
	Provider ProviderID
	Status   int
	cause    error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Provider != "" {
		msg = fmt.Sprintf("%s: %s", e.Provider, msg)
	}
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.cause }

func Wrap(kind ErrorKind, provider ProviderID, cause error) *Error {
	return &Error{Kind: kind, Provider: provider, cause: cause}
}

func WrapStatus(kind ErrorKind, status int, cause error) *Error {
	return &Error{Kind: kind, Status: status, cause: cause}
}

// WithProvider attaches provider context to an error that already carries a
// kind (an indexer failure passing through an adapter). Other errors are
// wrapped under the fallback kind.
func WithProvider(err error, provider ProviderID, fallback ErrorKind) error {
	var e *Error
	if errors.As(err, &e) {
		clone := *e
		clone.Provider = provider
		return &clone
	}
	return Wrap(fallback, provider, err)
}

// KindOf reports the kind of err, or "" for untagged errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// StatusOf reports the HTTP status carried by err, or zero.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
