package domain

import (
	"errors"
)

type Kind string

const (
	KindInvalidDateRange         Kind = "INVALID_DATE_RANGE"
	KindInvalidPartySize         Kind = "INVALID_PARTY_SIZE"
	KindNotFound                 Kind = "NOT_FOUND"
	KindInsufficientAvailability Kind = "INSUFFICIENT_AVAILABILITY"
	KindUnauthorized             Kind = "UNAUTHORIZED"
	KindCancellationWindowClosed Kind = "CANCELLATION_WINDOW_CLOSED"
	KindStorageUnavailable       Kind = "STORAGE_UNAVAILABLE"
)

// Error is an expected, caller-recoverable outcome of an engine operation.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

var (
	ErrInvalidDateRange         = &Error{Kind: KindInvalidDateRange}
	ErrInvalidPartySize         = &Error{Kind: KindInvalidPartySize}
	ErrNotFound                 = &Error{Kind: KindNotFound}
	ErrInsufficientAvailability = &Error{Kind: KindInsufficientAvailability}
	ErrUnauthorized             = &Error{Kind: KindUnauthorized}
	ErrCancellationWindowClosed = &Error{Kind: KindCancellationWindowClosed}
	ErrStorageUnavailable       = &Error{Kind: KindStorageUnavailable}
)

func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func NotFound(msg string) *Error {
	return NewError(KindNotFound, msg)
}

// StorageUnavailable wraps an infrastructure failure. Domain errors pass through untouched.
func StorageUnavailable(err error) error {
	if err == nil {
		return nil
	}

	var de *Error
	if errors.As(err, &de) {
		return err
	}

	return &Error{Kind: KindStorageUnavailable, Message: "storage unavailable", Err: err}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}

	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any error of the same kind, so callers compare against the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}

	return ""
}
