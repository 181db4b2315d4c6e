package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error per the failure taxonomy used across
// all services: validation, not-found, conflict, downstream propagation,
// failed compensation and the unexpected catch-all.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindDownstream
	KindCompensationFailed
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindDownstream:
		return "downstream"
	case KindCompensationFailed:
		return "compensation_failed"
	default:
		return "unexpected"
	}
}

// Error is the single error type surfaced by services and the orchestrator.
// Status is the HTTP status returned to the client; for downstream errors it
// is the status the downstream service answered with.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports malformed or missing input (400).
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an absent referenced entity (404).
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a duplicate request or schedule (400).
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Downstream propagates a non-2xx answer from a called service verbatim.
func Downstream(status int, message string) *Error {
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	return &Error{Kind: KindDownstream, Status: status, Message: message}
}

// CompensationFailed reports that a rollback call itself failed. The data is
// now inconsistent and needs manual remediation, so this always outranks the
// error that triggered the rollback.
func CompensationFailed(format string, args ...interface{}) *Error {
	return &Error{Kind: KindCompensationFailed, Status: http.StatusInternalServerError, Message: fmt.Sprintf(format, args...)}
}

// Unexpected wraps an unclassified failure (500).
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Status: http.StatusInternalServerError, Message: "an unexpected error occurred", Err: err}
}

// From extracts the *Error from err, wrapping unknown errors as Unexpected.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Unexpected(err)
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	return From(err).Status
}
