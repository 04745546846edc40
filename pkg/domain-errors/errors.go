// Package dErrors defines code-carrying errors for the gateway's domain layer.
//
// Services return these so transports can translate them uniformly. Infra facts
// (missing row, stale connection) use pkg/platform/sentinel instead; this package
// is for outcomes the caller must act on.
package dErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error. Codes are stable API surface: they appear in
// JSON error envelopes and must not be renamed casually.
type Code string

const (
	// CodeInvalidInput covers local precondition failures: empty draft fields,
	// non-positive amounts. These never reach the upstream service.
	CodeInvalidInput Code = "invalid_input"
	// CodeInvalidIdentity marks a principal string that fails the syntactic
	// charset check or the grammar parse.
	CodeInvalidIdentity Code = "invalid_identity"
	// CodeNotEditable means the lifecycle invariant no longer holds for the
	// record: it left Pending, or a vote has been cast.
	CodeNotEditable Code = "not_editable"
	// CodeConflict marks an optimistic-concurrency rejection (stale version).
	// Retryable only after re-fetching the current record.
	CodeConflict     Code = "conflict"
	CodeNotFound     Code = "not_found"
	CodeUnauthorized Code = "unauthorized"
	// CodeUnavailable wraps transport failures and upstream faults of opaque cause.
	CodeUnavailable Code = "unavailable"
	CodeInternal    Code = "internal"
)

// Error is the concrete domain error. Compare with errors.As or CodeOf; the
// message is for humans, the code for machines.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a cause so the original error survives for logging while the
// caller still sees a classified domain error.
func Wrap(cause error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// CodeOf extracts the domain code from err, or CodeInternal when err carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// ToHTTPStatus maps domain codes onto HTTP statuses for the transport layer.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidInput, CodeInvalidIdentity:
		return http.StatusBadRequest
	case CodeNotEditable, CodeConflict:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
