// Package serrors provides semantic error kinds shared by the services,
// the HTTP layer and the background workers. A kind says what went wrong
// in terms a caller can act on; the wrapped cause keeps the details.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Only values created by NewKind
// implement it.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new sentinel kind.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound: the entity does not exist or is not owned by the caller.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized: missing or invalid credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden: authenticated but not allowed.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest: the caller sent invalid input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict: the entity is in a state that does not allow the operation.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal: unexpected failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout: the operation did not finish in time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable: a dependency is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited: too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrUpstream: an external service (LLM, CDN) answered with a failure.
	ErrUpstream = NewKind("UPSTREAM")
)

var statuses = map[Kind]int{ //nolint: gochecknoglobals
	ErrNotFound:     http.StatusNotFound,
	ErrUnauthorized: http.StatusUnauthorized,
	ErrForbidden:    http.StatusForbidden,
	ErrBadRequest:   http.StatusBadRequest,
	ErrConflict:     http.StatusConflict,
	ErrInternal:     http.StatusInternalServerError,
	ErrTimeout:      http.StatusGatewayTimeout,
	ErrUnavailable:  http.StatusServiceUnavailable,
	ErrRateLimited:  http.StatusTooManyRequests,
	ErrUpstream:     http.StatusBadGateway,
}

// Error carries a kind, an optional cause and an optional message.
// errors.Is and errors.As match both the kind and the cause chain.
//
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an error of kind k around cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds an error carrying nothing but the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

// Kind returns the kind sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the attached message.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the first kind found in err's chain, or ErrInternal.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// HTTPStatus maps the kind of err to an HTTP status code.
func HTTPStatus(err error) int {
	if s, ok := statuses[KindOf(err)]; ok {
		return s
	}

	return http.StatusInternalServerError
}
