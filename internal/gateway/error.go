package gateway

import (
	"errors"

	"tripflow/internal/pkg/errs"
)

type ErrorKind string

// Error kinds normalize every backend failure into the four classes the
// workflow cares about. 4xx messages are surfaced verbatim; everything else
// collapses to a generic retry hint at the presentation edge.
const (
	KindNetwork           ErrorKind = "NETWORK"
	KindClientError       ErrorKind = "CLIENT_ERROR"
	KindServerError       ErrorKind = "SERVER_ERROR"
	KindMalformedResponse ErrorKind = "MALFORMED_RESPONSE"
)

type Error struct {
	Kind       ErrorKind
	StatusCode int
	msg        string
	err        error // wrapped low-level error
}

func (e *Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// Message is the human-readable part, without kind prefix or cause chain.
func (e *Error) Message() string {
	return e.msg
}

// NewError builds a gateway error for callers that need to synthesize one,
// such as tests and fakes.
func NewError(kind ErrorKind, statusCode int, msg string) error {
	return newError(kind, statusCode, msg, nil)
}

func newError(kind ErrorKind, statusCode int, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return &Error{Kind: kind, StatusCode: statusCode, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of a gateway error, or "" for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// StatusOf returns the HTTP status of a gateway error, or 0 when the failure
// never produced a response.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// MessageOf extracts the surfaceable message of a gateway error, falling back
// to the full error text.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
