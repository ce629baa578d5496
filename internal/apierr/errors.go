// Package apierr implements the error taxonomy of the service: every
// handler classifies a failure into exactly one Kind, and a single
// registration point (Register) maps that taxonomy onto HTTP status codes
// for go-zero's httpx error writer, so logic code never touches
// http.ResponseWriter directly.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Kind is one taxonomy entry from the specification's §7 error table.
type Kind string

const (
	Invalid             Kind = "invalid"
	Unauthenticated     Kind = "unauthenticated"
	Forbidden           Kind = "forbidden"
	NotFound            Kind = "not_found"
	Conflict            Kind = "conflict"
	Locked              Kind = "locked"
	IntegrityViolation  Kind = "integrity_violation"
	Unavailable         Kind = "unavailable"
	Internal            Kind = "internal"
)

var statusByKind = map[Kind]int{
	Invalid:            http.StatusBadRequest,
	Unauthenticated:    http.StatusUnauthorized,
	Forbidden:          http.StatusForbidden,
	NotFound:           http.StatusNotFound,
	Conflict:           http.StatusConflict,
	Locked:             http.StatusLocked,
	IntegrityViolation: http.StatusConflict,
	Unavailable:        http.StatusBadGateway,
	Internal:           http.StatusInternalServerError,
}

// Error is a taxonomy-classified application error. Extra carries kind-
// specific structured fields (remaining_attempts, retry_after, etc.) that
// handlers fold into the JSON error body.
type Error struct {
	Kind    Kind
	Message string
	Extra   map[string]interface{}
}

func (e *Error) Error() string {
	return e.Message
}

// New constructs a classified Error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithExtra attaches structured fields to the error's JSON body.
func (e *Error) WithExtra(extra map[string]interface{}) *Error {
	e.Extra = extra
	return e
}

func Invalidf(format string, args ...interface{}) *Error     { return newf(Invalid, format, args...) }
func NotFoundf(format string, args ...interface{}) *Error    { return newf(NotFound, format, args...) }
func Conflictf(format string, args ...interface{}) *Error    { return newf(Conflict, format, args...) }
func Forbiddenf(format string, args ...interface{}) *Error   { return newf(Forbidden, format, args...) }
func Internalf(format string, args ...interface{}) *Error    { return newf(Internal, format, args...) }
func Unavailablef(format string, args ...interface{}) *Error { return newf(Unavailable, format, args...) }

func newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// body is the wire shape of every error response.
type body struct {
	Kind    string                 `json:"kind"`
	Error   string                 `json:"error"`
	Extra   map[string]interface{} `json:"extra,omitempty"`
}

// StatusAndBody maps any error into an HTTP status and a JSON-serializable
// body. Unclassified errors are surfaced as internal without detail leaking
// to the client.
func StatusAndBody(err error) (int, body) {
	var classified *Error
	if errors.As(err, &classified) {
		status, ok := statusByKind[classified.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		return status, body{Kind: string(classified.Kind), Error: classified.Message, Extra: classified.Extra}
	}
	return http.StatusInternalServerError, body{Kind: string(Internal), Error: "internal error"}
}

// Body exposes the wire shape for callers outside this package that need to
// construct one directly (e.g. conflict_active_session's descriptor field).
type Body = body

// Register installs the taxonomy as go-zero's package-level HTTP error
// handler, used once per service main before the rest.Server starts.
func Register() {
	httpx.SetErrorHandler(func(err error) (int, interface{}) {
		status, b := StatusAndBody(err)
		return status, b
	})
}
