package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure and fixes the HTTP status it is reported with.
type Kind string

const (
	KindUnauthorized  Kind = "unauthorized"
	KindForbidden     Kind = "forbidden"
	KindLookup        Kind = "lookup"
	KindNotFound      Kind = "not_found"
	KindQuery         Kind = "query"
	KindCreate        Kind = "create"
	KindUpdate        Kind = "update"
	KindUpdateFailed  Kind = "update_failed"
	KindDelete        Kind = "delete"
	KindFavourite     Kind = "favourite"
	KindValidation    Kind = "validation"
	KindRateLimited   Kind = "rate_limited"
	KindRouteNotFound Kind = "route_not_found"
	KindUnhandled     Kind = "unhandled"
)

// GeneralMessage is reported for errors that carry no Kind.
const GeneralMessage = "General error"

// Forbidden is reported as 401, not 403, to stay compatible with existing clients.
var statusByKind = map[Kind]int{
	KindUnauthorized:  http.StatusUnauthorized,
	KindForbidden:     http.StatusUnauthorized,
	KindLookup:        http.StatusBadRequest,
	KindNotFound:      http.StatusNotFound,
	KindQuery:         http.StatusBadRequest,
	KindCreate:        http.StatusBadRequest,
	KindUpdate:        http.StatusBadRequest,
	KindUpdateFailed:  http.StatusNotFound,
	KindDelete:        http.StatusBadRequest,
	KindFavourite:     http.StatusBadRequest,
	KindValidation:    http.StatusBadRequest,
	KindRateLimited:   http.StatusTooManyRequests,
	KindRouteNotFound: http.StatusNotFound,
	KindUnhandled:     http.StatusInternalServerError,
}

// Error is the coded error every handler hands to the error reporter.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches the underlying cause for logging; the client only sees Message.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Status() int {
	if status, ok := statusByKind[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Response returns the status and public message for any error.
func Response(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status(), appErr.Message
	}
	return http.StatusInternalServerError, GeneralMessage
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
