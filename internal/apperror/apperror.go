package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindStorage Kind = iota
	KindNotFound
	KindValidation
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	default:
		return "storage"
	}
}

// Response is the HTTP rendering of a Kind.
type Response struct {
	Status   int
	Category string
	// Public is false when the message must be replaced by a generic one.
	Public bool
}

var responses = map[Kind]Response{
	KindNotFound:   {Status: http.StatusNotFound, Category: "Not Found", Public: true},
	KindValidation: {Status: http.StatusBadRequest, Category: "Bad Request", Public: true},
	KindUpstream:   {Status: http.StatusInternalServerError, Category: "Internal Server Error"},
	KindStorage:    {Status: http.StatusInternalServerError, Category: "Internal Server Error"},
}

// Error is a categorised application error. Message is safe to show to clients for
// public kinds; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Upstream(err error, format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Err: err}
}

func Storage(err error, format string, args ...any) *Error {
	return &Error{Kind: KindStorage, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain. Unclassified errors
// are storage errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ResponseFor maps err to its status, category and client-facing message.
func ResponseFor(err error) (Response, string) {
	kind := KindOf(err)
	resp := responses[kind]
	if !resp.Public {
		return resp, "An internal error occurred. Please try again later."
	}
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return resp, appErr.Message
	}
	return resp, err.Error()
}
