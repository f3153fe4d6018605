package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a core failure. Adapters map kinds to transport codes.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindBadRequest Kind = "bad_request"
	KindValidation Kind = "validation_error"
	KindReference  Kind = "reference_error"
	KindInternal   Kind = "internal_error"
)

// Error is the error type returned by the store and the service.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// works for every not-found failure regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is; only the Kind is compared.
var (
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrBadRequest = &Error{Kind: KindBadRequest}
	ErrValidation = &Error{Kind: KindValidation}
	ErrReference  = &Error{Kind: KindReference}
	ErrInternal   = &Error{Kind: KindInternal}
)

// NewError builds an error of kind for op with a fixed message.
func NewError(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// NotFound reports a record that does not exist.
func NotFound(op, format string, args ...any) *Error {
	return NewError(KindNotFound, op, fmt.Sprintf(format, args...))
}

// BadRequest reports a malformed identifier or request.
func BadRequest(op, format string, args ...any) *Error {
	return NewError(KindBadRequest, op, fmt.Sprintf(format, args...))
}

// Validation reports input that breaks an entity rule.
func Validation(op, format string, args ...any) *Error {
	return NewError(KindValidation, op, fmt.Sprintf(format, args...))
}

// Reference reports a well-formed id that points at no record.
func Reference(op, format string, args ...any) *Error {
	return NewError(KindReference, op, fmt.Sprintf(format, args...))
}

// Internal wraps err as an internal failure of op.
func Internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Op: op, Message: "internal failure", Err: err}
}

// KindOf returns the kind of the outermost *Error in err's chain, or
// KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
