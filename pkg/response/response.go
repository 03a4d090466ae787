package response

import (
	"errors"
)

// Error pairs a message with the HTTP status it should surface as.
// Domain packages declare their sentinel errors with NewError and the
// handler layer maps them back to JSON responses.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	if ok := errors.As(target, &t); !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, msg string) error {
	return &Error{Code: code, Err: errors.New(msg)}
}
