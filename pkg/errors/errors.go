package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// CustomizedError carries a call trace, an i18n message key and the http status
// the api layer should answer with.
type CustomizedError struct {
	trace string
	msg   string
	err   error
	code  int
}

func New(trace, msg string, err error) *CustomizedError {
	return &CustomizedError{
		trace: trace,
		msg:   msg,
		err:   err,
		code:  http.StatusInternalServerError,
	}
}

func (e *CustomizedError) Code(code int) *CustomizedError {
	e.code = code
	return e
}

func (e *CustomizedError) StatusCode() int {
	return e.code
}

// Message returns the i18n key of the error.
func (e *CustomizedError) Message() string {
	return e.msg
}

func (e *CustomizedError) TraceID() string {
	return e.trace
}

func (e *CustomizedError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %s", e.trace, e.msg)
	}
	return fmt.Sprintf("%s: %s", e.trace, e.err.Error())
}

func (e *CustomizedError) Unwrap() error {
	return e.err
}

// Trace prepends prefix to the trace of a CustomizedError. Any other error is wrapped as internal.
func Trace(prefix string, err error) error {
	if err == nil {
		return nil
	}
	var ce *CustomizedError
	if errors.As(err, &ce) {
		ce.trace = prefix + "." + ce.trace
		return ce
	}
	return New(prefix, "error.internal", err)
}

// As reports whether err is a CustomizedError and returns it.
func As(err error) (*CustomizedError, bool) {
	var ce *CustomizedError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}
