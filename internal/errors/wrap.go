package errors

import (
	"errors"
	"fmt"
)

// ErrorWrapper tags errors with the module and operation that produced them.
type ErrorWrapper struct {
	module    string
	operation string
}

// NewWrapper returns a wrapper for one operation of module.
func NewWrapper(module, operation string) ErrorWrapper {
	return ErrorWrapper{module: module, operation: operation}
}

// Wrap records where err happened. A nil err stays nil.
func (w ErrorWrapper) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &WrappedError{Module: w.module, Operation: w.operation, Cause: err}
}

// WrappedError is a failure tagged with its location.
type WrappedError struct {
	Module    string // e.g. "ask"
	Operation string // e.g. "load_history", "append_turn"
	Cause     error
}

func (e *WrappedError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Module, e.Operation, e.Cause)
}

func (e *WrappedError) Unwrap() error {
	return e.Cause
}

// Location returns the module and operation of the outermost WrappedError
// in err's chain.
func Location(err error) (module, operation string, ok bool) {
	var wrapped *WrappedError
	if !errors.As(err, &wrapped) {
		return "", "", false
	}
	return wrapped.Module, wrapped.Operation, true
}
