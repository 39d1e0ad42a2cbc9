// pkg/wheelerr/wheelerr.go

package wheelerr

import (
	"errors"
)

// UserError marks an error caused by the user ending the session (closed
// stdin, interrupt) rather than a program fault. Execute maps these to
// exit code 0.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps err as a user-driven outcome.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError reports whether err is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}
