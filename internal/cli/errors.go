// SPDX-License-Identifier: MIT
// Package: cli
//
// errors.go — exit codes and the error type carried to the process boundary.

package cli

// Process exit codes.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitInvalidArgument = 2
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// invalidArgument wraps err as an ExitInvalidArgument failure.
func invalidArgument(err error) *ExitError {
	return &ExitError{Code: ExitInvalidArgument, Message: "squares: " + err.Error(), Err: err}
}
