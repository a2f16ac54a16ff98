package commands

import "errors"

// ErrNegativeResult signals "no pair" / "not a palindrome" under --exit-code.
// It is not printed; only the exit status reports it.
var ErrNegativeResult = errors.New("negative result")

// ExitCodeNegative is the process status used with ErrNegativeResult.
const ExitCodeNegative = 2

// ExitError carries the process exit code for an error returned by a command.
type ExitError struct {
	Code int
	Err  error
}

// Error implements error.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitWithCode wraps err with a process exit code. A nil err yields nil.
func ExitWithCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{
		Code: code,
		Err:  err,
	}
}
