package palindrome

import "errors"

// ErrInvalidArgument indicates that Check received a non-string value.
// It is returned wrapped with the offending type; match it with errors.Is.
var ErrInvalidArgument = errors.New("palindrome: invalid argument")
