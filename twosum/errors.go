package twosum

import "errors"

// ErrInvalidArgument indicates that FindAny received a value that is not a
// slice or array. It is returned wrapped with the offending type; match it
// with errors.Is.
var ErrInvalidArgument = errors.New("twosum: invalid argument")
