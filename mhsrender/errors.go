package mhsrender

import "errors"

// ErrWriteFailed wraps an underlying io.Writer failure encountered while
// emitting DOT output.
var ErrWriteFailed = errors.New("mhsrender: write failed")
