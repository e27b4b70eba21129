// SPDX-License-Identifier: MIT

package mtx

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeader is returned when the input holds no non-comment line.
	ErrNoHeader = errors.New("mtx: missing size header")

	// ErrMalformed marks a header or entry line that cannot be parsed:
	// wrong token count, non-numeric token, or a 1-based index below 1.
	ErrMalformed = errors.New("mtx: malformed line")

	// ErrCountMismatch is returned under WithStrictCount when the number of
	// entry lines differs from the header's nnz.
	ErrCountMismatch = errors.New("mtx: entry count does not match header")
)

// ParseError locates a rejected input line.
//
// The underlying cause can be accessed via errors.Unwrap; it wraps
// ErrMalformed or a matrix sentinel (e.g. matrix.ErrNaNInf).
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mtx: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// malformedf builds an ErrMalformed cause with detail.
func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
