package engine

import (
	"errors"
	"fmt"
)

// ErrWrite marks a failure of the output sink.
// Output failures abort the run; they are never retried.
var ErrWrite = errors.New("write output")

// ErrRead marks a failure reading the input text.
var ErrRead = errors.New("read input")

// WriteError reports an output failure at a given line.
type WriteError struct {
	// Line is the zero-based output line being written.
	Line int

	// Err is the underlying writer error.
	Err error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: line %d: %v", ErrWrite, e.Line, e.Err)
}

// Unwrap returns the writer error.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrWrite) true for any WriteError.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// IsWriteError returns true if err is an output failure.
// Uses errors.Is to handle wrapped errors.
func IsWriteError(err error) bool {
	return errors.Is(err, ErrWrite)
}
