// Package fragment merges a directory of numbered text fragments into a
// single output file. Fragments are ordered by the integer prefix of their
// filenames ("1-intro.md", "12-api.md"), read in that order, joined, and
// written atomically to the output path.
package fragment

import (
	"errors"
	"fmt"
)

// Sentinel errors for concatenation.
var (
	// ErrSourceNotFound indicates the source directory is missing or inaccessible.
	ErrSourceNotFound = errors.New("fragment: source directory not found")

	// ErrDestinationUnwritable indicates the output path cannot be written,
	// usually because its parent directory is missing.
	ErrDestinationUnwritable = errors.New("fragment: destination not writable")

	// ErrFragmentRead indicates a listed fragment could not be read.
	ErrFragmentRead = errors.New("fragment: read failed")

	// ErrInvalidStrategy indicates an unknown ordering strategy name.
	ErrInvalidStrategy = errors.New("fragment: invalid order strategy, must be one of: prefix, natural, manifest")
)

// FragmentError reports a fragment that was listed but could not be read.
type FragmentError struct {
	Name string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FragmentError) Error() string {
	return fmt.Sprintf("fragment: read %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *FragmentError) Unwrap() error {
	return e.Err
}

// Is reports ErrFragmentRead as a match so callers can check the category
// without unwrapping.
func (e *FragmentError) Is(target error) bool {
	return target == ErrFragmentRead
}
