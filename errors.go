package scratch

import "errors"

var (
	// ErrPathOverflow is returned by Create when the assembled absolute
	// path would reach or exceed the platform's maximum path length. No
	// file is created.
	ErrPathOverflow = errors.New("assembled path exceeds maximum path length")

	// ErrEmptyDestination is returned by Promote when the destination
	// path is empty. No copy is attempted.
	ErrEmptyDestination = errors.New("empty destination path")
)
