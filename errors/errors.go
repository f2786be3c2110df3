// Package errors holds the sentinel errors shared by the precondition packages.
// Every failure returned by this module wraps exactly one of them, so callers
// can branch with errors.Is regardless of which package produced the error.
package errors

import "errors"

var (
	// ErrNullReference is wrapped by failures caused by an absent (nil) value.
	ErrNullReference = errors.New("null reference")

	// ErrInvalidArgument is wrapped by failures caused by a value that did not
	// satisfy a predicate or pattern.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPattern is returned when a regular expression cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNilPredicate is returned when a check is asked to evaluate a nil predicate.
	ErrNilPredicate = errors.New("nil predicate")
)
