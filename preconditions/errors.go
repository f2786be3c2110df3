package preconditions

import (
	"fmt"

	"github.com/amp-labs/morepreconditions/errors"
)

// noIndex marks a failure raised by a single-value check.
const noIndex = -1

// NullReferenceError is returned when a value that must be present is nil.
type NullReferenceError struct {
	// Message is the rendered diagnostic message; "null" when none was given.
	Message string

	// Index is the position of the nil value for CheckAllNotNil, -1 otherwise.
	Index int
}

func (e *NullReferenceError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s at index %d: %s", errors.ErrNullReference, e.Index, e.Message)
	}

	return fmt.Sprintf("%s: %s", errors.ErrNullReference, e.Message)
}

func (e *NullReferenceError) Unwrap() error {
	return errors.ErrNullReference
}

// InvalidArgumentError is returned when a value fails a predicate or pattern.
type InvalidArgumentError struct {
	// Message is the rendered diagnostic message. It is only meaningful when
	// HasMessage is true; CheckArguments never attaches one.
	Message    string
	HasMessage bool

	// Index is the position of the rejected value for CheckArguments, -1 otherwise.
	Index int
}

func (e *InvalidArgumentError) Error() string {
	msg := errors.ErrInvalidArgument.Error()

	if e.Index >= 0 {
		msg = fmt.Sprintf("%s at index %d", msg, e.Index)
	}

	if e.HasMessage {
		msg += ": " + e.Message
	}

	return msg
}

func (e *InvalidArgumentError) Unwrap() error {
	return errors.ErrInvalidArgument
}
