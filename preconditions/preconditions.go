package preconditions

import (
	"fmt"

	"github.com/amp-labs/morepreconditions/errors"
	"github.com/amp-labs/morepreconditions/patterns"
)

// CheckNotNil returns reference unchanged if it is not nil. Otherwise it
// returns a *NullReferenceError carrying the rendered message.
//
//nolint:ireturn
func CheckNotNil[T any](reference T, message ...any) (T, error) {
	if isAbsent(reference) {
		var zero T

		return zero, &NullReferenceError{
			Message: renderMessage(message),
			Index:   noIndex,
		}
	}

	return reference, nil
}

// CheckAllNotNil checks references left to right and stops at the first nil
// one, returning a *NullReferenceError with its index and no custom message.
// On success the same slice is returned.
func CheckAllNotNil(references ...any) ([]any, error) {
	for i, reference := range references {
		if isAbsent(reference) {
			return nil, &NullReferenceError{
				Message: absentMessage,
				Index:   i,
			}
		}
	}

	return references, nil
}

// CheckArgument returns value unchanged if predicate accepts it. Otherwise it
// returns a *InvalidArgumentError carrying the rendered message.
//
//nolint:ireturn
func CheckArgument[T any](predicate Predicate[T], value T, message ...any) (T, error) {
	var zero T

	if predicate == nil {
		return zero, fmt.Errorf("%w: CheckArgument", errors.ErrNilPredicate)
	}

	if !predicate(value) {
		return zero, &InvalidArgumentError{
			Message:    renderMessage(message),
			HasMessage: true,
			Index:      noIndex,
		}
	}

	return value, nil
}

// CheckArguments applies predicate to each value in order. A true result
// accepts the value and moves on; the first false result stops the check
// with a *InvalidArgumentError that has an index but no message. On success
// the same slice is returned.
func CheckArguments(predicate Predicate[any], values ...any) ([]any, error) {
	if len(values) == 0 {
		return values, nil
	}

	if predicate == nil {
		return nil, fmt.Errorf("%w: CheckArguments", errors.ErrNilPredicate)
	}

	for i, value := range values {
		if predicate(value) {
			continue
		}

		return nil, &InvalidArgumentError{Index: i}
	}

	return values, nil
}

// CheckString returns s unchanged if the whole of s matches pattern.
// Otherwise it returns a *InvalidArgumentError carrying the rendered message.
// A pattern that does not compile yields an error wrapping
// errors.ErrInvalidPattern.
func CheckString(s, pattern string, message ...any) (string, error) {
	return CheckStringWith(patterns.Direct{}, s, pattern, message...)
}

// CheckStringWith is CheckString with a caller-supplied compiler, typically
// a *patterns.Cache shared by hot call sites.
func CheckStringWith(compiler patterns.Compiler, s, pattern string, message ...any) (string, error) {
	matched, err := patterns.FullMatch(compiler, s, pattern)
	if err != nil {
		return "", err
	}

	if !matched {
		return "", &InvalidArgumentError{
			Message:    renderMessage(message),
			HasMessage: true,
			Index:      noIndex,
		}
	}

	return s, nil
}
