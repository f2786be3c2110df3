package preconditions

import "github.com/amp-labs/morepreconditions/patterns"

// MustNotNil is like CheckNotNil but panics with the error on failure.
//
//nolint:ireturn
func MustNotNil[T any](reference T, message ...any) T {
	return must(CheckNotNil(reference, message...))
}

// MustAllNotNil is like CheckAllNotNil but panics with the error on failure.
func MustAllNotNil(references ...any) []any {
	return must(CheckAllNotNil(references...))
}

// MustArgument is like CheckArgument but panics with the error on failure.
//
//nolint:ireturn
func MustArgument[T any](predicate Predicate[T], value T, message ...any) T {
	return must(CheckArgument(predicate, value, message...))
}

// MustArguments is like CheckArguments but panics with the error on failure.
func MustArguments(predicate Predicate[any], values ...any) []any {
	return must(CheckArguments(predicate, values...))
}

// MustString is like CheckString but panics with the error on failure.
func MustString(s, pattern string, message ...any) string {
	return must(CheckString(s, pattern, message...))
}

// MustStringWith is like CheckStringWith but panics with the error on failure.
func MustStringWith(compiler patterns.Compiler, s, pattern string, message ...any) string {
	return must(CheckStringWith(compiler, s, pattern, message...))
}

//nolint:ireturn
func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
