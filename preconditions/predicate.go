package preconditions

// Predicate reports whether a value is acceptable. It must not have side
// effects, since checks may call it any number of times.
type Predicate[T any] func(value T) bool

// Erase adapts a typed predicate for use with CheckArguments. Values whose
// dynamic type is not T, including untyped nil, fail the predicate.
func Erase[T any](predicate Predicate[T]) Predicate[any] {
	if predicate == nil {
		return nil
	}

	return func(value any) bool {
		typed, ok := value.(T)
		if !ok {
			return false
		}

		return predicate(typed)
	}
}
