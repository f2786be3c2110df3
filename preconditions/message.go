package preconditions

import (
	"fmt"
	"reflect"
)

// absentMessage is what a missing or nil message renders as.
const absentMessage = "null"

func renderMessage(message []any) string {
	if len(message) == 0 || isAbsent(message[0]) {
		return absentMessage
	}

	first, rest := message[0], message[1:]

	switch msg := first.(type) {
	case string:
		if len(rest) == 0 {
			return msg
		}

		return fmt.Sprintf(msg, rest...)
	case *string:
		if len(rest) == 0 {
			return *msg
		}

		return fmt.Sprintf(*msg, rest...)
	}

	return fmt.Sprint(message...)
}

// isAbsent decides what the null-reference checks treat as a missing value:
// an untyped nil, or a typed nil of a kind that can hold nil (pointer, map,
// slice, channel, func, interface). Zero values of other kinds, such as 0 or
// "", are present.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}

	return false
}
