package preconditions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMessage(t *testing.T) {
	t.Parallel()

	custom := "custom %d"

	var nilString *string

	tests := []struct {
		name     string
		message  []any
		expected string
	}{
		{name: "no message", message: nil, expected: "null"},
		{name: "untyped nil", message: []any{nil}, expected: "null"},
		{name: "nil string pointer", message: []any{nilString}, expected: "null"},
		{name: "plain string", message: []any{"value is required"}, expected: "value is required"},
		{name: "lone string is not a format", message: []any{"100%"}, expected: "100%"},
		{name: "format string", message: []any{"expected %d but got %d", 42, 0}, expected: "expected 42 but got 0"},
		{name: "string pointer", message: []any{&custom}, expected: "custom %d"},
		{name: "string pointer format", message: []any{&custom, 7}, expected: "custom 7"},
		{name: "non-string values", message: []any{42, 7}, expected: "42 7"},
		{name: "error value", message: []any{assert.AnError}, expected: assert.AnError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, renderMessage(tt.message))
		})
	}
}

func TestIsAbsent(t *testing.T) {
	t.Parallel()

	t.Run("absent values", func(t *testing.T) {
		t.Parallel()

		var (
			ptr   *int
			slice []int
			m     map[string]int
			ch    chan int
			fn    func()
			iface error
		)

		assert.True(t, isAbsent(nil))
		assert.True(t, isAbsent(ptr))
		assert.True(t, isAbsent(slice))
		assert.True(t, isAbsent(m))
		assert.True(t, isAbsent(ch))
		assert.True(t, isAbsent(fn))
		assert.True(t, isAbsent(iface))
	})

	t.Run("present values", func(t *testing.T) {
		t.Parallel()

		val := 42

		assert.False(t, isAbsent(0))
		assert.False(t, isAbsent(""))
		assert.False(t, isAbsent(false))
		assert.False(t, isAbsent(struct{}{}))
		assert.False(t, isAbsent(&val))
		assert.False(t, isAbsent([]int{}))
		assert.False(t, isAbsent(map[string]int{}))
		assert.False(t, isAbsent(func() {}))
	})
}
