package preconditions_test

import (
	"fmt"
	"testing"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/morepreconditions/preconditions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outcome struct {
	value string
	err   string
}

func runChecks(i int) outcome {
	input := fmt.Sprintf("ID%d", i)
	if i%3 == 0 {
		input = fmt.Sprintf("id-%d", i)
	}

	if _, err := preconditions.CheckAllNotNil(input, i); err != nil {
		return outcome{err: err.Error()}
	}

	if _, err := preconditions.CheckArgument(func(n int) bool { return n%5 != 0 }, i, "index %d", i); err != nil {
		return outcome{err: err.Error()}
	}

	value, err := preconditions.CheckString(input, "[A-Z]+[0-9]+", "bad id %s", input)
	if err != nil {
		return outcome{err: err.Error()}
	}

	return outcome{value: value}
}

func TestConcurrentChecksMatchSequential(t *testing.T) {
	t.Parallel()

	const count = 500

	expected := make([]outcome, count)
	for i := range count {
		expected[i] = runChecks(i)
	}

	actual := make([]outcome, count)

	pool := pond.NewPool(32)
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for i := range count {
		group.Submit(func() {
			actual[i] = runChecks(i)
		})
	}

	require.NoError(t, group.Wait())
	assert.Equal(t, expected, actual)
}
