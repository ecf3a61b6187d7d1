package quantor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/quantor"
)

func TestSeq(t *testing.T) {
	nums := quantor.Seq[int]{2, 4, 5, 6, 5}

	t.Run("methods agree with the free functions", func(t *testing.T) {
		assert.Equal(t, quantor.Forall(nums, isEven), nums.Forall(isEven))
		assert.Equal(t, quantor.Exists(nums, isEven), nums.Exists(isEven))
		assert.Equal(t, quantor.None(nums, isEven), nums.None(isEven))
		assert.Equal(t, quantor.ExactlyOne(nums, isEven), nums.ExactlyOne(isEven))
		assert.Equal(t, quantor.ExactlyN(nums, 3, isEven), nums.ExactlyN(3, isEven))
		assert.Equal(t, quantor.AllEqual(nums), nums.AllEqual())

		ascending := func(a, b int) bool { return a < b }
		assert.Equal(t, quantor.Pairwise(nums, ascending), nums.Pairwise(ascending))

		assert.Equal(t, quantor.FailingElements(nums, isEven), nums.FailingElements(isEven))
		assert.Equal(t, quantor.SelectWhere(nums, isEven), nums.SelectWhere(isEven))
		assert.Equal(t, quantor.SelectUnique(nums, isEven), nums.SelectUnique(isEven))
	})

	t.Run("carries failure diagnostics through", func(t *testing.T) {
		err := nums.Forall(isEven)
		require.Error(t, err)

		idx, ok := quantor.FailingIndex(err)
		require.True(t, ok)
		assert.Equal(t, 2, idx)
	})

	t.Run("converts from a plain slice", func(t *testing.T) {
		raw := []string{"x", "x"}
		assert.NoError(t, quantor.Seq[string](raw).AllEqual())
	})

	t.Run("duplicate selection matches the free function as a set", func(t *testing.T) {
		got := nums.SelectDuplicates()
		assert.ElementsMatch(t, []int{5}, got)
	})
}
