package quantor_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/quantor"
)

func TestSelectWhere(t *testing.T) {
	t.Run("returns matches in original order", func(t *testing.T) {
		got := quantor.SelectWhere([]int{0, 1, 2, 3}, isEven)
		assert.Equal(t, []int{0, 2}, got)
	})

	t.Run("preserves duplicates", func(t *testing.T) {
		got := quantor.SelectWhere([]int{2, 1, 2, 2}, isEven)
		assert.Equal(t, []int{2, 2, 2}, got)
	})

	t.Run("returns empty when nothing matches", func(t *testing.T) {
		assert.Empty(t, quantor.SelectWhere([]int{1, 3, 5}, isEven))
	})

	t.Run("returns empty on empty input", func(t *testing.T) {
		assert.Empty(t, quantor.SelectWhere(nil, isEven))
	})

	t.Run("is idempotent", func(t *testing.T) {
		xs := []int{4, 7, 2, 2, 9, 6}
		once := quantor.SelectWhere(xs, isEven)
		twice := quantor.SelectWhere(once, isEven)
		assert.Equal(t, once, twice)
	})
}

func TestSelectUnique(t *testing.T) {
	t.Run("drops later duplicates, keeping first-seen order", func(t *testing.T) {
		got := quantor.SelectUnique([]int{0, 1, 2, 2, 3, 0}, isEven)
		assert.Equal(t, []int{0, 2}, got)
	})

	t.Run("contains no duplicates", func(t *testing.T) {
		got := quantor.SelectUnique([]int{2, 2, 2, 4, 4}, isEven)
		assert.Equal(t, []int{2, 4}, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		xs := []int{6, 1, 6, 2, 8, 2}
		once := quantor.SelectUnique(xs, isEven)
		twice := quantor.SelectUnique(once, isEven)
		assert.Equal(t, once, twice)
	})

	t.Run("returns empty on empty input", func(t *testing.T) {
		assert.Empty(t, quantor.SelectUnique(nil, isEven))
	})

	t.Run("works with strings", func(t *testing.T) {
		words := []string{"go", "rust", "go", "zig"}
		got := quantor.SelectUnique(words, func(s string) bool { return len(s) < 4 })
		assert.Equal(t, []string{"go", "zig"}, got)
	})
}

func TestSelectDuplicates(t *testing.T) {
	// Result order is unspecified, so compare as sets.
	sorted := cmpopts.SortSlices(func(a, b int) bool { return a < b })

	t.Run("returns one representative per repeated value", func(t *testing.T) {
		got := quantor.SelectDuplicates([]int{0, 1, 2, 2, 3})
		assert.Empty(t, cmp.Diff([]int{2}, got, sorted))
	})

	t.Run("collects every repeated value once", func(t *testing.T) {
		got := quantor.SelectDuplicates([]int{1, 2, 1, 3, 2, 1})
		assert.Empty(t, cmp.Diff([]int{1, 2}, got, sorted))
	})

	t.Run("returns empty when all values are distinct", func(t *testing.T) {
		assert.Empty(t, quantor.SelectDuplicates([]int{1, 2, 3}))
	})

	t.Run("returns empty on empty input", func(t *testing.T) {
		assert.Empty(t, quantor.SelectDuplicates[int](nil))
	})
}
