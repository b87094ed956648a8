package combin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(min, max, k int) [][]int {
	var out [][]int
	for tuple := range Enumerate(min, max, k) {
		out = append(out, tuple)
	}
	return out
}

func TestEnumerate_TwoDigitRange(t *testing.T) {
	got := collect(10, 20, 2)
	require.Len(t, got, 20)
	assert.Equal(t, []int{1, 9}, got[0])
	assert.Equal(t, []int{2, 8}, got[1])
	assert.Equal(t, []int{2, 9}, got[2])
	assert.Equal(t, []int{3, 7}, got[3])

	for _, tuple := range got {
		require.Len(t, tuple, 2)
		assert.Less(t, tuple[0], tuple[1])
		sum := tuple[0] + tuple[1]
		assert.GreaterOrEqual(t, sum, 10)
		assert.LessOrEqual(t, sum, 20)
	}
}

func TestEnumerate_Lexicographic(t *testing.T) {
	got := collect(1, 45, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, lexLess(got[i-1], got[i]), "%v should sort before %v", got[i-1], got[i])
	}
}

func TestEnumerate_NoDuplicatesAndStrictlyIncreasing(t *testing.T) {
	seen := map[[9]int]bool{}
	for tuple := range Enumerate(1, 45, 4) {
		var key [9]int
		copy(key[:], tuple)
		require.False(t, seen[key], "duplicate tuple %v", tuple)
		seen[key] = true
		for i := 1; i < len(tuple); i++ {
			require.Less(t, tuple[i-1], tuple[i])
		}
	}
}

func TestEnumerate_EmptyRangeYieldsNothing(t *testing.T) {
	got := collect(1, 2, 3) // smallest 3-tuple (1,2,3) already sums to 6
	assert.Empty(t, got)
}

func TestEnumerate_SingleDigit(t *testing.T) {
	got := collect(5, 7, 1)
	assert.Equal(t, [][]int{{5}, {6}, {7}}, got)
}

func TestEnumerate_CancelStopsEarly(t *testing.T) {
	var got [][]int
	for tuple := range Enumerate(1, 45, 2) {
		got = append(got, tuple)
		if len(got) == 3 {
			break
		}
	}
	assert.Len(t, got, 3)
}

func TestEnumerate_PanicsOnInvalidRange(t *testing.T) {
	assert.Panics(t, func() { Enumerate(20, 10, 2) })
	assert.Panics(t, func() { Enumerate(0, 10, 0) })
	assert.Panics(t, func() { Enumerate(0, 10, 10) })
}

func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
