// Package combin enumerates strictly-increasing digit tuples with a sum
// constraint. It supersedes the base-10-counter LinearSolver found in an
// earlier revision of the kakuro solver: the later formulation needs only
// sorted-combination enumeration, not arbitrary digit assignment, so this
// package is named for what it does rather than for kakuro.
package combin

import "iter"

// Enumerate yields every strictly-increasing k-tuple of digits drawn from
// 1..9 whose sum lies in [min, max], in lexicographic order. It panics if k
// is outside [1, 9] or min/max are outside [0, 45] or min > max — these are
// caller programming errors, not malformed input.
//
// The search is a constant-memory backtracker: at each position it only
// considers digits whose minimum possible completion (continuing
// 1-by-1 from that digit) doesn't already exceed max, and whose maximum
// possible completion (continuing with the largest digits available)
// doesn't already fall short of min, so infeasible prefixes are never
// explored digit-by-digit.
func Enumerate(min, max, k int) iter.Seq[[]int] {
	if k < 1 || k > 9 || min < 0 || max > 45 || min > max {
		panic("combin: Enumerate called with out-of-range min/max/k")
	}
	return func(yield func([]int) bool) {
		choice := make([]int, k)
		enumerate(choice, 0, 0, 0, min, max, yield)
	}
}

// enumerate fills choice[pos:] with strictly-increasing digits greater than
// top, continuing the running sum, and yields completed tuples whose total
// falls in [min, max]. It returns false once yield asks the caller to stop.
func enumerate(choice []int, pos, top, sum, min, max int, yield func([]int) bool) bool {
	k := len(choice)
	if pos == k {
		if sum >= min && sum <= max {
			return yield(append([]int(nil), choice...))
		}
		return true
	}

	remaining := k - pos
	for v := top + 1; v <= 10-remaining; v++ {
		minCompletion := sum + v*remaining + remaining*(remaining-1)/2
		if minCompletion > max {
			break // every larger v only raises this further
		}
		maxCompletion := sum + v + topDigitsSum(remaining-1)
		if maxCompletion < min {
			continue // this v can't reach min; a larger v might
		}
		choice[pos] = v
		if !enumerate(choice, pos+1, v, sum+v, min, max, yield) {
			return false
		}
	}
	return true
}

// topDigitsSum is the sum of the m largest digits in 1..9.
func topDigitsSum(m int) int {
	return 9*m - m*(m-1)/2
}
