package internal

import (
	"iter"
	"slices"
)

// Permutations yields every ordering of values, in lexicographic order of
// the input indexes. Each yielded slice is freshly allocated.
func Permutations[T any](values []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		index := make([]int, len(values))
		for n := range index {
			index[n] = n
		}

		for {
			perm := make([]T, len(index))
			for n, i := range index {
				perm[n] = values[i]
			}
			if !yield(perm) {
				return
			}
			if !nextPermutation(index) {
				return
			}
		}
	}
}

// nextPermutation advances index to its next lexicographic ordering,
// returning false once the last ordering has been reached.
func nextPermutation(index []int) bool {
	k := len(index) - 2
	for k >= 0 && index[k] >= index[k+1] {
		k--
	}
	if k < 0 {
		return false
	}

	l := len(index) - 1
	for index[l] <= index[k] {
		l--
	}
	index[k], index[l] = index[l], index[k]
	slices.Reverse(index[k+1:])

	return true
}

// Count returns the number of values yielded by seq.
func Count[T any](seq iter.Seq[T]) (count int) {
	for range seq {
		count++
	}
	return
}
