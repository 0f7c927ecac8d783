package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutations(t *testing.T) {
	assert := assert.New(t)

	var perms [][]int32
	for perm := range Permutations([]int32{5, 6, 7}) {
		perms = append(perms, perm)
	}

	assert.Equal([][]int32{
		{5, 6, 7},
		{5, 7, 6},
		{6, 5, 7},
		{6, 7, 5},
		{7, 5, 6},
		{7, 6, 5},
	}, perms)
}

func TestPermutations_Count(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, Count(Permutations([]int{})))
	assert.Equal(1, Count(Permutations([]int{1})))
	assert.Equal(120, Count(Permutations([]int{0, 1, 2, 3, 4})))
}

func TestPermutations_Distinct(t *testing.T) {
	assert := assert.New(t)

	var first []int
	for perm := range Permutations([]int{3, 1, 2}) {
		if first == nil {
			first = perm
			continue
		}
		// Each permutation owns its storage.
		assert.NotSame(&first[0], &perm[0])
	}
	assert.True(slices.Equal([]int{3, 1, 2}, first))
}

func TestPermutations_Break(t *testing.T) {
	assert := assert.New(t)

	seen := 0
	for range Permutations([]int{1, 2, 3, 4}) {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(3, seen)
}
