package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/seqkit/algo"
)

func TestNextPermutationWalksEveryOrdering(t *testing.T) {
	want := [][]int{
		{1, 2, 3},
		{1, 3, 2},
		{2, 1, 3},
		{2, 3, 1},
		{3, 1, 2},
		{3, 2, 1},
	}
	eachKind(t, []int{1, 2, 3}, func(t *testing.T, s seq) {
		got := [][]int{s.dump()}
		for {
			more, err := algo.NextPermutation(s.begin(), s.end(), intCmp)
			require.NoError(t, err)
			if !more {
				break
			}
			got = append(got, s.dump())
			require.Less(t, len(got), 10, "permutation walk must terminate")
		}
		assert.Equal(t, want, got)
		assert.Equal(t, []int{1, 2, 3}, s.dump(), "wrap-around restores the first ordering")
	})
}

func TestPrevPermutationWalksBackward(t *testing.T) {
	want := [][]int{
		{3, 2, 1},
		{3, 1, 2},
		{2, 3, 1},
		{2, 1, 3},
		{1, 3, 2},
		{1, 2, 3},
	}
	eachKind(t, []int{3, 2, 1}, func(t *testing.T, s seq) {
		got := [][]int{s.dump()}
		for {
			more, err := algo.PrevPermutation(s.begin(), s.end(), intCmp)
			require.NoError(t, err)
			if !more {
				break
			}
			got = append(got, s.dump())
			require.Less(t, len(got), 10)
		}
		assert.Equal(t, want, got)
		assert.Equal(t, []int{3, 2, 1}, s.dump(), "wrap-around restores the final ordering")
	})
}

func TestNextPermutationWithDuplicates(t *testing.T) {
	eachKind(t, []int{1, 1, 2}, func(t *testing.T, s seq) {
		more, err := algo.NextPermutation(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.True(t, more)
		assert.Equal(t, []int{1, 2, 1}, s.dump())

		more, err = algo.NextPermutation(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.True(t, more)
		assert.Equal(t, []int{2, 1, 1}, s.dump())

		more, err = algo.NextPermutation(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.False(t, more)
		assert.Equal(t, []int{1, 1, 2}, s.dump())
	})
}

func TestPermutationTrivialRanges(t *testing.T) {
	eachKind(t, []int{5}, func(t *testing.T, s seq) {
		more, err := algo.NextPermutation(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.False(t, more)
		assert.Equal(t, []int{5}, s.dump())
	})
	eachKind(t, nil, func(t *testing.T, s seq) {
		more, err := algo.NextPermutation(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.False(t, more)

		more, err = algo.PrevPermutation(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.False(t, more)
	})
}

func TestPermutationRoundTrip(t *testing.T) {
	eachKind(t, []int{2, 3, 1}, func(t *testing.T, s seq) {
		more, err := algo.NextPermutation(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.True(t, more)
		assert.Equal(t, []int{3, 1, 2}, s.dump())

		more, err = algo.PrevPermutation(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.True(t, more)
		assert.Equal(t, []int{2, 3, 1}, s.dump(), "prev undoes next")
	})
}
