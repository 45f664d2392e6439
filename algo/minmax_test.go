package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/seqkit/algo"
	"github.com/momentics/seqkit/api"
)

func TestMinMaxElement(t *testing.T) {
	eachKind(t, []int{5, 1, 7, 1, 9, 9}, func(t *testing.T, s seq) {
		min, err := algo.MinElement(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.Equal(t, 1, *min)

		max, err := algo.MaxElement(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.Equal(t, 9, *max)

		lo, hi, err := algo.MinMaxElement(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.Equal(t, 1, *lo)
		assert.Equal(t, 9, *hi)

		// references point into the container: the first of the tied
		// minima is the one returned and the one mutated
		*min = -1
		assert.Equal(t, []int{5, -1, 7, 1, 9, 9}, s.dump())
	})
}

func TestMinMaxSingleElement(t *testing.T) {
	eachKind(t, []int{3}, func(t *testing.T, s seq) {
		lo, hi, err := algo.MinMaxElement(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		assert.Equal(t, 3, *lo)
		assert.Equal(t, 3, *hi)
	})
}

func TestMinMaxEmptyRange(t *testing.T) {
	eachKind(t, nil, func(t *testing.T, s seq) {
		_, err := algo.MinElement(s.begin(), s.end(), intCmp)
		assert.Equal(t, api.CodeContainerEmpty, api.Code(err))
		_, err = algo.MaxElement(s.begin(), s.end(), intCmp)
		assert.Equal(t, api.CodeContainerEmpty, api.Code(err))
		_, _, err = algo.MinMaxElement(s.begin(), s.end(), intCmp)
		assert.Equal(t, api.CodeContainerEmpty, api.Code(err))
	})
}

func TestMinMaxNilArguments(t *testing.T) {
	s := vectorSeq(t, 1)
	_, err := algo.MinElement(s.begin(), s.end(), nil)
	assert.Equal(t, api.CodeNullPointer, api.Code(err))
	_, err = algo.MaxElement[int](nil, nil, intCmp)
	assert.Equal(t, api.CodeNullPointer, api.Code(err))
}
