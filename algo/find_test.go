package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/seqkit/algo"
	"github.com/momentics/seqkit/api"
)

func TestFindLocatesFirstMatch(t *testing.T) {
	eachKind(t, []int{5, 1, 7, 1, 9}, func(t *testing.T, s seq) {
		it, err := algo.Find(s.begin(), s.end(), 1, intCmp)
		require.NoError(t, err)
		defer it.Destroy()
		p, err := it.Get()
		require.NoError(t, err)
		assert.Equal(t, 1, *p)

		// prove it is the first occurrence by rewriting through it
		*p = 42
		assert.Equal(t, []int{5, 42, 7, 1, 9}, s.dump())

		_, err = algo.Find(s.begin(), s.end(), 8, intCmp)
		assert.Equal(t, api.CodeNotFound, api.Code(err))
	})
}

func TestFindIfVariants(t *testing.T) {
	eachKind(t, []int{3, 5, 4, 6}, func(t *testing.T, s seq) {
		it, err := algo.FindIf(s.begin(), s.end(), isEven)
		require.NoError(t, err)
		p, err := it.Get()
		require.NoError(t, err)
		assert.Equal(t, 4, *p)
		it.Destroy()

		it, err = algo.FindIfNot(s.begin(), s.end(), func(v int) bool { return v < 6 })
		require.NoError(t, err)
		p, err = it.Get()
		require.NoError(t, err)
		assert.Equal(t, 6, *p)
		it.Destroy()

		_, err = algo.FindIf(s.begin(), s.end(), func(v int) bool { return v > 100 })
		assert.Equal(t, api.CodeNotFound, api.Code(err))
	})
}

func TestFindOnEmptyRange(t *testing.T) {
	eachKind(t, nil, func(t *testing.T, s seq) {
		_, err := algo.Find(s.begin(), s.end(), 1, intCmp)
		assert.Equal(t, api.CodeNotFound, api.Code(err))
	})
}

func TestCountAndCountIf(t *testing.T) {
	eachKind(t, []int{2, 7, 2, 2, 5}, func(t *testing.T, s seq) {
		n, err := algo.Count(s.begin(), s.end(), 2, intCmp)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		n, err = algo.Count(s.begin(), s.end(), 9, intCmp)
		require.NoError(t, err)
		assert.Zero(t, n)

		n, err = algo.CountIf(s.begin(), s.end(), func(v int) bool { return v > 2 })
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestQuantifiers(t *testing.T) {
	eachKind(t, []int{2, 4, 6}, func(t *testing.T, s seq) {
		ok, err := algo.AllOf(s.begin(), s.end(), isEven)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = algo.AnyOf(s.begin(), s.end(), func(v int) bool { return v > 5 })
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = algo.NoneOf(s.begin(), s.end(), func(v int) bool { return v < 0 })
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = algo.AllOf(s.begin(), s.end(), func(v int) bool { return v > 2 })
		require.NoError(t, err)
		assert.False(t, ok)
	})
	eachKind(t, nil, func(t *testing.T, s seq) {
		ok, err := algo.AllOf(s.begin(), s.end(), isEven)
		require.NoError(t, err)
		assert.True(t, ok, "vacuous truth on empty range")

		ok, err = algo.AnyOf(s.begin(), s.end(), isEven)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestForEachMutatesInOrder(t *testing.T) {
	eachKind(t, []int{1, 2, 3}, func(t *testing.T, s seq) {
		var seen []int
		err := algo.ForEach(s.begin(), s.end(), func(v *int) {
			seen = append(seen, *v)
			*v *= 10
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, seen)
		assert.Equal(t, []int{10, 20, 30}, s.dump())
	})
}

func TestAdjacentFind(t *testing.T) {
	eachKind(t, []int{1, 2, 2, 3, 3}, func(t *testing.T, s seq) {
		it, err := algo.AdjacentFind(s.begin(), s.end(), intCmp)
		require.NoError(t, err)
		defer it.Destroy()
		p, err := it.Get()
		require.NoError(t, err)
		assert.Equal(t, 2, *p)
		// first element of the first equal pair
		*p = 99
		assert.Equal(t, []int{1, 99, 2, 3, 3}, s.dump())
	})
	eachKind(t, []int{1, 2, 3}, func(t *testing.T, s seq) {
		_, err := algo.AdjacentFind(s.begin(), s.end(), intCmp)
		assert.Equal(t, api.CodeNotFound, api.Code(err))
	})
}

func TestFindFirstOfAndNotOf(t *testing.T) {
	eachKind(t, []int{7, 3, 9, 4}, func(t *testing.T, s seq) {
		set := vectorSeq(t, 4, 9)

		it, err := algo.FindFirstOf(s.begin(), s.end(), set.begin(), set.end(), intCmp)
		require.NoError(t, err)
		p, err := it.Get()
		require.NoError(t, err)
		assert.Equal(t, 9, *p)
		it.Destroy()

		it, err = algo.FindFirstNotOf(s.begin(), s.end(), set.begin(), set.end(), intCmp)
		require.NoError(t, err)
		p, err = it.Get()
		require.NoError(t, err)
		assert.Equal(t, 7, *p)
		it.Destroy()

		miss := vectorSeq(t, 100, 200)
		_, err = algo.FindFirstOf(s.begin(), s.end(), miss.begin(), miss.end(), intCmp)
		assert.Equal(t, api.CodeNotFound, api.Code(err))
	})
}

func TestDistanceAndAdvance(t *testing.T) {
	eachKind(t, []int{1, 2, 3, 4}, func(t *testing.T, s seq) {
		n, err := algo.Distance(s.begin(), s.end())
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		it := s.begin()
		defer it.Destroy()
		require.NoError(t, algo.Advance(it, 3))
		p, err := it.Get()
		require.NoError(t, err)
		assert.Equal(t, 4, *p)

		require.NoError(t, algo.Advance(it, -2))
		p, err = it.Get()
		require.NoError(t, err)
		assert.Equal(t, 2, *p)

		// run off the front
		err = algo.Advance(it, -5)
		assert.Equal(t, api.CodeIteratorEnd, api.Code(err))
	})
	eachKind(t, nil, func(t *testing.T, s seq) {
		n, err := algo.Distance(s.begin(), s.end())
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
