package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/momentics/seqkit/algo"
	"github.com/momentics/seqkit/compare"
	"github.com/momentics/seqkit/vector"
)

func TestOrdered(t *testing.T) {
	ci := compare.Ordered[int]()
	assert.Negative(t, ci(1, 2))
	assert.Positive(t, ci(2, 1))
	assert.Zero(t, ci(3, 3))

	cs := compare.Ordered[string]()
	assert.Negative(t, cs("apple", "banana"))

	cf := compare.Ordered[float64]()
	assert.Negative(t, cf(1.5, 2.5))
}

func TestReverse(t *testing.T) {
	rev := compare.Reverse(compare.Ordered[int]())
	assert.Positive(t, rev(1, 2))
	assert.Negative(t, rev(2, 1))
	assert.Zero(t, rev(3, 3))
}

func TestByKey(t *testing.T) {
	type user struct {
		name string
		age  int
	}
	byAge := compare.ByKey(func(u user) int { return u.age })
	assert.Negative(t, byAge(user{"zoe", 30}, user{"amy", 40}))
	assert.Zero(t, byAge(user{"zoe", 30}, user{"amy", 30}))

	byName := compare.ByKey(func(u user) string { return u.name })
	assert.Positive(t, byName(user{"zoe", 30}, user{"amy", 40}))
}

func TestCollatorLocaleRules(t *testing.T) {
	sv := compare.Collator(language.Swedish)
	assert.Positive(t, sv("ö", "z"), "Swedish collates ö after z")

	en := compare.Collator(language.English)
	assert.Negative(t, en("apple", "banana"))

	ci := compare.Collator(language.English, collate.IgnoreCase)
	assert.Zero(t, ci("Apple", "apple"))

	num := compare.Collator(language.English, collate.Numeric)
	assert.Negative(t, num("9", "10"), "numeric collation orders by value")
}

func TestCollatorDrivesSort(t *testing.T) {
	v := vector.New[string]()
	for _, w := range []string{"pear", "Apple", "orange"} {
		require.NoError(t, v.PushBack(w))
	}
	cmp := compare.Collator(language.English, collate.IgnoreCase)
	require.NoError(t, algo.Sort(v.Begin(), v.End(), cmp, algo.SortMerge))

	got := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		p, err := v.At(i)
		require.NoError(t, err)
		got = append(got, *p)
	}
	assert.Equal(t, []string{"Apple", "orange", "pear"}, got)
}

func TestReverseDrivesDescendingSort(t *testing.T) {
	v := vector.New[int]()
	for _, x := range []int{3, 1, 4, 1, 5} {
		require.NoError(t, v.PushBack(x))
	}
	desc := compare.Reverse(compare.Ordered[int]())
	require.NoError(t, algo.Sort(v.Begin(), v.End(), desc, algo.SortQuick))

	got := make([]int, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		p, err := v.At(i)
		require.NoError(t, err)
		got = append(got, *p)
	}
	assert.Equal(t, []int{5, 4, 3, 1, 1}, got)
}
