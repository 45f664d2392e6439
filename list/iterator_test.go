package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/seqkit/api"
	"github.com/momentics/seqkit/list"
)

func build(t *testing.T, vals ...int) *list.List[int] {
	t.Helper()
	l := list.New[int]()
	for _, v := range vals {
		require.NoError(t, l.PushBack(v))
	}
	return l
}

func TestListIteratorTraversal(t *testing.T) {
	l := build(t, 10, 20, 30)

	var got []int
	it := l.Begin()
	for it.Valid() {
		p, err := it.Get()
		require.NoError(t, err)
		got = append(got, *p)
		require.NoError(t, it.Next())
	}
	assert.Equal(t, []int{10, 20, 30}, got)
	assert.Equal(t, api.CodeIteratorEnd, api.Code(it.Next()))
	_, err := it.Get()
	assert.Equal(t, api.CodeIteratorEnd, api.Code(err))
}

func TestListIteratorBackwardFromEnd(t *testing.T) {
	l := build(t, 1, 2, 3)

	// Walking backward from the past-the-end cursor re-enters at the
	// tail and stops at the head.
	it := l.End()
	var got []int
	for {
		if err := it.Prev(); err != nil {
			assert.Equal(t, api.CodeIteratorEnd, api.Code(err))
			break
		}
		p, err := it.Get()
		require.NoError(t, err)
		got = append(got, *p)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestListIteratorBackwardFactory(t *testing.T) {
	l := build(t, 1, 2, 3)

	it := l.NewIterator(api.Backward)
	p, err := it.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, *p)
	require.NoError(t, it.Prev())
	p, err = it.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, *p)
}

func TestListIteratorEquality(t *testing.T) {
	l := build(t, 1, 2)

	a := l.Begin()
	b := l.Begin()
	assert.True(t, a.Equal(b))

	require.NoError(t, a.Next())
	assert.False(t, a.Equal(b))
	require.NoError(t, a.Next())
	assert.True(t, a.Equal(l.End()), "walking off the last node lands on end")

	other := build(t, 1, 2)
	assert.False(t, l.Begin().Equal(other.Begin()))
	assert.False(t, l.End().Equal(other.End()), "past-the-end positions are container-bound")
}

func TestListEmptyBeginIsEnd(t *testing.T) {
	l := list.New[int]()
	assert.True(t, l.Begin().Equal(l.End()))
	assert.False(t, l.Begin().Valid())
	assert.Equal(t, api.CodeIteratorEnd, api.Code(l.End().Prev()))
}

func TestListIteratorClone(t *testing.T) {
	l := build(t, 4, 5, 6)

	it := l.Begin()
	require.NoError(t, it.Next())
	dup := it.Clone()
	assert.True(t, it.Equal(dup))

	require.NoError(t, it.Next())
	assert.False(t, it.Equal(dup))

	p, err := dup.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, *p)
}

func TestListIteratorNodeAnchor(t *testing.T) {
	l := build(t, 1, 3)

	it := l.Begin()
	require.NoError(t, it.Next())
	cursor, ok := it.(*list.Iterator[int])
	require.True(t, ok)
	require.NoError(t, l.InsertBefore(cursor.Node(), 2))

	assert.Equal(t, []int{1, 2, 3}, collect(t, l))
	p, err := it.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, *p, "cursor stays on its node across inserts")
}

func TestListIteratorMutatesInPlace(t *testing.T) {
	l := build(t, 1, 2, 3)

	for it := l.Begin(); it.Valid(); it.Next() {
		p, err := it.Get()
		require.NoError(t, err)
		*p *= 2
	}
	assert.Equal(t, []int{2, 4, 6}, collect(t, l))
}

func TestListIteratorDestroy(t *testing.T) {
	l := build(t, 1)

	it := l.Begin()
	it.Destroy()
	assert.False(t, it.Valid())
	_, err := it.Get()
	assert.Equal(t, api.CodeIteratorEnd, api.Code(err))
	assert.Equal(t, api.CodeIteratorEnd, api.Code(it.Prev()))
}
