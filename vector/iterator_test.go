package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/seqkit/api"
	"github.com/momentics/seqkit/vector"
)

func fill(t *testing.T, vals ...int) *vector.Vector[int] {
	t.Helper()
	v := vector.New[int]()
	for _, x := range vals {
		require.NoError(t, v.PushBack(x))
	}
	return v
}

func TestVectorIteratorTraversal(t *testing.T) {
	v := fill(t, 10, 20, 30)

	var got []int
	for it := v.Begin(); it.Valid(); {
		p, err := it.Get()
		require.NoError(t, err)
		got = append(got, *p)
		require.NoError(t, it.Next())
	}
	assert.Equal(t, []int{10, 20, 30}, got)

	it := v.Begin()
	for it.Valid() {
		require.NoError(t, it.Next())
	}
	assert.Equal(t, api.CodeIteratorEnd, api.Code(it.Next()))
	_, err := it.Get()
	assert.Equal(t, api.CodeIteratorEnd, api.Code(err))
}

func TestVectorIteratorBackward(t *testing.T) {
	v := fill(t, 1, 2, 3, 4)

	it := v.NewIterator(api.Backward)
	var got []int
	for {
		p, err := it.Get()
		require.NoError(t, err)
		got = append(got, *p)
		if err := it.Prev(); err != nil {
			assert.Equal(t, api.CodeIteratorEnd, api.Code(err))
			break
		}
	}
	assert.Equal(t, []int{4, 3, 2, 1}, got)
}

func TestVectorIteratorEquality(t *testing.T) {
	v := fill(t, 1, 2)

	a := v.Begin()
	b := v.Begin()
	assert.True(t, a.Equal(b), "two fresh begins are the same position")

	require.NoError(t, a.Next())
	assert.False(t, a.Equal(b))
	require.NoError(t, a.Next())
	assert.True(t, a.Equal(v.End()), "walking off the last element lands on end")

	other := fill(t, 1, 2)
	assert.False(t, v.Begin().Equal(other.Begin()), "positions on different containers never match")
}

func TestVectorEmptyBeginIsEnd(t *testing.T) {
	v := vector.New[int]()
	assert.True(t, v.Begin().Equal(v.End()))
	assert.False(t, v.Begin().Valid())
}

func TestVectorIteratorClone(t *testing.T) {
	v := fill(t, 5, 6, 7)

	it := v.Begin()
	require.NoError(t, it.Next())
	dup := it.Clone()
	assert.True(t, it.Equal(dup))

	require.NoError(t, it.Next())
	assert.False(t, it.Equal(dup), "clone advances independently")

	p, err := dup.Get()
	require.NoError(t, err)
	assert.Equal(t, 6, *p)
}

func TestVectorIteratorMutatesInPlace(t *testing.T) {
	v := fill(t, 1, 1, 1)

	for it := v.Begin(); it.Valid(); it.Next() {
		p, err := it.Get()
		require.NoError(t, err)
		*p *= 10
	}
	got, _ := v.At(1)
	assert.Equal(t, 10, *got)
}

func TestVectorIteratorDestroy(t *testing.T) {
	v := fill(t, 1)

	it := v.Begin()
	it.Destroy()
	assert.False(t, it.Valid())
	_, err := it.Get()
	assert.Equal(t, api.CodeIteratorEnd, api.Code(err))
	assert.Equal(t, api.CodeIteratorEnd, api.Code(it.Next()))
}

func TestVectorIteratorAfterShrink(t *testing.T) {
	v := fill(t, 1, 2, 3)

	it := v.Begin()
	require.NoError(t, it.Next())
	require.NoError(t, it.Next())
	require.NoError(t, v.PopBack())
	assert.False(t, it.Valid(), "position past the new length is exhausted")
}
