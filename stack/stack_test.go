package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/seqkit/api"
	"github.com/momentics/seqkit/pool"
	"github.com/momentics/seqkit/stack"
	"github.com/momentics/seqkit/vector"
)

func TestStackLIFO(t *testing.T) {
	s := stack.New[int]()
	assert.True(t, s.Empty())
	assert.Equal(t, api.CodeContainerEmpty, api.Code(s.Pop()))
	_, err := s.Top()
	assert.Equal(t, api.CodeContainerEmpty, api.Code(err))

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Push(i * 10))
	}
	assert.Equal(t, 3, s.Len())

	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, 30, *top)

	var got []int
	for !s.Empty() {
		p, err := s.Top()
		require.NoError(t, err)
		got = append(got, *p)
		require.NoError(t, s.Pop())
	}
	assert.Equal(t, []int{30, 20, 10}, got)
}

func TestStackFromVector(t *testing.T) {
	_, err := stack.NewFromVector[int](nil, false)
	assert.Equal(t, api.CodeNullPointer, api.Code(err))

	v := vector.New[int]()
	require.NoError(t, v.PushBack(1))
	s, err := stack.NewFromVector(v, false)
	require.NoError(t, err)

	require.NoError(t, s.Push(2))
	assert.Equal(t, 2, v.Len(), "adapter and vector share storage")
	assert.Same(t, v, s.Vector())

	s.Destroy()
	assert.Equal(t, 2, v.Len(), "unowned vector survives adapter teardown")
	assert.Equal(t, api.CodeInvalidArgument, api.Code(s.Push(3)))
}

func TestStackOwnedDestroy(t *testing.T) {
	v := vector.New[int]()
	s, err := stack.NewFromVector(v, true)
	require.NoError(t, err)
	require.NoError(t, s.Push(1))

	s.Destroy()
	assert.Equal(t, api.CodeInvalidArgument, api.Code(v.PushBack(2)), "owned vector is destroyed with the adapter")
}

func TestStackCapacityForwarding(t *testing.T) {
	s := stack.New[int](vector.WithCapacity[int](8))
	assert.Equal(t, 8, s.Cap())
	require.NoError(t, s.Reserve(100))
	assert.GreaterOrEqual(t, s.Cap(), 100)

	assert.Equal(t, api.CodeInvalidArgument, api.Code(s.SetGrowthFactor(0.9)))
	require.NoError(t, s.SetGrowthFactor(3.0))
}

func TestStackBlockPoolForwarding(t *testing.T) {
	p, err := pool.NewBlockPool[int](64, 2)
	require.NoError(t, err)

	s := stack.New[int]()
	require.NoError(t, s.SetBlockPool(p))
	require.NoError(t, s.Push(9))
	assert.Equal(t, int64(1), p.Stats().Allocated)

	s.RemoveBlockPool()
	assert.Equal(t, int64(0), p.Stats().Allocated)
	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, 9, *top)
}

func TestStackDestructorOption(t *testing.T) {
	dropped := 0
	s := stack.New[int](vector.WithDestructor[int](func(*int) { dropped++ }))
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.NoError(t, s.Pop())
	s.Clear()
	assert.Equal(t, 2, dropped)
}
