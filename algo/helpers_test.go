package algo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/seqkit/api"
	"github.com/momentics/seqkit/list"
	"github.com/momentics/seqkit/vector"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isEven(v int) bool { return v%2 == 0 }

// seq hides the backing container behind the pieces the algorithm
// tests need: fresh cursors and a content snapshot.
type seq struct {
	begin func() api.Iterator[int]
	end   func() api.Iterator[int]
	dump  func() []int
}

func vectorSeq(t *testing.T, vals ...int) seq {
	t.Helper()
	v := vector.New[int]()
	for _, x := range vals {
		require.NoError(t, v.PushBack(x))
	}
	return seq{
		begin: v.Begin,
		end:   v.End,
		dump: func() []int {
			out := make([]int, 0, v.Len())
			for i := 0; i < v.Len(); i++ {
				p, err := v.At(i)
				require.NoError(t, err)
				out = append(out, *p)
			}
			return out
		},
	}
}

func listSeq(t *testing.T, vals ...int) seq {
	t.Helper()
	l := list.New[int]()
	for _, x := range vals {
		require.NoError(t, l.PushBack(x))
	}
	return seq{
		begin: l.Begin,
		end:   l.End,
		dump: func() []int {
			out := make([]int, 0, l.Len())
			for n := l.FrontNode(); n != nil; n = n.Next() {
				out = append(out, n.Value)
			}
			return out
		},
	}
}

// eachKind runs the body once over contiguous storage and once over
// linked storage, so every algorithm is exercised against both
// iterator models.
func eachKind(t *testing.T, vals []int, body func(t *testing.T, s seq)) {
	t.Run("vector", func(t *testing.T) {
		body(t, vectorSeq(t, vals...))
	})
	t.Run("list", func(t *testing.T) {
		body(t, listSeq(t, vals...))
	})
}

// at returns a fresh cursor advanced n positions past begin.
func at(t *testing.T, s seq, n int) api.Iterator[int] {
	t.Helper()
	it := s.begin()
	for i := 0; i < n; i++ {
		require.NoError(t, it.Next())
	}
	return it
}
