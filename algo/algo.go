// File: algo/algo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range plumbing shared by every algorithm in the package: distance
// measurement, cursor advancement and logical-index element access,
// all expressed through the iterator protocol alone.

package algo

import (
	"github.com/momentics/seqkit/api"
)

// Distance counts the elements in [begin, end) by cloning begin and
// walking forward. O(n); the arguments themselves never move.
func Distance[T any](begin, end api.Iterator[T]) (int, error) {
	if begin == nil || end == nil {
		return 0, api.ErrNullPointer
	}
	it := begin.Clone()
	defer it.Destroy()
	n := 0
	for it.Valid() && !it.Equal(end) {
		n++
		if err := it.Next(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// Advance moves it forward n positions, or backward -n positions when
// n is negative. Stops with ErrIteratorEnd if the walk runs off either
// boundary of the sequence; the cursor keeps the last position reached.
func Advance[T any](it api.Iterator[T], n int) error {
	if it == nil {
		return api.ErrNullPointer
	}
	for ; n > 0; n-- {
		if err := it.Next(); err != nil {
			return err
		}
	}
	for ; n < 0; n++ {
		if err := it.Prev(); err != nil {
			return err
		}
	}
	return nil
}

// Swap exchanges two element values through their pointers.
func Swap[T any](a, b *T) error {
	if a == nil || b == nil {
		return api.ErrNullPointer
	}
	*a, *b = *b, *a
	return nil
}

// IterSwap exchanges the elements referenced by two dereferenceable
// cursors. The cursors themselves stay where they are.
func IterSwap[T any](a, b api.Iterator[T]) error {
	if a == nil || b == nil {
		return api.ErrNullPointer
	}
	pa, err := a.Get()
	if err != nil {
		return err
	}
	pb, err := b.Get()
	if err != nil {
		return err
	}
	*pa, *pb = *pb, *pa
	return nil
}

// cloneAt returns an owned clone of begin advanced idx positions.
func cloneAt[T any](begin api.Iterator[T], idx int) (api.Iterator[T], error) {
	it := begin.Clone()
	for i := 0; i < idx; i++ {
		if err := it.Next(); err != nil {
			it.Destroy()
			return nil, err
		}
	}
	return it, nil
}

// valueAt reads the element idx positions after begin by re-walking.
func valueAt[T any](begin api.Iterator[T], idx int) (T, error) {
	var zero T
	it, err := cloneAt(begin, idx)
	if err != nil {
		return zero, err
	}
	defer it.Destroy()
	p, err := it.Get()
	if err != nil {
		return zero, err
	}
	return *p, nil
}

// setAt overwrites the element idx positions after begin by re-walking.
func setAt[T any](begin api.Iterator[T], idx int, v T) error {
	it, err := cloneAt(begin, idx)
	if err != nil {
		return err
	}
	defer it.Destroy()
	p, err := it.Get()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// swapAt exchanges the elements at two logical indices, re-walking
// from begin for each of them.
func swapAt[T any](begin api.Iterator[T], i, j int) error {
	a, err := cloneAt(begin, i)
	if err != nil {
		return err
	}
	defer a.Destroy()
	b, err := cloneAt(begin, j)
	if err != nil {
		return err
	}
	defer b.Destroy()
	return IterSwap(a, b)
}

// rangeEmpty reports whether [begin, end) holds no elements.
func rangeEmpty[T any](begin, end api.Iterator[T]) bool {
	it := begin.Clone()
	defer it.Destroy()
	return !it.Valid() || it.Equal(end)
}
