// File: algo/minmax.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Extremum searches. All three return mutable references into the
// container, valid until the next mutation; the first of several
// equal extrema wins.

package algo

import (
	"github.com/momentics/seqkit/api"
)

// MinElement returns a reference to the smallest element of
// [begin, end) under cmp. An empty range reports ErrContainerEmpty.
func MinElement[T any](begin, end api.Iterator[T], cmp api.Compare[T]) (*T, error) {
	if begin == nil || end == nil || cmp == nil {
		return nil, api.ErrNullPointer
	}
	min, _, err := scanExtrema(begin, end, cmp)
	return min, err
}

// MaxElement returns a reference to the largest element of
// [begin, end) under cmp. An empty range reports ErrContainerEmpty.
func MaxElement[T any](begin, end api.Iterator[T], cmp api.Compare[T]) (*T, error) {
	if begin == nil || end == nil || cmp == nil {
		return nil, api.ErrNullPointer
	}
	_, max, err := scanExtrema(begin, end, cmp)
	return max, err
}

// MinMaxElement returns references to the smallest and largest
// elements of [begin, end) in one walk. An empty range reports
// ErrContainerEmpty.
func MinMaxElement[T any](begin, end api.Iterator[T], cmp api.Compare[T]) (*T, *T, error) {
	if begin == nil || end == nil || cmp == nil {
		return nil, nil, api.ErrNullPointer
	}
	return scanExtrema(begin, end, cmp)
}

// scanExtrema walks the range once, tracking both extrema. Strict
// comparisons keep the first occurrence on ties.
func scanExtrema[T any](begin, end api.Iterator[T], cmp api.Compare[T]) (*T, *T, error) {
	it := begin.Clone()
	defer it.Destroy()
	if !it.Valid() || it.Equal(end) {
		return nil, nil, api.ErrContainerEmpty
	}
	first, err := it.Get()
	if err != nil {
		return nil, nil, err
	}
	min, max := first, first
	if err := it.Next(); err != nil {
		return nil, nil, err
	}
	for it.Valid() && !it.Equal(end) {
		p, err := it.Get()
		if err != nil {
			return nil, nil, err
		}
		if cmp(*p, *min) < 0 {
			min = p
		}
		if cmp(*p, *max) > 0 {
			max = p
		}
		if err := it.Next(); err != nil {
			return nil, nil, err
		}
	}
	return min, max, nil
}
