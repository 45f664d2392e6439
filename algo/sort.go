// File: algo/sort.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Four in-place sorting strategies behind one dispatcher. All of them
// address elements purely through the iterator protocol, so the same
// code sorts contiguous and linked storage; the cost of that
// generality differs per strategy and is noted on each.

package algo

import (
	"github.com/momentics/seqkit/api"
)

// Algorithm selects the strategy executed by Sort.
type Algorithm int

const (
	// SortQuick is an unstable quicksort around the last element of
	// each subrange. Average O(n log n) comparisons.
	SortQuick Algorithm = iota
	// SortMerge is a stable merge sort through scratch slices.
	// Splitting by advancing costs O(n log^2 n) on linked storage.
	SortMerge
	// SortHeap is an unstable heap sort over logical indices; every
	// index access re-walks from begin.
	SortHeap
	// SortInsert is a stable insertion sort, cheapest for short or
	// nearly sorted ranges.
	SortInsert
)

// Sort rearranges [begin, end) into ascending order under cmp using
// the selected algorithm. Ranges shorter than two elements succeed as
// no-ops; an unrecognized selector reports ErrInvalidArgument.
func Sort[T any](begin, end api.Iterator[T], cmp api.Compare[T], alg Algorithm) error {
	if begin == nil || end == nil || cmp == nil {
		return api.ErrNullPointer
	}
	switch alg {
	case SortQuick:
		return quickSort(begin, end, cmp)
	case SortMerge:
		return mergeSort(begin, end, cmp)
	case SortHeap:
		return heapSort(begin, end, cmp)
	case SortInsert:
		return insertionSort(begin, end, cmp)
	default:
		return api.NewError(api.CodeInvalidArgument, "unknown sorting algorithm").
			WithContext("algorithm", int(alg))
	}
}

// StableSort sorts [begin, end) keeping the relative order of equal
// elements. It is the merge strategy under its contract name.
func StableSort[T any](begin, end api.Iterator[T], cmp api.Compare[T]) error {
	if begin == nil || end == nil || cmp == nil {
		return api.ErrNullPointer
	}
	return mergeSort(begin, end, cmp)
}

// IsSorted reports whether [begin, end) is in ascending order under
// cmp. Empty and single-element ranges are sorted.
func IsSorted[T any](begin, end api.Iterator[T], cmp api.Compare[T]) (bool, error) {
	if begin == nil || end == nil || cmp == nil {
		return false, api.ErrNullPointer
	}
	cur := begin.Clone()
	defer cur.Destroy()
	if !cur.Valid() || cur.Equal(end) {
		return true, nil
	}
	next := cur.Clone()
	defer next.Destroy()
	if err := next.Next(); err != nil {
		return false, err
	}
	for next.Valid() && !next.Equal(end) {
		cp, err := cur.Get()
		if err != nil {
			return false, err
		}
		np, err := next.Get()
		if err != nil {
			return false, err
		}
		if cmp(*np, *cp) < 0 {
			return false, nil
		}
		if err := cur.Next(); err != nil {
			return false, err
		}
		if err := next.Next(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// quickSort partitions around the value of the last element: a
// boundary cursor trails a scan cursor, swapping every element that
// compares <= pivot onto the left side, then the pivot swaps onto the
// boundary and both sides recurse.
func quickSort[T any](begin, end api.Iterator[T], cmp api.Compare[T]) error {
	n, err := Distance(begin, end)
	if err != nil {
		return err
	}
	if n < 2 {
		return nil
	}

	last, err := cloneAt(begin, n-1)
	if err != nil {
		return err
	}
	defer last.Destroy()
	lp, err := last.Get()
	if err != nil {
		return err
	}
	pivot := *lp

	bound := begin.Clone()
	defer bound.Destroy()
	cur := begin.Clone()
	defer cur.Destroy()
	for !cur.Equal(last) {
		p, err := cur.Get()
		if err != nil {
			return err
		}
		if cmp(*p, pivot) <= 0 {
			if err := IterSwap(bound, cur); err != nil {
				return err
			}
			if err := bound.Next(); err != nil {
				return err
			}
		}
		if err := cur.Next(); err != nil {
			return err
		}
	}
	if err := IterSwap(bound, last); err != nil {
		return err
	}

	if err := quickSort(begin, bound, cmp); err != nil {
		return err
	}
	after := bound.Clone()
	defer after.Destroy()
	if err := after.Next(); err != nil {
		return err
	}
	return quickSort(after, end, cmp)
}

// mergeSort splits at size/2 by advancing, sorts both halves, then
// merges them back through two scratch slices. The left element wins
// ties, which keeps the sort stable.
func mergeSort[T any](begin, end api.Iterator[T], cmp api.Compare[T]) error {
	n, err := Distance(begin, end)
	if err != nil {
		return err
	}
	if n < 2 {
		return nil
	}

	mid, err := cloneAt(begin, n/2)
	if err != nil {
		return err
	}
	defer mid.Destroy()

	if err := mergeSort(begin, mid, cmp); err != nil {
		return err
	}
	if err := mergeSort(mid, end, cmp); err != nil {
		return err
	}
	return mergeHalves(begin, mid, end, cmp, n/2, n-n/2)
}

// mergeHalves copies the sorted halves [begin, mid) and [mid, end)
// into scratch slices and writes the merged order back over the range.
func mergeHalves[T any](begin, mid, end api.Iterator[T], cmp api.Compare[T], ln, rn int) error {
	left := make([]T, 0, ln)
	right := make([]T, 0, rn)

	it := begin.Clone()
	for !it.Equal(mid) {
		p, err := it.Get()
		if err != nil {
			it.Destroy()
			return err
		}
		left = append(left, *p)
		if err := it.Next(); err != nil {
			it.Destroy()
			return err
		}
	}
	for it.Valid() && !it.Equal(end) {
		p, err := it.Get()
		if err != nil {
			it.Destroy()
			return err
		}
		right = append(right, *p)
		if err := it.Next(); err != nil {
			it.Destroy()
			return err
		}
	}
	it.Destroy()

	out := begin.Clone()
	defer out.Destroy()
	li, ri := 0, 0
	for li < len(left) || ri < len(right) {
		var v T
		switch {
		case ri >= len(right):
			v = left[li]
			li++
		case li >= len(left):
			v = right[ri]
			ri++
		case cmp(left[li], right[ri]) <= 0:
			v = left[li]
			li++
		default:
			v = right[ri]
			ri++
		}
		p, err := out.Get()
		if err != nil {
			return err
		}
		*p = v
		if err := out.Next(); err != nil {
			return err
		}
	}
	return nil
}

// heapSort builds a max-heap over logical indices, then repeatedly
// swaps the root past the shrinking heap boundary and re-sifts.
func heapSort[T any](begin, end api.Iterator[T], cmp api.Compare[T]) error {
	n, err := Distance(begin, end)
	if err != nil {
		return err
	}
	if n < 2 {
		return nil
	}
	for i := n/2 - 1; i >= 0; i-- {
		if err := siftDown(begin, cmp, i, n); err != nil {
			return err
		}
	}
	for i := n - 1; i > 0; i-- {
		if err := swapAt(begin, 0, i); err != nil {
			return err
		}
		if err := siftDown(begin, cmp, 0, i); err != nil {
			return err
		}
	}
	return nil
}

// siftDown restores the max-heap property below root within the first
// size logical indices.
func siftDown[T any](begin api.Iterator[T], cmp api.Compare[T], root, size int) error {
	largest := root
	largestVal, err := valueAt(begin, root)
	if err != nil {
		return err
	}
	if left := 2*root + 1; left < size {
		v, err := valueAt(begin, left)
		if err != nil {
			return err
		}
		if cmp(v, largestVal) > 0 {
			largest = left
			largestVal = v
		}
	}
	if right := 2*root + 2; right < size {
		v, err := valueAt(begin, right)
		if err != nil {
			return err
		}
		if cmp(v, largestVal) > 0 {
			largest = right
			largestVal = v
		}
	}
	if largest == root {
		return nil
	}
	if err := swapAt(begin, root, largest); err != nil {
		return err
	}
	return siftDown(begin, cmp, largest, size)
}

// insertionSort shifts strictly greater elements one logical slot to
// the right, then drops the saved key into the gap. Equal keys never
// move past each other.
func insertionSort[T any](begin, end api.Iterator[T], cmp api.Compare[T]) error {
	n, err := Distance(begin, end)
	if err != nil {
		return err
	}
	if n < 2 {
		return nil
	}
	for i := 1; i < n; i++ {
		key, err := valueAt(begin, i)
		if err != nil {
			return err
		}
		j := i - 1
		for j >= 0 {
			v, err := valueAt(begin, j)
			if err != nil {
				return err
			}
			if cmp(v, key) <= 0 {
				break
			}
			if err := setAt(begin, j+1, v); err != nil {
				return err
			}
			j--
		}
		if err := setAt(begin, j+1, key); err != nil {
			return err
		}
	}
	return nil
}
