// File: algo/permutation.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lexicographic permutation stepping. Both directions share the same
// shape: locate the rightmost pivot breaking the suffix monotony,
// swap it with its closest successor (predecessor) in the suffix,
// reverse the suffix. Element access goes through logical-index
// re-walks, so linked containers work at O(n^2) per step.

package algo

import (
	"github.com/momentics/seqkit/api"
)

// NextPermutation rearranges [begin, end) into the lexicographically
// next ordering under cmp and returns true. When the range already
// holds the final (fully descending) ordering it wraps around to the
// first one and returns false.
func NextPermutation[T any](begin, end api.Iterator[T], cmp api.Compare[T]) (bool, error) {
	if begin == nil || end == nil || cmp == nil {
		return false, api.ErrNullPointer
	}
	n, err := Distance(begin, end)
	if err != nil {
		return false, err
	}
	if n < 2 {
		return false, nil
	}
	// rightmost ascent: largest i with element[i-1] < element[i]
	for i := n - 1; i > 0; i-- {
		pivot, err := valueAt(begin, i-1)
		if err != nil {
			return false, err
		}
		cur, err := valueAt(begin, i)
		if err != nil {
			return false, err
		}
		if cmp(pivot, cur) >= 0 {
			continue
		}
		// rightmost j >= i with element[j] > pivot; exists because
		// element[i] qualifies
		for j := n - 1; j >= i; j-- {
			v, err := valueAt(begin, j)
			if err != nil {
				return false, err
			}
			if cmp(v, pivot) > 0 {
				if err := swapAt(begin, i-1, j); err != nil {
					return false, err
				}
				if err := reverseFrom(begin, end, i); err != nil {
					return false, err
				}
				return true, nil
			}
		}
	}
	if err := Reverse(begin, end); err != nil {
		return false, err
	}
	return false, nil
}

// PrevPermutation rearranges [begin, end) into the lexicographically
// previous ordering under cmp and returns true. When the range already
// holds the first (fully ascending) ordering it wraps around to the
// final one and returns false.
func PrevPermutation[T any](begin, end api.Iterator[T], cmp api.Compare[T]) (bool, error) {
	if begin == nil || end == nil || cmp == nil {
		return false, api.ErrNullPointer
	}
	n, err := Distance(begin, end)
	if err != nil {
		return false, err
	}
	if n < 2 {
		return false, nil
	}
	// rightmost descent: largest i with element[i-1] > element[i]
	for i := n - 1; i > 0; i-- {
		pivot, err := valueAt(begin, i-1)
		if err != nil {
			return false, err
		}
		cur, err := valueAt(begin, i)
		if err != nil {
			return false, err
		}
		if cmp(pivot, cur) <= 0 {
			continue
		}
		// rightmost j >= i with element[j] < pivot
		for j := n - 1; j >= i; j-- {
			v, err := valueAt(begin, j)
			if err != nil {
				return false, err
			}
			if cmp(v, pivot) < 0 {
				if err := swapAt(begin, i-1, j); err != nil {
					return false, err
				}
				if err := reverseFrom(begin, end, i); err != nil {
					return false, err
				}
				return true, nil
			}
		}
	}
	if err := Reverse(begin, end); err != nil {
		return false, err
	}
	return false, nil
}

// reverseFrom reverses the suffix starting at logical index from.
func reverseFrom[T any](begin, end api.Iterator[T], from int) error {
	s, err := cloneAt(begin, from)
	if err != nil {
		return err
	}
	defer s.Destroy()
	return Reverse(s, end)
}
