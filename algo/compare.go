// File: algo/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Two-range operations: pairwise equality, prefix/suffix tests,
// subsequence search, lexicographic ordering and permutation checks.
// All of them treat element equality as cmp(a, b) == 0.

package algo

import (
	"github.com/momentics/seqkit/api"
)

// Equal reports whether [begin1, end1) and the sequence starting at
// begin2 hold pairwise equal elements under cmp. The second sequence
// must contain exactly as many elements as the first range: running
// out early and extending past the compared prefix both report false.
func Equal[T any](begin1, end1, begin2 api.Iterator[T], cmp api.Compare[T]) (bool, error) {
	if begin1 == nil || end1 == nil || begin2 == nil || cmp == nil {
		return false, api.ErrNullPointer
	}
	it1 := begin1.Clone()
	defer it1.Destroy()
	it2 := begin2.Clone()
	defer it2.Destroy()
	for it1.Valid() && !it1.Equal(end1) {
		if !it2.Valid() {
			return false, nil
		}
		p1, err := it1.Get()
		if err != nil {
			return false, err
		}
		p2, err := it2.Get()
		if err != nil {
			return false, err
		}
		if cmp(*p1, *p2) != 0 {
			return false, nil
		}
		if err := it1.Next(); err != nil {
			return false, err
		}
		if err := it2.Next(); err != nil {
			return false, err
		}
	}
	return !it2.Valid(), nil
}

// StartsWith reports whether [begin1, end1) begins with the elements
// of [begin2, end2). An empty second range is a prefix of anything.
func StartsWith[T any](begin1, end1, begin2, end2 api.Iterator[T], cmp api.Compare[T]) (bool, error) {
	if begin1 == nil || end1 == nil || begin2 == nil || end2 == nil || cmp == nil {
		return false, api.ErrNullPointer
	}
	n1, err := Distance(begin1, end1)
	if err != nil {
		return false, err
	}
	n2, err := Distance(begin2, end2)
	if err != nil {
		return false, err
	}
	if n1 < n2 {
		return false, nil
	}
	return pairwiseEqual(begin1, begin2, end2, cmp)
}

// EndsWith reports whether [begin1, end1) ends with the elements of
// [begin2, end2). An empty second range is a suffix of anything.
func EndsWith[T any](begin1, end1, begin2, end2 api.Iterator[T], cmp api.Compare[T]) (bool, error) {
	if begin1 == nil || end1 == nil || begin2 == nil || end2 == nil || cmp == nil {
		return false, api.ErrNullPointer
	}
	n1, err := Distance(begin1, end1)
	if err != nil {
		return false, err
	}
	n2, err := Distance(begin2, end2)
	if err != nil {
		return false, err
	}
	if n1 < n2 {
		return false, nil
	}
	tail, err := cloneAt(begin1, n1-n2)
	if err != nil {
		return false, err
	}
	defer tail.Destroy()
	return pairwiseEqual(tail, begin2, end2, cmp)
}

// pairwiseEqual walks [nb, ne) against the sequence starting at hay,
// reporting whether every pair compares equal. The caller guarantees
// hay holds at least as many elements.
func pairwiseEqual[T any](hay, nb, ne api.Iterator[T], cmp api.Compare[T]) (bool, error) {
	h := hay.Clone()
	defer h.Destroy()
	n := nb.Clone()
	defer n.Destroy()
	for n.Valid() && !n.Equal(ne) {
		if !h.Valid() {
			return false, nil
		}
		hp, err := h.Get()
		if err != nil {
			return false, err
		}
		np, err := n.Get()
		if err != nil {
			return false, err
		}
		if cmp(*hp, *np) != 0 {
			return false, nil
		}
		if err := h.Next(); err != nil {
			return false, err
		}
		if err := n.Next(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Search returns a cursor on the first occurrence of the needle
// [begin2, end2) inside the haystack [begin1, end1). An empty needle
// reports ErrInvalidArgument; absence reports ErrNotFound.
func Search[T any](begin1, end1, begin2, end2 api.Iterator[T], cmp api.Compare[T]) (api.Iterator[T], error) {
	if begin1 == nil || end1 == nil || begin2 == nil || end2 == nil || cmp == nil {
		return nil, api.ErrNullPointer
	}
	nlen, err := Distance(begin2, end2)
	if err != nil {
		return nil, err
	}
	if nlen == 0 {
		return nil, api.NewError(api.CodeInvalidArgument, "empty needle range")
	}
	hlen, err := Distance(begin1, end1)
	if err != nil {
		return nil, err
	}
	outer := begin1.Clone()
	for off := 0; off+nlen <= hlen; off++ {
		ok, err := pairwiseEqual(outer, begin2, end2, cmp)
		if err != nil {
			outer.Destroy()
			return nil, err
		}
		if ok {
			return outer, nil
		}
		if err := outer.Next(); err != nil {
			outer.Destroy()
			return nil, err
		}
	}
	outer.Destroy()
	return nil, api.ErrNotFound
}

// FindEnd returns a cursor on the LAST occurrence of the needle
// [begin2, end2) inside [begin1, end1). An empty needle reports
// ErrInvalidArgument; absence reports ErrNotFound.
func FindEnd[T any](begin1, end1, begin2, end2 api.Iterator[T], cmp api.Compare[T]) (api.Iterator[T], error) {
	if begin1 == nil || end1 == nil || begin2 == nil || end2 == nil || cmp == nil {
		return nil, api.ErrNullPointer
	}
	nlen, err := Distance(begin2, end2)
	if err != nil {
		return nil, err
	}
	if nlen == 0 {
		return nil, api.NewError(api.CodeInvalidArgument, "empty needle range")
	}
	hlen, err := Distance(begin1, end1)
	if err != nil {
		return nil, err
	}
	var last api.Iterator[T]
	outer := begin1.Clone()
	for off := 0; off+nlen <= hlen; off++ {
		ok, err := pairwiseEqual(outer, begin2, end2, cmp)
		if err != nil {
			if last != nil {
				last.Destroy()
			}
			outer.Destroy()
			return nil, err
		}
		if ok {
			if last != nil {
				last.Destroy()
			}
			last = outer.Clone()
		}
		if err := outer.Next(); err != nil {
			if last != nil {
				last.Destroy()
			}
			outer.Destroy()
			return nil, err
		}
	}
	outer.Destroy()
	if last == nil {
		return nil, api.ErrNotFound
	}
	return last, nil
}

// LexicographicalCompare orders [begin1, end1) against [begin2, end2):
// -1 when the first range is lexicographically smaller, +1 when
// greater, 0 when both hold equal elements. A proper prefix orders
// before the longer range.
func LexicographicalCompare[T any](begin1, end1, begin2, end2 api.Iterator[T], cmp api.Compare[T]) (int, error) {
	if begin1 == nil || end1 == nil || begin2 == nil || end2 == nil || cmp == nil {
		return 0, api.ErrNullPointer
	}
	it1 := begin1.Clone()
	defer it1.Destroy()
	it2 := begin2.Clone()
	defer it2.Destroy()
	for it1.Valid() && !it1.Equal(end1) && it2.Valid() && !it2.Equal(end2) {
		p1, err := it1.Get()
		if err != nil {
			return 0, err
		}
		p2, err := it2.Get()
		if err != nil {
			return 0, err
		}
		if c := cmp(*p1, *p2); c != 0 {
			if c < 0 {
				return -1, nil
			}
			return 1, nil
		}
		if err := it1.Next(); err != nil {
			return 0, err
		}
		if err := it2.Next(); err != nil {
			return 0, err
		}
	}
	switch {
	case it1.Valid() && !it1.Equal(end1):
		return 1, nil
	case it2.Valid() && !it2.Equal(end2):
		return -1, nil
	default:
		return 0, nil
	}
}

// IsPermutation reports whether [begin2, end2) is a rearrangement of
// [begin1, end1): same length and the same number of occurrences of
// every element under cmp. Quadratic; no ordering or hashing of T is
// required.
func IsPermutation[T any](begin1, end1, begin2, end2 api.Iterator[T], cmp api.Compare[T]) (bool, error) {
	if begin1 == nil || end1 == nil || begin2 == nil || end2 == nil || cmp == nil {
		return false, api.ErrNullPointer
	}
	n1, err := Distance(begin1, end1)
	if err != nil {
		return false, err
	}
	n2, err := Distance(begin2, end2)
	if err != nil {
		return false, err
	}
	if n1 != n2 {
		return false, nil
	}
	it := begin1.Clone()
	defer it.Destroy()
	for it.Valid() && !it.Equal(end1) {
		p, err := it.Get()
		if err != nil {
			return false, err
		}
		v := *p
		eq := func(c T) bool { return cmp(c, v) == 0 }
		c1, err := CountIf(begin1, end1, eq)
		if err != nil {
			return false, err
		}
		c2, err := CountIf(begin2, end2, eq)
		if err != nil {
			return false, err
		}
		if c1 != c2 {
			return false, nil
		}
		if err := it.Next(); err != nil {
			return false, err
		}
	}
	return true, nil
}
