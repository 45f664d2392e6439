// File: algo/find.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linear search, counting and quantifier operations. Searches that
// locate a position return an owned cursor the caller may keep or
// Destroy; absence is reported as ErrNotFound, never as a nil-and-nil
// pair.

package algo

import (
	"github.com/momentics/seqkit/api"
)

// Find returns a cursor on the first element of [begin, end) equal to
// value under cmp. Reports ErrNotFound when no element matches.
func Find[T any](begin, end api.Iterator[T], value T, cmp api.Compare[T]) (api.Iterator[T], error) {
	if begin == nil || end == nil || cmp == nil {
		return nil, api.ErrNullPointer
	}
	return FindIf(begin, end, func(v T) bool { return cmp(v, value) == 0 })
}

// FindIf returns a cursor on the first element satisfying the
// predicate, or ErrNotFound.
func FindIf[T any](begin, end api.Iterator[T], pred api.Predicate[T]) (api.Iterator[T], error) {
	if begin == nil || end == nil || pred == nil {
		return nil, api.ErrNullPointer
	}
	it := begin.Clone()
	for it.Valid() && !it.Equal(end) {
		p, err := it.Get()
		if err != nil {
			it.Destroy()
			return nil, err
		}
		if pred(*p) {
			return it, nil
		}
		if err := it.Next(); err != nil {
			it.Destroy()
			return nil, err
		}
	}
	it.Destroy()
	return nil, api.ErrNotFound
}

// FindIfNot returns a cursor on the first element NOT satisfying the
// predicate, or ErrNotFound.
func FindIfNot[T any](begin, end api.Iterator[T], pred api.Predicate[T]) (api.Iterator[T], error) {
	if begin == nil || end == nil || pred == nil {
		return nil, api.ErrNullPointer
	}
	return FindIf(begin, end, func(v T) bool { return !pred(v) })
}

// Count returns how many elements of [begin, end) equal value under cmp.
func Count[T any](begin, end api.Iterator[T], value T, cmp api.Compare[T]) (int, error) {
	if begin == nil || end == nil || cmp == nil {
		return 0, api.ErrNullPointer
	}
	return CountIf(begin, end, func(v T) bool { return cmp(v, value) == 0 })
}

// CountIf returns how many elements satisfy the predicate.
func CountIf[T any](begin, end api.Iterator[T], pred api.Predicate[T]) (int, error) {
	if begin == nil || end == nil || pred == nil {
		return 0, api.ErrNullPointer
	}
	it := begin.Clone()
	defer it.Destroy()
	n := 0
	for it.Valid() && !it.Equal(end) {
		p, err := it.Get()
		if err != nil {
			return 0, err
		}
		if pred(*p) {
			n++
		}
		if err := it.Next(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// AllOf reports whether every element of [begin, end) satisfies the
// predicate. Vacuously true on an empty range.
func AllOf[T any](begin, end api.Iterator[T], pred api.Predicate[T]) (bool, error) {
	if begin == nil || end == nil || pred == nil {
		return false, api.ErrNullPointer
	}
	it := begin.Clone()
	defer it.Destroy()
	for it.Valid() && !it.Equal(end) {
		p, err := it.Get()
		if err != nil {
			return false, err
		}
		if !pred(*p) {
			return false, nil
		}
		if err := it.Next(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// AnyOf reports whether at least one element satisfies the predicate.
func AnyOf[T any](begin, end api.Iterator[T], pred api.Predicate[T]) (bool, error) {
	if begin == nil || end == nil || pred == nil {
		return false, api.ErrNullPointer
	}
	it := begin.Clone()
	defer it.Destroy()
	for it.Valid() && !it.Equal(end) {
		p, err := it.Get()
		if err != nil {
			return false, err
		}
		if pred(*p) {
			return true, nil
		}
		if err := it.Next(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// NoneOf reports whether no element satisfies the predicate.
func NoneOf[T any](begin, end api.Iterator[T], pred api.Predicate[T]) (bool, error) {
	ok, err := AnyOf(begin, end, pred)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// ForEach applies op to every element of [begin, end) in order. The
// op receives a mutable reference and may rewrite the element.
func ForEach[T any](begin, end api.Iterator[T], op api.UnaryOp[T]) error {
	if begin == nil || end == nil || op == nil {
		return api.ErrNullPointer
	}
	it := begin.Clone()
	defer it.Destroy()
	for it.Valid() && !it.Equal(end) {
		p, err := it.Get()
		if err != nil {
			return err
		}
		op(p)
		if err := it.Next(); err != nil {
			return err
		}
	}
	return nil
}

// AdjacentFind returns a cursor on the first element that equals its
// immediate successor under cmp, or ErrNotFound.
func AdjacentFind[T any](begin, end api.Iterator[T], cmp api.Compare[T]) (api.Iterator[T], error) {
	if begin == nil || end == nil || cmp == nil {
		return nil, api.ErrNullPointer
	}
	cur := begin.Clone()
	if !cur.Valid() || cur.Equal(end) {
		cur.Destroy()
		return nil, api.ErrNotFound
	}
	next := cur.Clone()
	defer next.Destroy()
	if err := next.Next(); err != nil {
		cur.Destroy()
		return nil, err
	}
	for next.Valid() && !next.Equal(end) {
		cp, err := cur.Get()
		if err != nil {
			cur.Destroy()
			return nil, err
		}
		np, err := next.Get()
		if err != nil {
			cur.Destroy()
			return nil, err
		}
		if cmp(*cp, *np) == 0 {
			return cur, nil
		}
		if err := cur.Next(); err != nil {
			cur.Destroy()
			return nil, err
		}
		if err := next.Next(); err != nil {
			cur.Destroy()
			return nil, err
		}
	}
	cur.Destroy()
	return nil, api.ErrNotFound
}

// FindFirstOf returns a cursor on the first element of [begin1, end1)
// equal to any element of [begin2, end2), or ErrNotFound.
func FindFirstOf[T any](begin1, end1, begin2, end2 api.Iterator[T], cmp api.Compare[T]) (api.Iterator[T], error) {
	if begin1 == nil || end1 == nil || begin2 == nil || end2 == nil || cmp == nil {
		return nil, api.ErrNullPointer
	}
	return FindIf(begin1, end1, func(v T) bool {
		ok, err := AnyOf(begin2, end2, func(c T) bool { return cmp(v, c) == 0 })
		return err == nil && ok
	})
}

// FindFirstNotOf returns a cursor on the first element of
// [begin1, end1) equal to no element of [begin2, end2), or ErrNotFound.
func FindFirstNotOf[T any](begin1, end1, begin2, end2 api.Iterator[T], cmp api.Compare[T]) (api.Iterator[T], error) {
	if begin1 == nil || end1 == nil || begin2 == nil || end2 == nil || cmp == nil {
		return nil, api.ErrNullPointer
	}
	return FindIf(begin1, end1, func(v T) bool {
		ok, err := NoneOf(begin2, end2, func(c T) bool { return cmp(v, c) == 0 })
		return err == nil && ok
	})
}
