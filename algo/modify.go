// File: algo/modify.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutating range operations: copying, transforming, filling,
// compacting, reversing, rotating, shuffling and partitioning.
// Destination ranges are written through Get references, so element
// destructors configured on the destination container do NOT run for
// overwritten values; use container Set when that matters. Copies
// stop silently when the destination runs out of room.

package algo

import (
	"sync/atomic"
	"time"

	"github.com/momentics/seqkit/api"
)

// Copy writes the elements of [begin, end) over the range starting at
// dest, in order.
func Copy[T any](begin, end, dest api.Iterator[T]) error {
	if begin == nil || end == nil || dest == nil {
		return api.ErrNullPointer
	}
	src := begin.Clone()
	defer src.Destroy()
	dst := dest.Clone()
	defer dst.Destroy()
	for src.Valid() && !src.Equal(end) && dst.Valid() {
		sp, err := src.Get()
		if err != nil {
			return err
		}
		dp, err := dst.Get()
		if err != nil {
			return err
		}
		*dp = *sp
		if err := src.Next(); err != nil {
			return err
		}
		if err := dst.Next(); err != nil {
			return err
		}
	}
	return nil
}

// CopyBackward writes the elements of [begin, end) in front of the
// destEnd boundary, walking both ranges back to front. The last source
// element lands one position before destEnd, so the two ranges may
// overlap with the destination shifted toward the back.
func CopyBackward[T any](begin, end, destEnd api.Iterator[T]) error {
	if begin == nil || end == nil || destEnd == nil {
		return api.ErrNullPointer
	}
	if begin.Equal(end) {
		return nil
	}
	src := end.Clone()
	defer src.Destroy()
	if err := src.Prev(); err != nil {
		return nil
	}
	dst := destEnd.Clone()
	defer dst.Destroy()
	if err := dst.Prev(); err != nil {
		return nil
	}
	for src.Valid() && dst.Valid() && !src.Equal(begin) {
		sp, err := src.Get()
		if err != nil {
			return err
		}
		dp, err := dst.Get()
		if err != nil {
			return err
		}
		*dp = *sp
		if err := src.Prev(); err != nil {
			return nil
		}
		if err := dst.Prev(); err != nil {
			return nil
		}
	}
	if src.Valid() && dst.Valid() && src.Equal(begin) {
		sp, err := src.Get()
		if err != nil {
			return err
		}
		dp, err := dst.Get()
		if err != nil {
			return err
		}
		*dp = *sp
	}
	return nil
}

// CopyIf writes the elements of [begin, end) satisfying the predicate
// over the range starting at dest; the destination cursor advances
// only on a match.
func CopyIf[T any](begin, end, dest api.Iterator[T], pred api.Predicate[T]) error {
	if begin == nil || end == nil || dest == nil || pred == nil {
		return api.ErrNullPointer
	}
	src := begin.Clone()
	defer src.Destroy()
	dst := dest.Clone()
	defer dst.Destroy()
	for src.Valid() && !src.Equal(end) && dst.Valid() {
		sp, err := src.Get()
		if err != nil {
			return err
		}
		if pred(*sp) {
			dp, err := dst.Get()
			if err != nil {
				return err
			}
			*dp = *sp
			if err := dst.Next(); err != nil {
				return err
			}
		}
		if err := src.Next(); err != nil {
			return err
		}
	}
	return nil
}

// SwapRanges exchanges the elements of [begin1, end1) pairwise with
// the range starting at begin2, stopping at whichever runs out first.
func SwapRanges[T any](begin1, end1, begin2 api.Iterator[T]) error {
	if begin1 == nil || end1 == nil || begin2 == nil {
		return api.ErrNullPointer
	}
	it1 := begin1.Clone()
	defer it1.Destroy()
	it2 := begin2.Clone()
	defer it2.Destroy()
	for it1.Valid() && !it1.Equal(end1) && it2.Valid() {
		if err := IterSwap(it1, it2); err != nil {
			return err
		}
		if err := it1.Next(); err != nil {
			return err
		}
		if err := it2.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Transform copies each element of [begin, end) into the range
// starting at dest and applies op to the copy in place. The source is
// never modified; passing dest equal to begin transforms in place.
func Transform[T any](begin, end, dest api.Iterator[T], op api.UnaryOp[T]) error {
	if begin == nil || end == nil || dest == nil || op == nil {
		return api.ErrNullPointer
	}
	src := begin.Clone()
	defer src.Destroy()
	dst := dest.Clone()
	defer dst.Destroy()
	for src.Valid() && !src.Equal(end) && dst.Valid() {
		sp, err := src.Get()
		if err != nil {
			return err
		}
		dp, err := dst.Get()
		if err != nil {
			return err
		}
		*dp = *sp
		op(dp)
		if err := src.Next(); err != nil {
			return err
		}
		if err := dst.Next(); err != nil {
			return err
		}
	}
	return nil
}

// TransformBinary copies each element of [begin1, end1) into the range
// starting at dest, then applies op to the copy with the parallel
// element of the range starting at begin2 as the second operand.
func TransformBinary[T any](begin1, end1, begin2, dest api.Iterator[T], op api.BinaryOp[T]) error {
	if begin1 == nil || end1 == nil || begin2 == nil || dest == nil || op == nil {
		return api.ErrNullPointer
	}
	it1 := begin1.Clone()
	defer it1.Destroy()
	it2 := begin2.Clone()
	defer it2.Destroy()
	dst := dest.Clone()
	defer dst.Destroy()
	for it1.Valid() && !it1.Equal(end1) && it2.Valid() && dst.Valid() {
		p1, err := it1.Get()
		if err != nil {
			return err
		}
		p2, err := it2.Get()
		if err != nil {
			return err
		}
		dp, err := dst.Get()
		if err != nil {
			return err
		}
		*dp = *p1
		op(dp, *p2)
		if err := it1.Next(); err != nil {
			return err
		}
		if err := it2.Next(); err != nil {
			return err
		}
		if err := dst.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Replace overwrites every element equal to oldVal under cmp with
// newVal and reports how many were replaced.
func Replace[T any](begin, end api.Iterator[T], oldVal, newVal T, cmp api.Compare[T]) (int, error) {
	if begin == nil || end == nil || cmp == nil {
		return 0, api.ErrNullPointer
	}
	return ReplaceIf(begin, end, func(v T) bool { return cmp(v, oldVal) == 0 }, newVal)
}

// ReplaceIf overwrites every element satisfying the predicate with
// newVal and reports how many were replaced.
func ReplaceIf[T any](begin, end api.Iterator[T], pred api.Predicate[T], newVal T) (int, error) {
	if begin == nil || end == nil || pred == nil {
		return 0, api.ErrNullPointer
	}
	it := begin.Clone()
	defer it.Destroy()
	n := 0
	for it.Valid() && !it.Equal(end) {
		p, err := it.Get()
		if err != nil {
			return n, err
		}
		if pred(*p) {
			*p = newVal
			n++
		}
		if err := it.Next(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// RemoveCopyIf copies every element of [begin, end) satisfying the
// predicate into the range starting at dest and reports how many were
// copied. The source range is left untouched; pair this with
// container erasure when the matched elements must also leave the
// source.
func RemoveCopyIf[T any](begin, end, dest api.Iterator[T], pred api.Predicate[T]) (int, error) {
	if begin == nil || end == nil || dest == nil || pred == nil {
		return 0, api.ErrNullPointer
	}
	src := begin.Clone()
	defer src.Destroy()
	dst := dest.Clone()
	defer dst.Destroy()
	n := 0
	for src.Valid() && !src.Equal(end) && dst.Valid() {
		sp, err := src.Get()
		if err != nil {
			return n, err
		}
		if pred(*sp) {
			dp, err := dst.Get()
			if err != nil {
				return n, err
			}
			*dp = *sp
			n++
			if err := dst.Next(); err != nil {
				return n, err
			}
		}
		if err := src.Next(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Fill overwrites every element of [begin, end) with value.
func Fill[T any](begin, end api.Iterator[T], value T) error {
	if begin == nil || end == nil {
		return api.ErrNullPointer
	}
	return Generate(begin, end, func() T { return value })
}

// FillN overwrites up to n elements starting at begin with value,
// stopping early at the sequence boundary. Negative n reports
// ErrInvalidArgument.
func FillN[T any](begin api.Iterator[T], n int, value T) error {
	if begin == nil {
		return api.ErrNullPointer
	}
	return GenerateN(begin, n, func() T { return value })
}

// Generate overwrites every element of [begin, end) with successive
// values drawn from gen.
func Generate[T any](begin, end api.Iterator[T], gen api.Generator[T]) error {
	if begin == nil || end == nil || gen == nil {
		return api.ErrNullPointer
	}
	it := begin.Clone()
	defer it.Destroy()
	for it.Valid() && !it.Equal(end) {
		p, err := it.Get()
		if err != nil {
			return err
		}
		*p = gen()
		if err := it.Next(); err != nil {
			return err
		}
	}
	return nil
}

// GenerateN overwrites up to n elements starting at begin with
// successive values drawn from gen, stopping early at the sequence
// boundary. Negative n reports ErrInvalidArgument.
func GenerateN[T any](begin api.Iterator[T], n int, gen api.Generator[T]) error {
	if begin == nil || gen == nil {
		return api.ErrNullPointer
	}
	if n < 0 {
		return api.NewError(api.CodeInvalidArgument, "negative element count").
			WithContext("count", n)
	}
	it := begin.Clone()
	defer it.Destroy()
	for i := 0; i < n && it.Valid(); i++ {
		p, err := it.Get()
		if err != nil {
			return err
		}
		*p = gen()
		if err := it.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Unique compacts [begin, end) by shifting elements left over runs of
// adjacent duplicates under cmp. It returns a cursor on the new
// logical end plus the number of elements removed; positions from the
// new end up to end keep stale values the caller should drop or
// overwrite.
func Unique[T any](begin, end api.Iterator[T], cmp api.Compare[T]) (api.Iterator[T], int, error) {
	if begin == nil || end == nil || cmp == nil {
		return nil, 0, api.ErrNullPointer
	}
	read := begin.Clone()
	if !read.Valid() || read.Equal(end) {
		read.Destroy()
		return begin.Clone(), 0, nil
	}
	p, err := read.Get()
	if err != nil {
		read.Destroy()
		return nil, 0, err
	}
	keep := *p
	write, err := cloneAt(begin, 1)
	if err != nil {
		read.Destroy()
		return nil, 0, err
	}
	if err := read.Next(); err != nil {
		read.Destroy()
		write.Destroy()
		return nil, 0, err
	}
	removed := 0
	for read.Valid() && !read.Equal(end) {
		p, err := read.Get()
		if err != nil {
			read.Destroy()
			write.Destroy()
			return nil, 0, err
		}
		v := *p
		if cmp(v, keep) == 0 {
			removed++
		} else {
			wp, err := write.Get()
			if err != nil {
				read.Destroy()
				write.Destroy()
				return nil, 0, err
			}
			*wp = v
			keep = v
			if err := write.Next(); err != nil {
				read.Destroy()
				write.Destroy()
				return nil, 0, err
			}
		}
		if err := read.Next(); err != nil {
			read.Destroy()
			write.Destroy()
			return nil, 0, err
		}
	}
	read.Destroy()
	return write, removed, nil
}

// Reverse flips [begin, end) in place with two cursors swapping
// inward from both boundaries.
func Reverse[T any](begin, end api.Iterator[T]) error {
	if begin == nil || end == nil {
		return api.ErrNullPointer
	}
	left := begin.Clone()
	defer left.Destroy()
	if !left.Valid() || left.Equal(end) {
		return nil
	}
	right := end.Clone()
	defer right.Destroy()
	if err := right.Prev(); err != nil {
		return nil
	}
	for !left.Equal(right) {
		if err := IterSwap(left, right); err != nil {
			return err
		}
		if err := left.Next(); err != nil {
			return err
		}
		if left.Equal(right) {
			break
		}
		if err := right.Prev(); err != nil {
			return err
		}
	}
	return nil
}

// Rotate moves [middle, end) in front of [begin, middle) with the
// three-reversal scheme, keeping the order inside each block.
func Rotate[T any](begin, middle, end api.Iterator[T]) error {
	if begin == nil || middle == nil || end == nil {
		return api.ErrNullPointer
	}
	if err := Reverse(begin, middle); err != nil {
		return err
	}
	if err := Reverse(middle, end); err != nil {
		return err
	}
	return Reverse(begin, end)
}

// shuffleState drives Shuffle. Seeded once from the wall clock and
// stepped per call so consecutive shuffles draw different sequences.
var shuffleState atomic.Uint64

func init() {
	shuffleState.Store(uint64(time.Now().UnixNano()))
}

// Shuffle permutes [begin, end) uniformly with a Fisher-Yates walk
// over logical indices, drawing positions from the package-wide
// linear-congruential generator.
func Shuffle[T any](begin, end api.Iterator[T]) error {
	return ShuffleSeeded(begin, end, int64(shuffleState.Add(1)))
}

// ShuffleSeeded is Shuffle with caller-controlled randomness: the same
// seed over the same range always yields the same permutation.
func ShuffleSeeded[T any](begin, end api.Iterator[T], seed int64) error {
	if begin == nil || end == nil {
		return api.ErrNullPointer
	}
	n, err := Distance(begin, end)
	if err != nil {
		return err
	}
	if n < 2 {
		return nil
	}
	state := uint64(seed)
	for i := n - 1; i > 0; i-- {
		state = (state*1103515245 + 12345) & 0x7fffffff
		j := int(state % uint64(i+1))
		if err := swapAt(begin, i, j); err != nil {
			return err
		}
	}
	return nil
}

// Partition reorders [begin, end) so that every element satisfying
// the predicate precedes every element that does not, and returns a
// cursor on the first element of the second group (the range end when
// all satisfy). Relative order inside the groups is not preserved.
func Partition[T any](begin, end api.Iterator[T], pred api.Predicate[T]) (api.Iterator[T], error) {
	if begin == nil || end == nil || pred == nil {
		return nil, api.ErrNullPointer
	}
	first := begin.Clone()
	last := end.Clone()
	defer last.Destroy()
	for {
		// leftmost element failing the predicate
		for {
			if first.Equal(last) {
				return first, nil
			}
			p, err := first.Get()
			if err != nil {
				first.Destroy()
				return nil, err
			}
			if !pred(*p) {
				break
			}
			if err := first.Next(); err != nil {
				first.Destroy()
				return nil, err
			}
		}
		// rightmost element satisfying it
		for {
			if err := last.Prev(); err != nil {
				first.Destroy()
				return nil, err
			}
			if first.Equal(last) {
				return first, nil
			}
			p, err := last.Get()
			if err != nil {
				first.Destroy()
				return nil, err
			}
			if pred(*p) {
				break
			}
		}
		if err := IterSwap(first, last); err != nil {
			first.Destroy()
			return nil, err
		}
		if err := first.Next(); err != nil {
			first.Destroy()
			return nil, err
		}
	}
}

// IsPartitioned reports whether every element satisfying the predicate
// precedes every element that does not. Empty ranges are partitioned.
func IsPartitioned[T any](begin, end api.Iterator[T], pred api.Predicate[T]) (bool, error) {
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
			break
		}
		if err := it.Next(); err != nil {
			return false, err
		}
	}
	for it.Valid() && !it.Equal(end) {
		p, err := it.Get()
		if err != nil {
			return false, err
		}
		if pred(*p) {
			return false, nil
		}
		if err := it.Next(); err != nil {
			return false, err
		}
	}
	return true, nil
}
