// File: compare/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Constructors for the api.Compare comparators consumed by the
// algorithm engine and containers: natural order, reversal and key
// extraction. Collation-backed string comparators live in collate.go.

// Package compare builds three-way comparators: natural order for
// ordered types, reversal and key extraction for composites, and
// locale-aware string collation.
package compare

import (
	"cmp"

	"github.com/momentics/seqkit/api"
)

// Ordered returns the natural three-way comparator for any ordered
// type. Float NaN handling follows cmp.Compare: NaN orders below
// every other value.
func Ordered[T cmp.Ordered]() api.Compare[T] {
	return func(a, b T) int { return cmp.Compare(a, b) }
}

// Reverse inverts a comparator, turning ascending order descending.
func Reverse[T any](c api.Compare[T]) api.Compare[T] {
	return func(a, b T) int { return c(b, a) }
}

// ByKey compares composite values through an extracted ordered key.
func ByKey[T any, K cmp.Ordered](key func(T) K) api.Compare[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}
