// Package algo
// Author: momentics <momentics@gmail.com>
//
// Container-agnostic algorithm engine for seqkit.
// Every operation works on half-open ranges [begin, end) expressed
// through the api.Iterator protocol and never assumes random access:
// range lengths are measured by clone-and-walk, and index-addressed
// algorithms (heap sort, shuffle, permutations) re-walk from begin for
// every logical position. The same code therefore runs unchanged over
// vectors, lists and any future container that speaks the protocol,
// trading speed on linked storage for structural independence.
// Ranges are borrowed: algorithms move only cloned cursors and never
// destroy or advance the iterators the caller passed in.
package algo
