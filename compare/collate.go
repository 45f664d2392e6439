// File: compare/collate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Locale-aware string comparison over x/text collation tables.

package compare

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/momentics/seqkit/api"
)

// Collator returns a string comparator ordering by the collation
// rules of the given locale, honoring options such as
// collate.IgnoreCase and collate.Numeric. The underlying collator
// reuses internal buffers, so the returned comparator must not be
// shared between goroutines; build one per worker instead.
func Collator(tag language.Tag, opts ...collate.Option) api.Compare[string] {
	c := collate.New(tag, opts...)
	return func(a, b string) int { return c.CompareString(a, b) }
}
