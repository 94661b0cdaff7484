/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package collations sorts strings, and records through a string extracted
from each of them, in Unicode Collation Algorithm order.

A Collator wraps a read-only weight table. Comparisons build a multi-level
collation key per string and fall back to code point order when two keys
are identical, so the order is strict and every sort is deterministic.
Collators hold no mutable state and may be shared between goroutines.
*/
package collations

import (
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ucasort/ucasort/go/collations/uca"
)

// Collator compares and sorts strings with a fixed weight table.
type Collator struct {
	table                 *uca.Table
	alternate             uca.Alternate
	extractionConcurrency int

	keyCacheTTL time.Duration
	keys        *cache.Cache
}

// Option configures a Collator.
type Option func(*Collator)

// WithTable sets the weight table. The default is uca.Default().
func WithTable(t *uca.Table) Option {
	return func(c *Collator) {
		c.table = t
	}
}

// WithAlternate sets how variable elements (spaces, punctuation, symbols)
// are weighted. The default is uca.Shifted.
func WithAlternate(alt uca.Alternate) Option {
	return func(c *Collator) {
		c.alternate = alt
	}
}

// WithExtractionConcurrency sets how many accessor calls SortFunc may run
// at once. Values below 2 extract keys sequentially, in input order.
func WithExtractionConcurrency(n int) Option {
	return func(c *Collator) {
		c.extractionConcurrency = n
	}
}

// WithKeyCache makes Key and Compare remember the key of every string they
// see for ttl. It helps callers that sort with Compare, where each string
// is compared O(log n) times.
func WithKeyCache(ttl time.Duration) Option {
	return func(c *Collator) {
		c.keyCacheTTL = ttl
	}
}

// New returns a Collator configured by opts.
func New(opts ...Option) *Collator {
	c := &Collator{
		alternate:             uca.Shifted,
		extractionConcurrency: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.table == nil {
		c.table = uca.Default()
	}
	if c.keyCacheTTL > 0 {
		c.keys = cache.New(c.keyCacheTTL, 2*c.keyCacheTTL)
	}
	return c
}

var defaultCollator = sync.OnceValue(func() *Collator {
	return New()
})

// Default returns the process-wide Collator over the default weight table
// with shifted variable weighting.
func Default() *Collator {
	return defaultCollator()
}

// Table returns the weight table used by c.
func (c *Collator) Table() *uca.Table {
	return c.table
}

// Alternate returns the variable weighting used by c.
func (c *Collator) Alternate() uca.Alternate {
	return c.alternate
}

// Key returns the collation key of s. With a key cache the returned key
// may be shared and must not be modified.
func (c *Collator) Key(s string) uca.Key {
	if c.keys == nil {
		return c.table.Key(s, c.alternate)
	}
	if k, ok := c.keys.Get(s); ok {
		keyCacheHits.Add(1)
		return k.(uca.Key)
	}
	keyCacheMisses.Add(1)
	k := c.table.Key(s, c.alternate)
	c.keys.SetDefault(s, k)
	return k
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b. Strings with identical collation keys are ordered by code
// point, so Compare returns 0 only when a == b.
func (c *Collator) Compare(a, b string) int {
	if a == b {
		return 0
	}
	if cmp := c.Key(a).Compare(c.Key(b)); cmp != 0 {
		return cmp
	}
	return strings.Compare(a, b)
}

// Equal reports whether a and b have identical collation keys, that is
// whether they are indistinguishable before the code point tie-break.
func (c *Collator) Equal(a, b string) bool {
	return a == b || c.Key(a).Compare(c.Key(b)) == 0
}
