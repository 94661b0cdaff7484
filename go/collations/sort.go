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

package collations

import (
	"slices"
	"strings"

	"github.com/ucasort/ucasort/go/collations/uca"
	"github.com/ucasort/ucasort/go/slices2"
)

// sortKey is a string decorated with its collation key.
type sortKey struct {
	s   string
	key uca.Key
}

func (k sortKey) compare(other sortKey) int {
	if cmp := k.key.Compare(other.key); cmp != 0 {
		return cmp
	}
	return strings.Compare(k.s, other.s)
}

func (c *Collator) sortKey(s string) sortKey {
	return sortKey{s: s, key: c.Key(s)}
}

// sortBy returns items reordered by the collation order of strs, where
// strs[i] is the string for items[i]. Each key is built once.
func sortBy[T any](c *Collator, strs []string, items []T) []T {
	pairs := slices2.Zip(slices2.Map(strs, c.sortKey), items)
	slices.SortFunc(pairs, func(a, b slices2.Pair[sortKey, T]) int {
		return a.Fst.compare(b.Fst)
	})
	_, sorted := slices2.Unzip(pairs)
	return sorted
}

// Sort returns a copy of in sorted in collation order. in is not modified.
func (c *Collator) Sort(in []string) []string {
	sorts.Add(simpleSort, 1)
	sortedElements.Add(int64(len(in)))
	if len(in) < 2 {
		return slices.Clone(in)
	}
	return sortBy(c, in, in)
}

// SortStrings sorts in with the default Collator.
func SortStrings(in []string) []string {
	return Default().Sort(in)
}
