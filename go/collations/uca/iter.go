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

package uca

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// AppendElems appends the collation elements of s to dst. The input is
// brought to NFD first; contractions are matched longest-first, and then
// extended over unblocked non-starters that follow the match
// (https://www.unicode.org/reports/tr10/#S2.1).
func (t *Table) AppendElems(dst []Elem, s string) []Elem {
	runes := []rune(norm.NFD.String(s))

	for i := 0; i < len(runes); {
		cp := runes[i]
		node := t.contract.start(cp)
		if node == nil {
			dst = t.elemsFor(dst, cp)
			i++
			continue
		}

		match, end := node, i+1
		for n, j := node, i+1; j < len(runes); j++ {
			if n = n.child(runes[j]); n == nil {
				break
			}
			if n.elems != nil {
				match, end = n, j+1
			}
		}

		var blocking uint8
		for j := end; j < len(runes); {
			ccc := combiningClass(runes[j])
			if ccc == 0 {
				break
			}
			if ccc > blocking {
				if next := match.child(runes[j]); next != nil && next.elems != nil {
					match = next
					runes = append(runes[:j], runes[j+1:]...)
					continue
				}
			}
			blocking = max(blocking, ccc)
			j++
		}

		if match.elems != nil {
			dst = append(dst, match.elems...)
		} else {
			dst = t.elemsFor(dst, cp)
		}
		i = end
	}
	return dst
}

func combiningClass(r rune) uint8 {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFD.Properties(buf[:n]).CCC()
}
