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
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	commonSecondary = 0x0020
	commonTertiary  = 0x0002

	// Implicit primary bases, see https://www.unicode.org/reports/tr10/#Implicit_Weights
	baseCoreHan  = 0xFB40
	baseOtherHan = 0xFB80
	baseUnlisted = 0xFBC0
)

// implicitRange is a block declared with @implicitweights. The second
// element of a code point in the range is derived from its distance to
// origin, the first code point of all ranges sharing the same base.
type implicitRange struct {
	lo, hi rune
	base   uint16
	origin rune
}

func (t *Table) parseImplicit(s string) error {
	rng, base, ok := strings.Cut(s, ";")
	if !ok {
		return errors.Errorf("missing ';' in @implicitweights %q", s)
	}
	lo, hi, ok := strings.Cut(strings.TrimSpace(rng), "..")
	if !ok {
		return errors.Errorf("invalid @implicitweights range %q", rng)
	}

	var ir implicitRange
	for _, f := range []struct {
		dst  *rune
		text string
	}{{&ir.lo, lo}, {&ir.hi, hi}} {
		v, err := strconv.ParseUint(strings.TrimSpace(f.text), 16, 32)
		if err != nil {
			return errors.Wrapf(err, "invalid @implicitweights bound %q", f.text)
		}
		*f.dst = rune(v)
	}
	b, err := strconv.ParseUint(strings.TrimSpace(base), 16, 16)
	if err != nil {
		return errors.Wrapf(err, "invalid @implicitweights base %q", base)
	}
	ir.base = uint16(b)
	if ir.hi < ir.lo {
		return errors.Errorf("empty @implicitweights range %X..%X", ir.lo, ir.hi)
	}
	t.implicit = append(t.implicit, ir)
	return nil
}

func (t *Table) resolveImplicitOrigins() {
	for i := range t.implicit {
		origin := t.implicit[i].lo
		for _, other := range t.implicit {
			if other.base == t.implicit[i].base && other.lo < origin {
				origin = other.lo
			}
		}
		t.implicit[i].origin = origin
	}
}

func isCoreHan(cp rune) bool {
	return (cp >= 0x4E00 && cp <= 0x9FFF) || (cp >= 0xF900 && cp <= 0xFAFF)
}

// appendImplicit appends the two derived collation elements for a code point
// that has no explicit entry. Every such code point sorts after all explicit
// entries, and code points sharing a base keep their code point order.
func (t *Table) appendImplicit(dst []Elem, cp rune) []Elem {
	for _, ir := range t.implicit {
		if cp >= ir.lo && cp <= ir.hi {
			return append(dst,
				Elem{Primary: ir.base, Secondary: commonSecondary, Tertiary: commonTertiary},
				Elem{Primary: uint16(cp-ir.origin) | 0x8000},
			)
		}
	}

	var base uint16
	switch {
	case unicode.Is(unicode.Unified_Ideograph, cp) && isCoreHan(cp):
		base = baseCoreHan
	case unicode.Is(unicode.Unified_Ideograph, cp):
		base = baseOtherHan
	default:
		base = baseUnlisted
	}
	return append(dst,
		Elem{Primary: base + uint16(cp>>15), Secondary: commonSecondary, Tertiary: commonTertiary},
		Elem{Primary: uint16(cp&0x7FFF) | 0x8000},
	)
}
