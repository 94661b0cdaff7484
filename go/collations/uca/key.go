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
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Alternate selects how variable collation elements (spaces, punctuation
// and most symbols) are weighted.
type Alternate int

const (
	// Shifted moves variable elements to the fourth level, so they only
	// break ties left by the first three.
	Shifted Alternate = iota
	// NonIgnorable weights variable elements like any other element.
	NonIgnorable
)

func (a Alternate) String() string {
	switch a {
	case Shifted:
		return "shifted"
	case NonIgnorable:
		return "non-ignorable"
	default:
		return fmt.Sprintf("Alternate(%d)", int(a))
	}
}

// ParseAlternate is the inverse of Alternate.String.
func ParseAlternate(s string) (Alternate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shifted":
		return Shifted, nil
	case "non-ignorable", "nonignorable":
		return NonIgnorable, nil
	default:
		return 0, errors.Errorf("invalid alternate %q: expected shifted or non-ignorable", s)
	}
}

// Level identifies one level of a Key.
type Level int

const (
	Primary Level = iota
	Secondary
	Tertiary
	Quaternary

	NumLevels
)

// Key is the collation key of a string: one weight sequence per level,
// with zero weights already removed. The quaternary level is only
// populated under Shifted.
type Key struct {
	Levels [NumLevels][]uint16
}

// Level returns the weights of the key at level l.
func (k Key) Level(l Level) []uint16 {
	return k.Levels[l]
}

// Compare compares two keys level by level. Inside a level weights are
// compared element-wise and a strict prefix sorts first.
func (k Key) Compare(other Key) int {
	for l := range k.Levels {
		if c := slices.Compare(k.Levels[l], other.Levels[l]); c != 0 {
			return c
		}
	}
	return 0
}

// AppendBytes appends the binary sort key of k to dst: every weight as
// big-endian uint16, levels separated by 0x0000. Comparing two results with
// bytes.Compare gives the same answer as Key.Compare.
func (k Key) AppendBytes(dst []byte) []byte {
	for l, weights := range k.Levels {
		if l > 0 {
			dst = append(dst, 0, 0)
		}
		for _, w := range weights {
			dst = append(dst, byte(w>>8), byte(w))
		}
	}
	return dst
}

func (k Key) String() string {
	var b strings.Builder
	for l, weights := range k.Levels {
		if l > 0 {
			b.WriteString(" |")
		}
		for _, w := range weights {
			fmt.Fprintf(&b, " %04X", w)
		}
	}
	return strings.TrimSpace(b.String())
}

// Key builds the collation key for s.
func (t *Table) Key(s string, alt Alternate) Key {
	var scratch [64]Elem
	return buildKey(t.AppendElems(scratch[:0], s), alt)
}

func buildKey(elems []Elem, alt Alternate) Key {
	var k Key
	for l := Primary; l < Quaternary; l++ {
		k.Levels[l] = make([]uint16, 0, len(elems))
	}

	afterVariable := false
	for _, e := range elems {
		if alt == Shifted {
			switch {
			case e.Variable:
				k.Levels[Quaternary] = append(k.Levels[Quaternary], e.Primary)
				afterVariable = true
				continue
			case e.Ignorable():
				continue
			case e.Primary == 0 && afterVariable:
				continue
			}
			k.Levels[Quaternary] = append(k.Levels[Quaternary], 0xFFFF)
		}
		if e.Primary != 0 {
			afterVariable = false
			k.Levels[Primary] = append(k.Levels[Primary], e.Primary)
		}
		if e.Secondary != 0 {
			k.Levels[Secondary] = append(k.Levels[Secondary], e.Secondary)
		}
		if e.Tertiary != 0 {
			k.Levels[Tertiary] = append(k.Levels[Tertiary], e.Tertiary)
		}
	}
	return k
}
