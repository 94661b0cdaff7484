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
	"bytes"
	_ "embed"
	"fmt"
	"sync"
	"unicode"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/ucasort/ucasort/go/log"
)

// MaxCodepoint is one past the largest code point a Table can hold.
const MaxCodepoint = unicode.MaxRune + 1

const (
	pageBits  = 8
	pageSize  = 1 << pageBits
	pageCount = MaxCodepoint >> pageBits
)

type page [pageSize][]Elem

// Table is a read-only collation element table. Once built by Parse it is
// never modified, so a single Table can be shared by any number of
// goroutines without locking.
type Table struct {
	version  string
	pages    [pageCount]*page
	contract *contractions
	implicit []implicitRange
	entries  int
	checksum uint64
}

// PageOffset returns the page index and the offset inside that page for cp.
func PageOffset(cp rune) (int, int) {
	return int(cp) >> pageBits, int(cp) & (pageSize - 1)
}

// Version returns the version declared by the table's @version header.
func (t *Table) Version() string {
	return t.version
}

// Len returns the number of explicit entries (single code points and
// contractions) in the table.
func (t *Table) Len() int {
	return t.entries
}

// Checksum returns the xxhash64 of the uncompressed table source.
func (t *Table) Checksum() uint64 {
	return t.checksum
}

// Lookup returns the explicit collation elements for cp. The second return
// value is false when the table has no entry for cp and implicit weights
// would be used instead.
func (t *Table) Lookup(cp rune) ([]Elem, bool) {
	if cp < 0 || cp >= MaxCodepoint {
		return nil, false
	}
	p, offset := PageOffset(cp)
	pg := t.pages[p]
	if pg == nil || pg[offset] == nil {
		return nil, false
	}
	return pg[offset], true
}

func (t *Table) set(cp rune, elems []Elem) error {
	if cp < 0 || cp >= MaxCodepoint {
		return errors.Errorf("code point %X out of range", cp)
	}
	p, offset := PageOffset(cp)
	pg := t.pages[p]
	if pg == nil {
		pg = new(page)
		t.pages[p] = pg
	}
	if pg[offset] != nil {
		return errors.Errorf("duplicate entry for %04X", cp)
	}
	pg[offset] = elems
	return nil
}

// elemsFor appends the elements for a single code point, explicit or
// implicit, to dst.
func (t *Table) elemsFor(dst []Elem, cp rune) []Elem {
	if elems, ok := t.Lookup(cp); ok {
		return append(dst, elems...)
	}
	return t.appendImplicit(dst, cp)
}

//go:generate go run ../tools/makeweights --allkeys=allkeys.txt --out=data/allkeys.txt.gz

// The DUCET shipped with this package: allkeys.txt 13.0.0 with comments
// stripped. Regenerate with go/collations/tools/makeweights.
//
//go:embed data/allkeys.txt.gz
var allkeysGz []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide DUCET table. It is decoded on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		gr, err := gzip.NewReader(bytes.NewReader(allkeysGz))
		if err != nil {
			panic(fmt.Sprintf("uca: corrupted embedded weight table: %v", err))
		}
		defer gr.Close()

		t, err := Parse(gr)
		if err != nil {
			panic(fmt.Sprintf("uca: failed to parse embedded weight table: %v", err))
		}
		log.InfoS("loaded collation weight table",
			"version", t.Version(), "entries", t.Len(), "checksum", fmt.Sprintf("%016x", t.Checksum()))
		defaultTable = t
	})
	return defaultTable
}
