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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallTable = `# a tiny table for tests
@version 1.0.0
@implicitweights 17000..18AFF; FB00

0020 ; [*0050.0020.0002] # SPACE
0061 ; [.0100.0020.0002] # a
0041 ; [.0100.0020.0008] # A
0062 ; [.0101.0020.0002] # b
0301 ; [.0000.0024.0002] # COMBINING ACUTE ACCENT
0061 0062 ; [.0200.0020.0002] # ab
`

func parseSmall(t *testing.T) *Table {
	t.Helper()
	table, err := Parse(strings.NewReader(smallTable))
	require.NoError(t, err)
	return table
}

func TestDefaultTable(t *testing.T) {
	table := Default()
	require.NotNil(t, table)
	assert.Equal(t, "13.0.0", table.Version())
	assert.Greater(t, table.Len(), 30000)
	assert.NotZero(t, table.Checksum())
	assert.Same(t, table, Default())
}

func TestDefaultLookup(t *testing.T) {
	cases := []struct {
		cp   rune
		want []Elem
	}{
		{'a', []Elem{{Primary: 0x1FA2, Secondary: 0x20, Tertiary: 0x02}}},
		{'A', []Elem{{Primary: 0x1FA2, Secondary: 0x20, Tertiary: 0x08}}},
		{' ', []Elem{{Primary: 0x0209, Secondary: 0x20, Tertiary: 0x02, Variable: true}}},
		{'\u0301', []Elem{{Secondary: 0x24, Tertiary: 0x02}}},
		{'ß', []Elem{
			{Primary: 0x21D2, Secondary: 0x20, Tertiary: 0x04},
			{Secondary: 0x118, Tertiary: 0x04},
			{Primary: 0x21D2, Secondary: 0x20, Tertiary: 0x04},
		}},
	}
	table := Default()
	for _, tc := range cases {
		got, ok := table.Lookup(tc.cp)
		require.True(t, ok, "missing entry for U+%04X", tc.cp)
		assert.Equal(t, tc.want, got, "U+%04X", tc.cp)
	}

	_, ok := table.Lookup(0x4E00)
	assert.False(t, ok, "CJK ideographs use implicit weights")
	_, ok = table.Lookup(-1)
	assert.False(t, ok)
	_, ok = table.Lookup(MaxCodepoint)
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	table := parseSmall(t)
	assert.Equal(t, "1.0.0", table.Version())
	assert.Equal(t, 6, table.Len())

	elems, ok := table.Lookup('A')
	require.True(t, ok)
	assert.Equal(t, []Elem{{Primary: 0x100, Secondary: 0x20, Tertiary: 0x08}}, elems)

	again, err := Parse(strings.NewReader(smallTable))
	require.NoError(t, err)
	assert.Equal(t, table.Checksum(), again.Checksum())

	other, err := Parse(strings.NewReader(smallTable + "0063 ; [.0102.0020.0002]\n"))
	require.NoError(t, err)
	assert.NotEqual(t, table.Checksum(), other.Checksum())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   string
	}{
		{"missing separator", "0061 [.0100.0020.0002]", "line 1: missing ';'"},
		{"bad code point", "00ZZ ; [.0100.0020.0002]", "invalid code point"},
		{"no elements", "0061 ;", "no collation elements"},
		{"bad marker", "0061 ; [+0100.0020.0002]", "invalid collation element marker"},
		{"short element", "0061 ; [.0100.0020]", "must have 3 weights"},
		{"bad weight", "0061 ; [.01G0.0020.0002]", "invalid weight"},
		{"unterminated", "0061 ; [.0100.0020.0002", "unterminated"},
		{"duplicate", "0061 ; [.0100.0020.0002]\n0061 ; [.0101.0020.0002]", "line 2: duplicate entry"},
		{"duplicate contraction", "0061 0062 ; [.0100.0020.0002]\n0061 0062 ; [.0101.0020.0002]", "duplicate contraction"},
		{"bad implicit", "@implicitweights 17000-18AFF; FB00", "invalid @implicitweights range"},
		{"empty implicit", "@implicitweights 18AFF..17000; FB00", "empty @implicitweights range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestImplicitWeights(t *testing.T) {
	table := Default()
	cases := []struct {
		cp   rune
		want []Elem
	}{
		{0x4E00, []Elem{{Primary: 0xFB40, Secondary: 0x20, Tertiary: 0x02}, {Primary: 0xCE00}}},
		{0x20000, []Elem{{Primary: 0xFB84, Secondary: 0x20, Tertiary: 0x02}, {Primary: 0x8000}}},
		{0x17000, []Elem{{Primary: 0xFB00, Secondary: 0x20, Tertiary: 0x02}, {Primary: 0x8000}}},
		{0x18D00, []Elem{{Primary: 0xFB00, Secondary: 0x20, Tertiary: 0x02}, {Primary: 0x9D00}}},
		{0x1B170, []Elem{{Primary: 0xFB01, Secondary: 0x20, Tertiary: 0x02}, {Primary: 0x8000}}},
		{0x10FFFD, []Elem{{Primary: 0xFBE1, Secondary: 0x20, Tertiary: 0x02}, {Primary: 0xFFFD}}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, table.AppendElems(nil, string(tc.cp)), "U+%04X", tc.cp)
	}
}

func TestImplicitSortsAfterExplicit(t *testing.T) {
	table := Default()
	z := table.Key("z", NonIgnorable)
	previous := z
	for _, cp := range []rune{0x4E00, 0x4E01, 0x9FA5, 0x20000, 0xE0080, 0xE0081, 0x10FFFD} {
		k := table.Key(string(cp), NonIgnorable)
		assert.Equal(t, 1, k.Compare(z), "U+%04X must sort after z", cp)
		assert.Equal(t, 1, k.Compare(previous), "U+%04X must sort after its predecessor", cp)
		previous = k
	}
}
