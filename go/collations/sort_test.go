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
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortStrings(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "case is a tertiary difference",
			in:   []string{"banana", "Apple", "cherry"},
			want: []string{"Apple", "banana", "cherry"},
		},
		{
			name: "accents are a secondary difference",
			in:   []string{"caf\u00E9", "cafe", "cafz"},
			want: []string{"cafe", "caf\u00E9", "cafz"},
		},
		{
			name: "lower case before upper case before accents",
			in:   []string{"Apfel", "\u00C4pfel", "apfel", "Banane"},
			want: []string{"apfel", "Apfel", "\u00C4pfel", "Banane"},
		},
		{
			name: "canonically equivalent strings are ordered by code point",
			in:   []string{"\u00E9", "e\u0301", "e"},
			want: []string{"e", "e\u0301", "\u00E9"},
		},
		{
			name: "digits before letters",
			in:   []string{"b", "10", "2", "a"},
			want: []string{"10", "2", "a", "b"},
		},
		{
			name: "unlisted code points after listed ones",
			in:   []string{"\U000E0080", "z", "\u4E00", "a"},
			want: []string{"a", "z", "\u4E00", "\U000E0080"},
		},
		{
			name: "duplicates are kept",
			in:   []string{"b", "a", "b", "a"},
			want: []string{"a", "a", "b", "b"},
		},
		{
			name: "single element",
			in:   []string{"x"},
			want: []string{"x"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SortStrings(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("SortStrings(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestSortEmpty(t *testing.T) {
	assert.Empty(t, SortStrings(nil))
	assert.Empty(t, SortStrings([]string{}))
}

func TestSortDoesNotMutate(t *testing.T) {
	in := []string{"cherry", "banana", "Apple"}
	orig := slices.Clone(in)
	out := SortStrings(in)
	assert.Equal(t, orig, in)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, out)

	out[0] = "changed"
	assert.Equal(t, orig, in)
}

func TestSortCounters(t *testing.T) {
	simple := sorts.Counts()[simpleSort]
	elements := sortedElements.Get()

	SortStrings([]string{"b", "a", "c"})
	assert.Equal(t, simple+1, sorts.Counts()[simpleSort])
	assert.Equal(t, elements+3, sortedElements.Get())
}

var pieces = []string{
	"a", "A", "b", "B", "z", "e", "\u00E9", "e\u0301", "\u00C4", "A\u0308",
	"ss", "\u00DF", "-", " ", ".", "1", "9", "\u0000", "\u0301", "\u0323",
	"\u0439", "\u0438\u0306", "l\u00B7", "\u4E00", "\U00020000", "\uFFFD",
	"\u01C5", "\u00E6", "ae", "\U000E0080",
}

func randomStrings(r *rand.Rand, n int) []string {
	out := make([]string, n)
	for i := range out {
		var b strings.Builder
		for range r.IntN(5) {
			b.WriteString(pieces[r.IntN(len(pieces))])
		}
		out[i] = b.String()
	}
	return out
}

func TestSortProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	c := Default()

	for range 50 {
		in := randomStrings(r, r.IntN(40))
		out := c.Sort(in)

		// permutation of the input
		require.Len(t, out, len(in))
		assert.Equal(t, slices.Sorted(slices.Values(in)), slices.Sorted(slices.Values(out)))

		// non-decreasing
		for i := 1; i < len(out); i++ {
			assert.LessOrEqual(t, c.Compare(out[i-1], out[i]), 0, "%q > %q", out[i-1], out[i])
		}

		// idempotent
		assert.Equal(t, out, c.Sort(out))

		// same order as a plain comparison sort
		want := slices.Clone(in)
		slices.SortFunc(want, c.Compare)
		assert.Equal(t, want, out)
	}
}

func TestTotalOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	c := Default()
	strs := randomStrings(r, 60)

	for _, a := range strs {
		for _, b := range strs {
			ab, ba := c.Compare(a, b), c.Compare(b, a)
			require.Equal(t, -ab, ba, "Compare(%q, %q)", a, b)
			require.Equal(t, a == b, ab == 0, "Compare(%q, %q)", a, b)
			for _, x := range strs {
				if ab < 0 && c.Compare(b, x) < 0 {
					require.Negative(t, c.Compare(a, x), "%q < %q < %q", a, b, x)
				}
			}
		}
	}
}

func FuzzCompare(f *testing.F) {
	f.Add("a", "b")
	f.Add("cafe", "caf\u00E9")
	f.Add("\u00E9", "e\u0301")
	f.Add("a-b", "ab")
	f.Add("", "\u0000")
	c := Default()
	f.Fuzz(func(t *testing.T, a, b string) {
		ab := c.Compare(a, b)
		if ba := c.Compare(b, a); ab != -ba {
			t.Fatalf("Compare(%q, %q) = %d but Compare(%q, %q) = %d", a, b, ab, b, a, ba)
		}
		if (ab == 0) != (a == b) {
			t.Fatalf("Compare(%q, %q) = %d", a, b, ab)
		}
		if c.Equal(a, b) && c.Key(a).Compare(c.Key(b)) != 0 {
			t.Fatalf("Equal(%q, %q) disagrees with Key.Compare", a, b)
		}
	})
}
