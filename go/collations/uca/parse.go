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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Parse builds a Table from r, which must be in the allkeys.txt format used
// by the Unicode Consortium to publish the DUCET:
//
//	@version 13.0.0
//	@implicitweights 17000..18AFF; FB00
//	0061  ; [.1FA2.0020.0002] # LATIN SMALL LETTER A
//	006C 00B7 ; [.20D6.0020.0002][.0000.0118.0002]
//
// Comments and blank lines are skipped; unknown @ directives are ignored.
func Parse(r io.Reader) (*Table, error) {
	digest := xxhash.New()
	scanner := bufio.NewScanner(io.TeeReader(r, digest))
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	t := &Table{}
	var all []contraction
	lineno := 0

	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var err error
		switch {
		case strings.HasPrefix(line, "@version"):
			t.version = strings.TrimSpace(strings.TrimPrefix(line, "@version"))
		case strings.HasPrefix(line, "@implicitweights"):
			err = t.parseImplicit(strings.TrimPrefix(line, "@implicitweights"))
		case strings.HasPrefix(line, "@"):
		default:
			var path []rune
			var elems []Elem
			if path, elems, err = parseEntry(line); err != nil {
				break
			}
			if len(path) == 1 {
				err = t.set(path[0], elems)
			} else {
				all = append(all, contraction{path: path, elems: elems})
			}
			t.entries++
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read weight table")
	}

	ctr, err := newContractions(all)
	if err != nil {
		return nil, err
	}
	t.contract = ctr
	t.resolveImplicitOrigins()
	t.checksum = digest.Sum64()
	return t, nil
}

func parseEntry(line string) ([]rune, []Elem, error) {
	codepoints, weights, ok := strings.Cut(line, ";")
	if !ok {
		return nil, nil, errors.Errorf("missing ';' in %q", line)
	}

	var path []rune
	for _, field := range strings.Fields(codepoints) {
		cp, err := strconv.ParseUint(field, 16, 32)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "invalid code point %q", field)
		}
		path = append(path, rune(cp))
	}
	if len(path) == 0 {
		return nil, nil, errors.Errorf("no code points in %q", line)
	}

	var elems []Elem
	weights = strings.TrimSpace(weights)
	for weights != "" {
		if weights[0] != '[' {
			return nil, nil, errors.Errorf("expected '[' in %q", weights)
		}
		end := strings.IndexByte(weights, ']')
		if end < 0 {
			return nil, nil, errors.Errorf("unterminated collation element in %q", weights)
		}
		e, err := parseElem(weights[1:end])
		if err != nil {
			return nil, nil, err
		}
		elems = append(elems, e)
		weights = strings.TrimSpace(weights[end+1:])
	}
	if len(elems) == 0 {
		return nil, nil, errors.Errorf("no collation elements in %q", line)
	}
	return path, elems, nil
}

// parseElem parses the body of a collation element, such as ".1FA2.0020.0002"
// or "*0209.0020.0002". Older tables carry a fourth weight, which is ignored.
func parseElem(s string) (Elem, error) {
	var e Elem
	if s == "" {
		return e, errors.New("empty collation element")
	}
	switch s[0] {
	case '.':
	case '*':
		e.Variable = true
	default:
		return e, errors.Errorf("invalid collation element marker %q", s[0])
	}

	fields := strings.Split(s[1:], ".")
	if len(fields) < 3 || len(fields) > 4 {
		return e, errors.Errorf("collation element %q must have 3 weights", s)
	}
	var w [3]uint16
	for i := range w {
		v, err := strconv.ParseUint(fields[i], 16, 16)
		if err != nil {
			return e, errors.Wrapf(err, "invalid weight in %q", s)
		}
		w[i] = uint16(v)
	}
	e.Primary, e.Secondary, e.Tertiary = w[0], w[1], w[2]
	return e, nil
}
