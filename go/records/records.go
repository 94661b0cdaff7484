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
Package records holds the JSON records sorted by "ucasort complex".

A record exposes its accessors as methods, so a sort key can be chosen by
name at run time the same way for every record:

	get <path>                the string at a gjson path
	join <sep> <path>...      several strings joined by sep
	raw                       the record's JSON text
*/
package records

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/ucasort/ucasort/go/collations"
)

// ErrNoSuchField is returned when a path does not exist in a record.
var ErrNoSuchField = errors.New("no such field")

// Record is a single JSON document.
type Record struct {
	raw string
}

// Parse validates s as JSON and returns it as a Record.
func Parse(s string) (Record, error) {
	if !gjson.Valid(s) {
		return Record{}, errors.New("invalid JSON")
	}
	return Record{raw: s}, nil
}

// ReadAll reads one record per line from r. Blank lines are skipped.
func ReadAll(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)

	var recs []Record
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := Parse(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading records")
	}
	return recs, nil
}

// Raw returns the JSON text of the record.
func (r Record) Raw() string {
	return r.raw
}

// Get returns the string at path. It fails with ErrNoSuchField if the path
// does not exist and with collations.ErrNotString if the value there is not
// a JSON string.
func (r Record) Get(path string) (string, error) {
	res := gjson.Get(r.raw, path)
	if !res.Exists() {
		return "", errors.Wrapf(ErrNoSuchField, "%s", path)
	}
	if res.Type != gjson.String {
		return "", errors.Wrapf(collations.ErrNotString, "%s is %s", path, res.Type)
	}
	return res.Str, nil
}

// Join returns the strings at paths joined by sep.
func (r Record) Join(sep string, paths ...string) (string, error) {
	if len(paths) == 0 {
		return "", errors.New("join needs at least one path")
	}
	parts := make([]string, len(paths))
	for i, path := range paths {
		s, err := r.Get(path)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}

// Accessors lists the accessor names understood by Accessor.
func Accessors() []string {
	return []string{"get", "join", "raw"}
}

// Accessor returns the accessor called name. Names are resolved on each
// record when the accessor runs, so an unknown name fails the sort with
// collations.ErrNoSuchAccessor.
func Accessor(name string) collations.Accessor[Record] {
	return collations.MethodAccessor[Record](methodName(name))
}

func methodName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
