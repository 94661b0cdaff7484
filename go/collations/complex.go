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
	"context"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoSuchAccessor is returned when the accessor is missing or cannot
	// be resolved on a record.
	ErrNoSuchAccessor = errors.New("no such accessor")
	// ErrNotString is returned when an accessor produced something other
	// than a string.
	ErrNotString = errors.New("accessor result is not a string")
)

// Accessor extracts the string a record is sorted by. args are the extra
// arguments given to SortFunc, passed unchanged on every call.
type Accessor[T any] func(record T, args ...any) (string, error)

// ExtractionError reports the record whose sort key could not be extracted.
type ExtractionError struct {
	// Index is the position of the record in the input.
	Index int
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting sort key of record %d: %v", e.Index, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// SortFunc returns a copy of records ordered by the collation order of the
// string accessor returns for each of them. The accessor is called exactly
// once per record, before any comparison. If any call fails, panics or the
// accessor is nil, SortFunc returns a nil slice and an *ExtractionError.
// Empty input never calls the accessor.
func SortFunc[T any](c *Collator, records []T, accessor Accessor[T], args ...any) ([]T, error) {
	sorts.Add(complexSort, 1)
	sortedElements.Add(int64(len(records)))
	if len(records) == 0 {
		return []T{}, nil
	}

	strs, err := extract(c, records, accessor, args)
	if err != nil {
		extractionErrors.Add(1)
		return nil, err
	}
	return sortBy(c, strs, records), nil
}

func extract[T any](c *Collator, records []T, accessor Accessor[T], args []any) ([]string, error) {
	if accessor == nil {
		return nil, &ExtractionError{Index: 0, Err: ErrNoSuchAccessor}
	}

	strs := make([]string, len(records))
	if c.extractionConcurrency < 2 || len(records) == 1 {
		for i, rec := range records {
			s, err := call(accessor, rec, args)
			if err != nil {
				return nil, &ExtractionError{Index: i, Err: err}
			}
			strs[i] = s
		}
		return strs, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(c.extractionConcurrency)
	for i, rec := range records {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			s, err := call(accessor, rec, args)
			if err != nil {
				return &ExtractionError{Index: i, Err: err}
			}
			strs[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return strs, nil
}

func call[T any](accessor Accessor[T], rec T, args []any) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("accessor panicked: %v", r)
		}
	}()
	return accessor(rec, args...)
}
