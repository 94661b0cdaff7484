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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodAccessor(t *testing.T) {
	c := Default()

	out, err := SortFunc(c, fruits, MethodAccessor[fruit]("Field"), "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, names(out))

	out, err = SortFunc(c, fruits, MethodAccessor[fruit]("KeyFor"), "!")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, names(out))

	out, err = SortFunc(c, fruits, MethodAccessor[fruit]("Any"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, names(out))
}

func TestMethodAccessorCall(t *testing.T) {
	f := fruit{Name: "kiwi", Origin: "Chile"}
	cases := []struct {
		name   string
		record any
		method string
		args   []any
		want   string
	}{
		{name: "value receiver", record: f, method: "KeyFor", args: []any{"-1"}, want: "kiwi-1"},
		{name: "error result", record: f, method: "Field", args: []any{"origin"}, want: "Chile"},
		{name: "pointer receiver", record: &f, method: "Pointer", want: "Chile"},
		{name: "value method through pointer", record: &f, method: "KeyFor", args: []any{""}, want: "kiwi"},
		{name: "variadic", record: f, method: "Label", args: []any{"/", "a", "b"}, want: "kiwi/a/b"},
		{name: "variadic without extras", record: f, method: "Label", args: []any{"/"}, want: "kiwi/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MethodAccessor[any](tc.method)(tc.record, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMethodAccessorErrors(t *testing.T) {
	f := fruit{Name: "kiwi"}
	cases := []struct {
		name   string
		record any
		method string
		args   []any
		is     error
		msg    string
	}{
		{name: "missing method", record: f, method: "Colour", is: ErrNoSuchAccessor, msg: "collations.fruit has no method Colour: no such accessor"},
		{name: "unexported method", record: f, method: "names", is: ErrNoSuchAccessor},
		{name: "pointer method on value", record: f, method: "Pointer", is: ErrNoSuchAccessor},
		{name: "nil record", record: nil, method: "Field", is: ErrNoSuchAccessor},
		{name: "not a string", record: f, method: "Weight", is: ErrNotString, msg: "method Weight returned int: accessor result is not a string"},
		{name: "too few arguments", record: f, method: "Field", msg: "method Field takes 1 arguments, got 0"},
		{name: "too many arguments", record: f, method: "Weight", args: []any{1}, msg: "method Weight takes 0 arguments, got 1"},
		{name: "wrong argument type", record: f, method: "Field", args: []any{1}, msg: "method Field argument 0: cannot use int as string"},
		{name: "nil argument", record: f, method: "Field", args: []any{nil}, msg: "method Field argument 0: cannot use nil as string"},
		{name: "method error", record: f, method: "Field", args: []any{"colour"}, msg: `unknown field "colour"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MethodAccessor[any](tc.method)(tc.record, tc.args...)
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
			if tc.msg != "" {
				assert.EqualError(t, err, tc.msg)
			}
		})
	}
}

func TestMethodAccessorExtractionError(t *testing.T) {
	_, err := SortFunc(Default(), fruits, MethodAccessor[fruit]("Weight"))
	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, 0, extErr.Index)
	assert.ErrorIs(t, err, ErrNotString)
}
