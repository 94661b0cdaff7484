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
	"reflect"

	"github.com/pkg/errors"
)

var errorType = reflect.TypeFor[error]()

// MethodAccessor returns an Accessor that calls the exported method name on
// each record, passing the extra arguments positionally. The method must
// return a string, or a string and an error. Methods returning any are
// accepted when the dynamic value is a string.
func MethodAccessor[T any](name string) Accessor[T] {
	return func(record T, args ...any) (string, error) {
		v := reflect.ValueOf(record)
		if !v.IsValid() {
			return "", errors.Wrapf(ErrNoSuchAccessor, "method %s on nil record", name)
		}
		m := v.MethodByName(name)
		if !m.IsValid() {
			return "", errors.Wrapf(ErrNoSuchAccessor, "%s has no method %s", v.Type(), name)
		}

		in, err := methodArgs(m.Type(), name, args)
		if err != nil {
			return "", err
		}
		out := m.Call(in)

		mt := m.Type()
		switch {
		case mt.NumOut() == 1:
		case mt.NumOut() == 2 && mt.Out(1) == errorType:
			if err, _ := out[1].Interface().(error); err != nil {
				return "", err
			}
		default:
			return "", errors.Wrapf(ErrNotString, "method %s returns %d values", name, mt.NumOut())
		}

		res := out[0]
		if res.Kind() == reflect.Interface {
			res = res.Elem()
		}
		if !res.IsValid() || res.Kind() != reflect.String {
			return "", errors.Wrapf(ErrNotString, "method %s returned %s", name, out[0].Type())
		}
		return res.String(), nil
	}
}

func methodArgs(mt reflect.Type, name string, args []any) ([]reflect.Value, error) {
	n := mt.NumIn()
	if mt.IsVariadic() {
		if len(args) < n-1 {
			return nil, errors.Errorf("method %s takes at least %d arguments, got %d", name, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, errors.Errorf("method %s takes %d arguments, got %d", name, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := paramType(mt, i)
		if arg == nil {
			switch want.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(want)
				continue
			}
			return nil, errors.Errorf("method %s argument %d: cannot use nil as %s", name, i, want)
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(want) {
			return nil, errors.Errorf("method %s argument %d: cannot use %s as %s", name, i, av.Type(), want)
		}
		in[i] = av
	}
	return in, nil
}

func paramType(mt reflect.Type, i int) reflect.Type {
	if mt.IsVariadic() && i >= mt.NumIn()-1 {
		return mt.In(mt.NumIn() - 1).Elem()
	}
	return mt.In(i)
}
