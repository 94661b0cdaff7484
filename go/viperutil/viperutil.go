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
Package viperutil binds configuration values to a viper registry so each
value can come from, in decreasing priority, a command-line flag, an
environment variable, a config file or its default.

Usage:

	v := viperutil.New("MYAPP")
	port := viperutil.Configure(v, "port", viperutil.Options[int]{
		FlagName: "port",
		Default:  8080,
	})

	fs.Int("port", 8080, "listen port")
	viperutil.BindFlags(fs, port)
	// MYAPP_PORT=9090 now sets the port unless --port is passed.
	port.Get()
*/
package viperutil

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrNoFlagDefined is returned from Value's Flag method when the value was
// configured to bind to a given FlagName but the provided flag set does not
// define a flag with that name.
var ErrNoFlagDefined = errors.New("flag not defined")

// New returns a viper that reads environment variables named
// <envPrefix>_<KEY>, with dashes in keys replaced by underscores.
func New(envPrefix string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the config file at path into v. The format is taken from
// the file extension. An empty path is a no-op.
func LoadConfig(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config file %s", path)
	}
	return nil
}

// Options configures a Value.
type Options[T any] struct {
	// Aliases are other keys that resolve to this value.
	Aliases []string
	// FlagName is the name of the flag BindFlags binds to this value.
	FlagName string
	// EnvVars are extra environment variables, checked in order, besides the
	// automatic <PREFIX>_<KEY>.
	EnvVars []string
	Default T
	// GetFunc overrides the getter picked by GetFuncForType.
	GetFunc func(v *viper.Viper) func(key string) T
}

// Registerable is the part of Value that BindFlags needs. Go generics
// cannot take a Value[T] for many different T in a single variadic call.
type Registerable interface {
	Key() string
	Flag(fs *pflag.FlagSet) (*pflag.Flag, error)
	registry() *viper.Viper
}

// Value is a config value bound to a viper.
type Value[T any] struct {
	v        *viper.Viper
	key      string
	flagName string
	def      T
	get      func(key string) T
}

// Configure binds key in v and returns a Value to read it.
func Configure[T any](v *viper.Viper, key string, opts Options[T]) *Value[T] {
	v.SetDefault(key, opts.Default)
	for _, alias := range opts.Aliases {
		v.RegisterAlias(alias, key)
	}
	if len(opts.EnvVars) > 0 {
		vars := append([]string{key}, opts.EnvVars...)
		_ = v.BindEnv(vars...)
	}

	getFunc := opts.GetFunc
	if getFunc == nil {
		getFunc = GetFuncForType[T]()
	}
	return &Value[T]{
		v:        v,
		key:      key,
		flagName: opts.FlagName,
		def:      opts.Default,
		get:      getFunc(v),
	}
}

func (val *Value[T]) Key() string            { return val.key }
func (val *Value[T]) Default() T             { return val.def }
func (val *Value[T]) Get() T                 { return val.get(val.key) }
func (val *Value[T]) Set(t T)                { val.v.Set(val.key, t) }
func (val *Value[T]) registry() *viper.Viper { return val.v }

// Flag returns the flag of fs bound to this value, or (nil, nil) if the
// value has no FlagName.
func (val *Value[T]) Flag(fs *pflag.FlagSet) (*pflag.Flag, error) {
	if val.flagName == "" {
		return nil, nil
	}

	flag := fs.Lookup(val.flagName)
	if flag == nil {
		return nil, errors.Wrapf(ErrNoFlagDefined, "%s (for key %s)", val.flagName, val.key)
	}

	return flag, nil
}

// BindFlags creates bindings between each value's registry and the given flag
// set. This function will panic if any of the values defines a flag that does
// not exist in the flag set.
func BindFlags(fs *pflag.FlagSet, values ...Registerable) {
	for _, val := range values {
		flag, err := val.Flag(fs)
		switch {
		case err != nil:
			panic(errors.Wrapf(err, "failed to load flag for %s", val.Key()))
		case flag == nil:
			continue
		}

		_ = val.registry().BindPFlag(val.Key(), flag)
		if flag.Name != val.Key() {
			val.registry().RegisterAlias(flag.Name, val.Key())
		}
	}
}
