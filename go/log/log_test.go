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

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
	}
	for in, want := range cases {
		got, err := slogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := slogLevel("trace")
	assert.ErrorContains(t, err, `invalid log-level "trace"`)
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	for _, format := range []string{"json", "logfmt", "text"} {
		h, err := slogHandler(format, &buf, opts)
		require.NoError(t, err, format)
		require.NotNil(t, h, format)
	}

	_, err := slogHandler("xml", &buf, opts)
	assert.ErrorContains(t, err, `invalid log-fmt "xml"`)
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer restore()

	InfoS("sorted", "count", 3)
	DebugS("not emitted")
	WarnS("slow accessor", "index", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "sorted", record["msg"])
	assert.EqualValues(t, 3, record["count"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &record))
	assert.Equal(t, "WARN", record["level"])

	assert.True(t, Enabled(slog.LevelInfo))
	assert.False(t, Enabled(slog.LevelDebug))
}

func TestInitWithoutFormatFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level", "debug"}))
	require.NoError(t, Init(fs))
	assert.False(t, structuredLoggingEnabled.Load())
	require.NoError(t, Init(nil))
}

func TestInitWithFormatFlag(t *testing.T) {
	var buf bytes.Buffer
	previousOutput := output
	output = &buf
	restore := SetLogger(slog.Default())
	defer func() {
		restore()
		output = previousOutput
	}()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt", "logfmt", "--log-level", "warn"}))
	require.NoError(t, Init(fs))

	InfoS("hidden")
	ErrorS("visible", "key", "value")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "key=value")
}

func TestLogRotateMaxSize(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	flag := fs.Lookup("log-rotate-max-size")
	require.NotNil(t, flag)
	assert.Equal(t, "uint64", flag.Value.Type())
	assert.Error(t, fs.Set("log-rotate-max-size", "lots"))
}
