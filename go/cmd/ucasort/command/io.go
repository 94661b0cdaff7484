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

package command

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ucasort/ucasort/go/ioutil2"
)

func openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	if inputPath == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	return f, nil
}

// writeOutput writes one line per string to the configured output. Files
// are replaced atomically.
func writeOutput(cmd *cobra.Command, lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return writeData(cmd, buf.Bytes())
}

func writeData(cmd *cobra.Command, data []byte) error {
	if outputPath != "-" {
		return ioutil2.WriteFileAtomic(outputPath, data, 0o644)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return errors.Wrap(err, "writing output")
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16<<20)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading lines")
	}
	return lines, nil
}
