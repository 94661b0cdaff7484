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
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ucasort/ucasort/go/log"
)

var Simple = &cobra.Command{
	Use:   "simple",
	Short: "Sorts the lines of the input.",
	Long: "Sorts the lines of the input in collation order and writes them to the output, one per line.\n" +
		"Strings with identical collation keys are ordered by code point.",
	Example: "ucasort simple --input names.txt",
	Args:    cobra.NoArgs,
	RunE:    commandSimple,
}

func commandSimple(cmd *cobra.Command, args []string) error {
	c, err := newCollator()
	if err != nil {
		return err
	}

	in, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close()

	lines, err := readLines(in)
	if err != nil {
		return err
	}

	sorted := c.Sort(lines)
	log.InfoS("sorted lines", "count", humanize.Comma(int64(len(sorted))), "alternate", c.Alternate().String())
	return writeOutput(cmd, sorted)
}

func init() {
	Root.AddCommand(Simple)
}
