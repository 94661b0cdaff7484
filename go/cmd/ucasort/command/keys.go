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
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ucasort/ucasort/go/collations/uca"
	"github.com/ucasort/ucasort/go/slices2"
)

var Keys = &cobra.Command{
	Use:   "keys",
	Short: "Prints the collation key of every input line, in sorted order.",
	Long: "Sorts the lines of the input like `simple` and prints a table with the weights of each line " +
		"at every level of its collation key. Useful to see why two strings sort the way they do.",
	Example: "printf 'cafe\\ncafé\\n' | ucasort keys",
	Args:    cobra.NoArgs,
	RunE:    commandKeys,
}

func formatWeights(weights []uint16) string {
	return strings.Join(slices2.Map(weights, func(w uint16) string {
		return fmt.Sprintf("%04X", w)
	}), " ")
}

func commandKeys(cmd *cobra.Command, args []string) error {
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

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.Header("String", "Primary", "Secondary", "Tertiary", "Quaternary")
	for _, s := range c.Sort(lines) {
		k := c.Key(s)
		row := []string{strconv.Quote(s)}
		for l := uca.Primary; l < uca.NumLevels; l++ {
			row = append(row, formatWeights(k.Level(l)))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	return writeData(cmd, buf.Bytes())
}

func init() {
	Root.AddCommand(Keys)
}
