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
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ucasort/ucasort/go/collations"
	"github.com/ucasort/ucasort/go/log"
	"github.com/ucasort/ucasort/go/records"
	"github.com/ucasort/ucasort/go/slices2"
)

var Complex = &cobra.Command{
	Use:   "complex <accessor> [<arg> ...]",
	Short: "Sorts JSON records by a string extracted from each record.",
	Long: "Reads one JSON record per line and sorts the records by the string the named accessor returns for each of them. " +
		"The extra arguments are passed to the accessor for every record.\n\n" +
		"Accessors: " + strings.Join(records.Accessors(), ", ") + ".\n\n" +
		"The sort fails without output if any record has no string for the accessor.",
	Example: "ucasort complex get name --input people.jsonl\n" +
		"ucasort complex join ' ' last first --input people.jsonl",
	Args: cobra.MinimumNArgs(1),
	RunE: commandComplex,
}

func commandComplex(cmd *cobra.Command, args []string) error {
	c, err := newCollator()
	if err != nil {
		return err
	}

	in, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close()

	recs, err := records.ReadAll(in)
	if err != nil {
		return err
	}

	accessorArgs := slices2.Map(args[1:], func(s string) any { return s })
	sorted, err := collations.SortFunc(c, recs, records.Accessor(args[0]), accessorArgs...)
	if err != nil {
		log.WarnS("complex sort failed", "accessor", args[0], "records", humanize.Comma(int64(len(recs))), "error", err)
		return err
	}

	log.InfoS("sorted records", "count", humanize.Comma(int64(len(sorted))), "accessor", args[0])
	return writeOutput(cmd, slices2.Map(sorted, records.Record.Raw))
}

func init() {
	Root.AddCommand(Complex)
}
