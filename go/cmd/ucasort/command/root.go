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

// Package command contains the commands of the ucasort binary.
package command

import (
	"flag"

	"github.com/spf13/cobra"

	"github.com/ucasort/ucasort/go/collations"
	"github.com/ucasort/ucasort/go/collations/uca"
	"github.com/ucasort/ucasort/go/log"
	"github.com/ucasort/ucasort/go/utils"
	"github.com/ucasort/ucasort/go/viperutil"
)

var (
	configFile string
	inputPath  = "-"
	outputPath = "-"

	cfg = viperutil.New("UCASORT")

	alternate = viperutil.Configure(cfg, "alternate", viperutil.Options[string]{
		FlagName: "alternate",
		Default:  uca.Shifted.String(),
	})
	extractionConcurrency = viperutil.Configure(cfg, "extraction-concurrency", viperutil.Options[int]{
		FlagName: "extraction-concurrency",
		Default:  1,
	})
	metricsFile = viperutil.Configure(cfg, "metrics-file", viperutil.Options[string]{
		FlagName: "metrics-file",
	})

	Root = &cobra.Command{
		Use:   "ucasort",
		Short: "ucasort sorts text in Unicode Collation Algorithm order.",
		Long: "`ucasort` sorts lines of text, or JSON records by a string extracted from each record, " +
			"in Unicode Collation Algorithm order using the Default Unicode Collation Element Table.\n\n" +
			"Flags can also be set in a config file (`--config`) or through `UCASORT_*` environment variables, " +
			"e.g. `UCASORT_EXTRACTION_CONCURRENCY=4`.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(cmd.Flags()); err != nil {
				return err
			}
			return viperutil.LoadConfig(cfg, configFile)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer log.Flush()
			return writeMetrics(metricsFile.Get())
		},
	}
)

// newCollator builds the collator configured by flags, environment and
// config file.
func newCollator() (*collations.Collator, error) {
	alt, err := uca.ParseAlternate(alternate.Get())
	if err != nil {
		return nil, err
	}
	return collations.New(
		collations.WithAlternate(alt),
		collations.WithExtractionConcurrency(extractionConcurrency.Get()),
	), nil
}

func init() {
	fs := Root.PersistentFlags()
	fs.SetNormalizeFunc(utils.NormalizeUnderscoresToDashes)
	log.RegisterFlags(fs)
	fs.AddGoFlagSet(flag.CommandLine)

	utils.SetFlagStringVar(fs, &configFile, "config", configFile, "Config file (yaml, json or toml) with defaults for the flags below.")
	utils.SetFlagStringVar(fs, &inputPath, "input", inputPath, "File to read from, - for stdin.")
	utils.SetFlagStringVar(fs, &outputPath, "output", outputPath, "File to write to, - for stdout.")

	fs.String("alternate", alternate.Default(), "Weighting of spaces, punctuation and symbols: shifted or non-ignorable.")
	fs.Int("extraction-concurrency", extractionConcurrency.Default(), "Number of records whose sort key is extracted concurrently.")
	fs.String("metrics-file", metricsFile.Default(), "If set, write metrics in Prometheus text format to this file on exit.")
	viperutil.BindFlags(fs, alternate, extractionConcurrency, metricsFile)
}
