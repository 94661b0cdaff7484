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

// makeweights compresses a DUCET allkeys.txt into the weight table resource
// embedded by the uca package. Comments are stripped and the result is
// parsed before it is written, so a resource that fails to load is never
// produced.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/klauspost/pgzip"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/ucasort/ucasort/go/collations/uca"
	"github.com/ucasort/ucasort/go/ioutil2"
	"github.com/ucasort/ucasort/go/log"
)

var (
	allkeys = pflag.String("allkeys", "allkeys.txt", "path to the allkeys.txt file published by the Unicode Consortium")
	out     = pflag.String("out", "data/allkeys.txt.gz", "path of the compressed resource to write")
)

func main() {
	pflag.Parse()
	if err := run(*allkeys, *out); err != nil {
		log.Exitf("makeweights: %v", err)
	}
}

func run(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	var stripped bytes.Buffer
	lines, err := strip(in, &stripped)
	if err != nil {
		return errors.Wrapf(err, "reading %s", src)
	}

	table, err := uca.Parse(bytes.NewReader(stripped.Bytes()))
	if err != nil {
		return errors.Wrapf(err, "parsing %s", src)
	}

	if err := writeGzip(dst, stripped.Bytes()); err != nil {
		return err
	}
	log.InfoS("wrote weight table", "path", dst, "version", table.Version(), "lines", lines,
		"entries", table.Len(), "checksum", fmt.Sprintf("%016x", table.Checksum()))
	return nil
}

func writeGzip(dst string, data []byte) error {
	var buf bytes.Buffer
	zw, err := pgzip.NewWriterLevel(&buf, pgzip.BestCompression)
	if err != nil {
		return err
	}
	// zero header: no name, no mtime
	if _, err := zw.Write(data); err != nil {
		return errors.Wrapf(err, "compressing %s", dst)
	}
	if err := zw.Close(); err != nil {
		return errors.Wrapf(err, "compressing %s", dst)
	}
	return ioutil2.WriteFileAtomic(dst, buf.Bytes(), 0o644)
}
