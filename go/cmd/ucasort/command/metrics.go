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
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ucasort/ucasort/go/ioutil2"
	"github.com/ucasort/ucasort/go/log"
	"github.com/ucasort/ucasort/go/stats/promstats"
)

// registry collects every stats variable of the process.
var registry = sync.OnceValue(func() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	promstats.Init("ucasort", reg)
	return reg
})

func writeMetrics(path string) error {
	if path == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := promstats.WriteText(&buf, registry()); err != nil {
		return err
	}
	if err := ioutil2.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	log.InfoS("wrote metrics", "path", path, "size", humanize.Bytes(uint64(buf.Len())))
	return nil
}
