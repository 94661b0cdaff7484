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
Package promstats contains adapters to publish stats variables to prometheus (http://prometheus.io)
*/
package promstats

import (
	"expvar"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/ucasort/ucasort/go/log"
	"github.com/ucasort/ucasort/go/stats"
)

// NewCollector returns a prometheus.Collector for a given stats var.
// It supports Counter and CountersWithLabels; other types return nil.
// The returned collector still needs to be registered with a prometheus registry.
func NewCollector(opts prometheus.Opts, v expvar.Var) prometheus.Collector {
	switch st := v.(type) {
	case *stats.Counter:
		return prometheus.NewCounterFunc(prometheus.CounterOpts(opts), func() float64 {
			return float64(st.Get())
		})
	case *stats.CountersWithLabels:
		return newCountersCollector(opts, st, st.LabelName())
	default:
		log.Warningf("Unsupported type for %s: %T", opts.Name, v)
		return nil
	}
}

type countersCollector struct {
	desc *prometheus.Desc
	c    *stats.CountersWithLabels
}

func newCountersCollector(opts prometheus.Opts, c *stats.CountersWithLabels, label string) prometheus.Collector {
	desc := prometheus.NewDesc(
		prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name),
		opts.Help,
		[]string{stats.GetSnakeName(label)},
		opts.ConstLabels,
	)
	return countersCollector{
		desc: desc,
		c:    c,
	}
}

func (c countersCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c countersCollector) Collect(ch chan<- prometheus.Metric) {
	for k, n := range c.c.Counts() {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.CounterValue, float64(n), k)
	}
}

// Init registers a hook that publishes every stats variable, past and
// future, to reg under the given namespace. It may only be called once
// per process.
func Init(namespace string, reg prometheus.Registerer) {
	stats.Register(func(name string, v expvar.Var) {
		help := ""
		if h, ok := v.(interface{ Help() string }); ok {
			help = h.Help()
		}
		coll := NewCollector(prometheus.Opts{
			Namespace: namespace,
			Name:      metricName(namespace, name),
			Help:      help,
		}, v)
		if coll == nil {
			return
		}
		if err := reg.Register(coll); err != nil {
			log.Warningf("cannot register %s with prometheus: %v", name, err)
		}
	})
}

func metricName(namespace, name string) string {
	return strings.TrimPrefix(stats.GetSnakeName(name), namespace+"_")
}

// WriteText gathers all metrics from g and writes them to w in the
// prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "writing metric family %s", mf.GetName())
		}
	}
	return nil
}
