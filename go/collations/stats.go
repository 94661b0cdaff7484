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

package collations

import "github.com/ucasort/ucasort/go/stats"

const (
	simpleSort  = "simple"
	complexSort = "complex"
)

var (
	sorts            = stats.NewCountersWithLabels("CollationSorts", "Number of sort calls by mode", "Mode", simpleSort, complexSort)
	sortedElements   = stats.NewCounter("CollationSortedElements", "Number of elements passed to sort calls")
	extractionErrors = stats.NewCounter("CollationExtractionErrors", "Number of complex sorts aborted because a sort key could not be extracted")
	keyCacheHits     = stats.NewCounter("CollationKeyCacheHits", "Number of collation keys served from a key cache")
	keyCacheMisses   = stats.NewCounter("CollationKeyCacheMisses", "Number of collation keys built and added to a key cache")
)
