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

package uca

import "fmt"

// Elem is a single collation element: one weight for each of the three
// levels stored in the table, plus the variable flag ("*" in allkeys.txt).
type Elem struct {
	Primary   uint16
	Secondary uint16
	Tertiary  uint16
	Variable  bool
}

// Ignorable reports whether the element carries no weight at any level.
func (e Elem) Ignorable() bool {
	return e.Primary == 0 && e.Secondary == 0 && e.Tertiary == 0
}

// String formats the element the way allkeys.txt does, e.g. [.1FA2.0020.0002].
func (e Elem) String() string {
	mark := '.'
	if e.Variable {
		mark = '*'
	}
	return fmt.Sprintf("[%c%04X.%04X.%04X]", mark, e.Primary, e.Secondary, e.Tertiary)
}
