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

import "github.com/pkg/errors"

type trie struct {
	children map[rune]*trie
	elems    []Elem
}

func (t *trie) child(cp rune) *trie {
	if t == nil {
		return nil
	}
	return t.children[cp]
}

func (t *trie) insert(path []rune, elems []Elem) error {
	if len(path) == 0 {
		if t.elems != nil {
			return errors.New("duplicate contraction")
		}
		t.elems = elems
		return nil
	}

	if t.children == nil {
		t.children = make(map[rune]*trie)
	}
	ch := t.children[path[0]]
	if ch == nil {
		ch = &trie{}
		t.children[path[0]] = ch
	}
	return ch.insert(path[1:], elems)
}

type contraction struct {
	path  []rune
	elems []Elem
}

type contractions struct {
	root trie
}

// start returns the trie node for contractions beginning with cp, or nil
// if cp never starts one.
func (ctr *contractions) start(cp rune) *trie {
	if ctr == nil {
		return nil
	}
	return ctr.root.child(cp)
}

func newContractions(all []contraction) (*contractions, error) {
	if len(all) == 0 {
		return nil, nil
	}
	ctr := &contractions{}
	for _, c := range all {
		if len(c.path) < 2 {
			return nil, errors.Errorf("contraction %X is too short", c.path)
		}
		if err := ctr.root.insert(c.path, c.elems); err != nil {
			return nil, errors.Wrapf(err, "contraction %X", c.path)
		}
	}
	return ctr, nil
}
