/*
   Copyright 2025 The DIRPX Authors

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

// Package segmenttrie is a prefix index over dot-separated reasons.
//
// Matching respects segment boundaries ("usb.bulk" matches
// "usb.bulk.endpoint" but not "usb.bulkhead") and a "*" segment in a stored
// prefix matches exactly one segment of the reason.
package segmenttrie

import (
	"errors"
	"strings"
)

// ErrInvalidPrefix is returned for empty prefixes, malformed segments and
// prefixes made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

const wildcard = "*"

// Trie maps reason prefixes to values. Build it with Insert, then share it
// read-only.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	pattern  string // the prefix as inserted, for diagnostics
}

// New returns an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert stores val under prefix, replacing any previous value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == wildcard {
			continue
		}
		if !ValidSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	n := t
	for _, s := range segs {
		child, ok := n.children[s]
		if !ok {
			child = New[T]()
			n.children[s] = child
		}
		n = child
	}
	n.hasVal, n.val, n.pattern = true, val, prefix
	return nil
}

// Match returns the value of the deepest prefix matching reason.
func (t *Trie[T]) Match(reason string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(reason)
	return v, ok
}

// MatchWithPattern is Match plus the stored prefix that matched. At equal
// depth an exact segment beats a wildcard. A malformed segment in reason
// ends matching at that point.
func (t *Trie[T]) MatchWithPattern(reason string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best := match[T]{depth: -1}
	best.walk(t, reason, 0)
	if best.depth < 0 {
		return zero, false, ""
	}
	return best.node.val, true, best.node.pattern
}

type match[T any] struct {
	depth int
	node  *Trie[T]
}

func (m *match[T]) walk(n *Trie[T], rest string, depth int) {
	if n.hasVal && depth > m.depth {
		m.depth, m.node = depth, n
	}
	if rest == "" {
		return
	}
	seg, tail, _ := strings.Cut(rest, ".")
	if !ValidSegment(seg) {
		return
	}
	// exact first, so it claims a depth before the wildcard can tie it
	if next, ok := n.children[seg]; ok {
		m.walk(next, tail, depth+1)
	}
	if next, ok := n.children[wildcard]; ok {
		m.walk(next, tail, depth+1)
	}
}

// ValidSegment reports whether seg matches [a-z][a-z0-9_]*.
func ValidSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
