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

package tokenize

import (
	"iter"
	"unicode/utf8"
)

// Class is the digit classification of a segment.
type Class uint8

const (
	Empty  Class = iota // the empty segment
	Digits              // only '0'..'9'
	Text                // no '0'..'9'
	Mixed               // not a segment produced by Split
)

func (c Class) String() string {
	switch c {
	case Empty:
		return "empty"
	case Digits:
		return "digits"
	case Text:
		return "text"
	case Mixed:
		return "mixed"
	}
	return "invalid"
}

// IsDigit reports whether r is one of the decimal digits '0'..'9'.
// Other Unicode digits are text.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Split returns the maximal digit/non-digit runs of s in order.
// Split("") returns a single empty segment.
func Split(s string) []string {
	if s == "" {
		return []string{""}
	}
	out := make([]string, 0, 4)
	for seg := range Segments(s) {
		out = append(out, seg)
	}
	return out
}

// Segments is the lazy form of Split: it yields the same segments, stopping
// as soon as the consumer does.
func Segments(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == "" {
			yield("")
			return
		}
		r, _ := utf8.DecodeRuneInString(s)
		digit := IsDigit(r)
		start := 0
		for i, r := range s {
			if IsDigit(r) == digit {
				continue
			}
			if !yield(s[start:i]) {
				return
			}
			start = i
			digit = !digit
		}
		yield(s[start:])
	}
}

// Classify reports the class of seg. Segments produced by Split are never
// Mixed.
func Classify(seg string) Class {
	if seg == "" {
		return Empty
	}
	var digits, text bool
	for _, r := range seg {
		if IsDigit(r) {
			digits = true
		} else {
			text = true
		}
		if digits && text {
			return Mixed
		}
	}
	if digits {
		return Digits
	}
	return Text
}
