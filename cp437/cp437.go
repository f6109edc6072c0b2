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

// Package cp437 converts UTF-8 text to the IBM code page 437 bytes most
// thermal printers expect in their default character table.
//
// Characters outside CP437 either go through a caller-supplied replacement
// table or fail with an escpos error of kind KindEncoding. A replacement that
// is itself not representable fails with KindCP437.
package cp437

import (
	"strings"
	"unicode/utf8"

	"dirpx.dev/escpos"
	"golang.org/x/text/encoding/charmap"
)

// Encoder encodes text to CP437. The zero value has no replacements.
type Encoder struct {
	// Replacements maps characters without a CP437 form to substitute text,
	// e.g. "€" -> "EUR". Keys are single characters.
	Replacements map[rune]string
}

// Encode encodes s with no replacements.
func Encode(s string) ([]byte, error) {
	return Encoder{}.Encode(s)
}

// Encode returns the CP437 bytes of s. It fails on the first character that
// is neither encodable nor replaceable; the error carries the character and
// its byte offset in s as details "rune" and "offset".
func (e Encoder) Encode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		if b, ok := encodeRune(r, s[i:]); ok {
			out = append(out, b)
			continue
		}
		repl, ok := e.Replacements[r]
		if !ok {
			return nil, escpos.Encoding(
				escpos.WithDetailOption("rune", string(r)),
				escpos.WithDetailOption("offset", i),
			)
		}
		for _, rr := range repl {
			b, ok := charmap.CodePage437.EncodeRune(rr)
			if !ok {
				return nil, escpos.CP437(repl, escpos.WithDetailOption("offset", i))
			}
			out = append(out, b)
		}
	}
	return out, nil
}

// encodeRune treats invalid UTF-8 as unencodable rather than as U+FFFD.
func encodeRune(r rune, rest string) (byte, bool) {
	if r == utf8.RuneError {
		if _, size := utf8.DecodeRuneInString(rest); size <= 1 {
			return 0, false
		}
	}
	return charmap.CodePage437.EncodeRune(r)
}

// Valid reports whether every character of s has a CP437 form.
func Valid(s string) bool {
	for i, r := range s {
		if _, ok := encodeRune(r, s[i:]); !ok {
			return false
		}
	}
	return true
}

// Decode converts CP437 bytes back to UTF-8. Every byte has a mapping, so
// Decode cannot fail.
func Decode(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(charmap.CodePage437.DecodeByte(c))
	}
	return sb.String()
}
