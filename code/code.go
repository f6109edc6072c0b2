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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is a normalized error code, e.g. "not_found" or "unavailable".
//
// It is a distinct type so that raw strings coming from config files or the
// wire have to go through Parse before they are used as a classification.
type Code string

// Length bounds for a canonical code. The pattern below encodes the same
// range; keep them in sync.
const (
	MinLength = 3
	MaxLength = 64
)

// codeRe: a lowercase letter followed by 2..63 of [a-z0-9_].
var codeRe = regexp.MustCompile(`^[a-z][a-z0-9_]{2,63}$`)

// ErrCodeInvalid is returned for values that are not canonical codes even
// after normalization.
var ErrCodeInvalid = errors.New("escpos: invalid code")

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero code. It means "not provided" and fails Validate.
var Empty Code = ""

// Parse normalizes s and validates the result.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if !codeRe.MatchString(s) {
		return Empty, ErrCodeInvalid
	}
	return Code(s), nil
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize trims s, lowercases it and turns dashes into underscores.
// The result is not guaranteed to be valid.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "-", "_")
}

// Validate reports whether c is canonical. Empty is invalid.
func Validate(c Code) error {
	if !codeRe.MatchString(string(c)) {
		return ErrCodeInvalid
	}
	return nil
}

// Known reports whether c is one of the codes declared by this package.
func Known(c Code) bool {
	for _, k := range all {
		if k == c {
			return true
		}
	}
	return false
}

func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler. Invalid codes do not marshal.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so codes can be read
// straight from YAML or JSON mapping policies.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
