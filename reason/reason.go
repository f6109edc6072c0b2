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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is a normalized, dot-separated error reason.
type Reason string

// Length bounds for a non-empty reason.
const (
	MinLength = 3
	MaxLength = 128
)

// One to four segments, each [a-z][a-z0-9_]*.
var reasonRe = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`)

var (
	// ErrReasonInvalidFormat is returned when a reason does not match the
	// segment grammar.
	ErrReasonInvalidFormat = errors.New("escpos: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is outside
	// MinLength..MaxLength.
	ErrReasonInvalidLength = errors.New("escpos: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty means no reason was given. It is always valid.
var Empty Reason = ""

// Reasons attached by the escpos constructors, grouped by subsystem.
const (
	USBTransport   Reason = "usb.transport"
	USBBulkOut     Reason = "usb.bulk.endpoint"
	CP437Replace   Reason = "text.cp437.replace"
	CP437Encode    Reason = "text.cp437.encode"
	ImageDecode    Reason = "image.decode"
	TagReplacement Reason = "markup.tag.replacement"
	Markup         Reason = "markup.structure"
	PrintJob       Reason = "print.job"
	PrintData      Reason = "print.data"
	Tables         Reason = "print.data.tables"
	Table          Reason = "print.data.table"
	QRContent      Reason = "print.data.qr"
	QRContents     Reason = "print.data.qrs"
	FontWidth      Reason = "layout.font.width"
)

// Normalize trims and lowercases s, maps "/" to "." and "-" to "_".
// The result is not guaranteed to be valid.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "/", ".")
	return strings.ReplaceAll(s, "-", "_")
}

// Parse normalizes s and validates it. An empty or blank input yields Empty
// and no error.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is like Parse but panics on invalid or empty input.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("escpos: empty reason in MustParse")
	}
	return r
}

// Validate reports whether r is canonical. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// Subsystem returns the first segment of r ("usb" for "usb.bulk.endpoint").
func (r Reason) Subsystem() string {
	s := string(r)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// HasPrefix reports whether r equals p or starts with p followed by a
// segment boundary. "usb.bulk" is a prefix of "usb.bulk.endpoint" but not of
// "usb.bulkhead".
func (r Reason) HasPrefix(p Reason) bool {
	if p == Empty {
		return true
	}
	s, ps := string(r), string(p)
	if !strings.HasPrefix(s, ps) {
		return false
	}
	return len(s) == len(ps) || s[len(ps)] == '.'
}

func (r Reason) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler. Empty marshals to an empty
// slice.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
