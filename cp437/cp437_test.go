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

package cp437

import (
	"errors"
	"testing"

	"dirpx.dev/escpos"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"ascii", "Total 12", []byte("Total 12")},
		{"umlaut", "ü", []byte{0x81}},
		{"box drawing", "═", []byte{0xCD}},
		{"empty", "", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			if err != nil {
				t.Fatalf("Encode(%q): %v", tt.in, err)
			}
			if string(got) != string(tt.want) {
				t.Fatalf("Encode(%q) = % x, want % x", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := Encode("ab€")
	if !errors.Is(err, escpos.ErrEncoding) {
		t.Fatalf("want encoding error, got %v", err)
	}
	var e *escpos.Error
	if !errors.As(err, &e) {
		t.Fatal("errors.As failed")
	}
	if e.Details["rune"] != "€" || e.Details["offset"] != 2 {
		t.Fatalf("details = %v", e.Details)
	}
}

func TestEncode_InvalidUTF8(t *testing.T) {
	if _, err := Encode("a\xff"); escpos.KindOf(err) != escpos.KindEncoding {
		t.Fatalf("invalid utf-8 must fail with encoding, got %v", err)
	}
	if Valid("a\xff") {
		t.Fatal("invalid utf-8 must not be valid")
	}
}

func TestEncoder_Replacements(t *testing.T) {
	enc := Encoder{Replacements: map[rune]string{'€': "EUR", '✓': "✔"}}
	got, err := enc.Encode("5€")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(got) != "5EUR" {
		t.Fatalf("got %q", got)
	}
	_, err = enc.Encode("ok ✓")
	if !errors.Is(err, escpos.ErrCP437) {
		t.Fatalf("unencodable replacement must fail with cp437, got %v", err)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	const in = "Café ½ ░▒▓"
	if !Valid(in) {
		t.Fatalf("%q should be valid", in)
	}
	b, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := Decode(b); got != in {
		t.Fatalf("Decode = %q, want %q", got, in)
	}
}
