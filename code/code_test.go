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
	"encoding"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal  ", "internal"},
		{"to lower", "UnAvailable", "unavailable"},
		{"dash to underscore", "not-found", "not_found"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Code
		wantErr bool
	}{
		{"simple", "missing", Missing, false},
		{"upper dash", " NOT-FOUND ", NotFound, false},
		{"min length", "abc", Code("abc"), false},
		{"empty", "", Empty, true},
		{"too short", "ab", Empty, true},
		{"digit first", "1abc", Empty, true},
		{"dot", "not.found", Empty, true},
		{"too long", "a_code_that_is_far_too_long_to_be_accepted_by_the_length_limit_xyz", Empty, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse must panic on invalid input")
		}
	}()
	_ = MustParse("x")
}

func TestAll_DeclaredCodesAreValid(t *testing.T) {
	codes := All()
	if len(codes) == 0 {
		t.Fatal("no codes declared")
	}
	for _, c := range codes {
		if err := Validate(c); err != nil {
			t.Fatalf("declared code %q is invalid: %v", c, err)
		}
		if !Known(c) {
			t.Fatalf("Known(%q) = false", c)
		}
	}
	codes[0] = "mutated"
	if All()[0] == "mutated" {
		t.Fatal("All must return a copy")
	}
	if Known("teapot") {
		t.Fatal("undeclared code reported as known")
	}
}

func TestText_RoundTrip(t *testing.T) {
	var _ encoding.TextMarshaler = Unavailable

	b, err := Unavailable.MarshalText()
	if err != nil || string(b) != "unavailable" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	var c Code
	if err := c.UnmarshalText([]byte("  Not-Found ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != NotFound {
		t.Fatalf("UnmarshalText got %q", c)
	}
	if _, err := Empty.MarshalText(); err == nil {
		t.Fatal("empty code must not marshal")
	}
	if err := c.UnmarshalText([]byte("?")); err == nil {
		t.Fatal("invalid text must not unmarshal")
	}
}
