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
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"text digits text", "abc123def", []string{"abc", "123", "def"}},
		{"digits text digits", "123abc456", []string{"123", "abc", "456"}},
		{"empty", "", []string{""}},
		{"alternating", "a1b2c3", []string{"a", "1", "b", "2", "c", "3"}},
		{"only digits", "0042", []string{"0042"}},
		{"only text", "hello, world", []string{"hello, world"}},
		{"single digit", "7", []string{"7"}},
		{"whitespace is text", "w 32 ", []string{"w ", "32", " "}},
		{"multibyte kept whole", "é12ü", []string{"é", "12", "ü"}},
		{"arabic-indic digit is text", "٣3", []string{"٣", "3"}},
		{"fullwidth digit is text", "１1", []string{"１", "1"}},
		{"markup width", "{w32}Total", []string{"{w", "32", "}Total"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.in))
		})
	}
}

func TestSegments_MatchesSplit(t *testing.T) {
	for _, in := range []string{"", "a", "1", "x86_64", "12:30pm", "ab1c23d456"} {
		var lazy []string
		for seg := range Segments(in) {
			lazy = append(lazy, seg)
		}
		assert.Equal(t, Split(in), lazy, "input %q", in)
	}
}

func TestSegments_StopsEarly(t *testing.T) {
	var got []string
	for seg := range Segments("a1b2c3") {
		got = append(got, seg)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "1"}, got)
}

func TestSplit_InvalidUTF8Preserved(t *testing.T) {
	in := "a\xff1\xfe"
	segs := Split(in)
	assert.Equal(t, in, strings.Join(segs, ""))
	assert.Equal(t, []string{"a\xff", "1", "\xfe"}, segs)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Empty, Classify(""))
	assert.Equal(t, Digits, Classify("2024"))
	assert.Equal(t, Text, Classify("abc"))
	assert.Equal(t, Mixed, Classify("a1"))
	assert.Equal(t, "digits", Digits.String())
	assert.Equal(t, "invalid", Class(9).String())
}

// checkInvariants asserts every documented property of Split for in.
func checkInvariants(t *testing.T, in string) {
	t.Helper()
	segs := Split(in)
	require.NotEmpty(t, segs)
	require.Equal(t, in, strings.Join(segs, ""), "partition must be lossless")

	if in == "" {
		require.Equal(t, []string{""}, segs)
		return
	}
	prev := Empty
	for i, seg := range segs {
		c := Classify(seg)
		require.NotEqual(t, Empty, c, "segment %d of %q is empty", i, in)
		require.NotEqual(t, Mixed, c, "segment %d of %q is mixed", i, in)
		require.NotEqual(t, prev, c, "segments %d and %d of %q share a class", i-1, i, in)
		for _, r := range seg {
			require.Equal(t, c == Digits, IsDigit(r))
		}
		require.Equal(t, []string{seg}, Split(seg), "re-splitting a segment must be identity")
		prev = c
	}
}

func TestSplit_Invariants(t *testing.T) {
	for _, in := range []string{"", "0", "a", "a0", "0a", "00aa00", "ü9ü", "\xff9", "1 2 3", strings.Repeat("ab12", 100)} {
		checkInvariants(t, in)
	}
}

func TestSplit_Concurrent(t *testing.T) {
	const in = "order 1042 / table 7"
	want := Split(in)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				if got := Split(in); len(got) != len(want) {
					t.Errorf("concurrent Split returned %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func FuzzSplit(f *testing.F) {
	for _, s := range []string{"", "abc123def", "123abc456", "a1b2c3", "é٣1", "\xff"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		checkInvariants(t, in)
	})
}

func BenchmarkSplit(b *testing.B) {
	in := strings.Repeat("Item 12 x 3.50 ", 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Split(in)
	}
}
