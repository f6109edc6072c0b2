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

// Package tokenize splits text into maximal runs of decimal digits and
// non-digits.
//
// Printer markup embeds numeric specifiers in literal text ("w32", "x2b"),
// and the markup interpreter needs them separated before it can look them
// up:
//
//	tokenize.Split("abc123def") // ["abc" "123" "def"]
//
// Properties of the output, for every input s:
//   - concatenating the segments yields s;
//   - each segment is all digits or holds no digit at all;
//   - adjacent segments never share a class.
//
// Only ASCII '0'..'9' count as digits. Classification is per codepoint, so
// multi-byte characters are never split. Segments are substrings of the
// input and share its memory.
//
// The empty string yields one empty segment. Callers that want "no
// segments" for empty input must check for it themselves.
package tokenize
