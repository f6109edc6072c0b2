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

package tokenize_test

import (
	"fmt"

	"dirpx.dev/escpos/tokenize"
)

func ExampleSplit() {
	for _, seg := range tokenize.Split("abc123def") {
		fmt.Printf("%s %q\n", tokenize.Classify(seg), seg)
	}
	// Output:
	// text "abc"
	// digits "123"
	// text "def"
}
