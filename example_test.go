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

package escpos_test

import (
	"errors"
	"fmt"

	"dirpx.dev/escpos"
)

func ExampleNoReplacementFound() {
	err := escpos.NoReplacementFound("width")
	fmt.Println(err)
	fmt.Println(errors.Is(err, escpos.ErrNoReplacement))
	// Output:
	// not_found:markup.tag.replacement: could not find replacement for tag {width}
	// true
}

func ExampleKindOf() {
	err := fmt.Errorf("print logo: %w", escpos.Image(errors.New("unknown format")))
	switch escpos.KindOf(err) {
	case escpos.KindImage:
		fmt.Println("skip logo:", errors.Unwrap(errors.Unwrap(err)))
	default:
		fmt.Println("abort")
	}
	// Output:
	// skip logo: unknown format
}
