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

// Codes used by the printer driver. Each escpos.Kind is assigned exactly one
// of them; several kinds share a code when transports should treat them the
// same way.
const (
	// Internal is an unclassified failure inside the driver, typically a
	// print job that broke half-way. Maps to 500 / Internal.
	Internal Code = "internal"

	// Invalid means caller-provided content has the wrong shape: broken
	// markup, bytes that are not an image, text that cannot be transliterated.
	// Maps to 400 / InvalidArgument.
	Invalid Code = "invalid"

	// Missing means a required piece of print data was not supplied at all
	// (no tables, no QR contents, no font width).
	// Maps to 400 / InvalidArgument.
	Missing Code = "missing"

	// NotFound means a lookup by key failed: a tag replacement, a table id,
	// a QR label. The missing key travels in the error message.
	// Maps to 404 / NotFound.
	NotFound Code = "not_found"

	// Unsupported means the input is well-formed but cannot be represented
	// on the target, e.g. a character outside code page 437.
	// Maps to 422 / InvalidArgument.
	Unsupported Code = "unsupported"

	// Unavailable means the printer could not be reached: the USB transfer
	// failed or the device exposes no bulk OUT endpoint.
	// Maps to 503 / Unavailable.
	Unavailable Code = "unavailable"
)

var all = []Code{Internal, Invalid, Missing, NotFound, Unsupported, Unavailable}

// All returns the declared codes in a fresh slice.
func All() []Code {
	out := make([]Code, len(all))
	copy(out, all)
	return out
}
