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

// Package code holds the high-level classification used by every escpos error.
//
// A code answers "what kind of failure is this?" in a way that transport
// layers understand: "not_found" becomes 404 / NotFound, "unavailable"
// becomes 503 / Unavailable, and so on. The finer printer-specific variant
// lives in escpos.Kind; the code is the coarse bucket that variant belongs to.
//
// Codes are lowercase, underscore-separated, 3..64 characters long and must
// start with a letter. The empty code is never valid on a constructed error.
package code
