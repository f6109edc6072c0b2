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

// Package reason refines an escpos code with the place the failure came from.
//
// Reasons are dot-separated paths of one to four segments such as
// "usb.bulk.endpoint", "markup.tag.replacement" or "text.cp437.encode".
// The first segment names the driver subsystem, the rest narrow it down.
// Transport mappers match on reason prefixes, so a rule for "usb" covers
// every USB failure.
//
// The empty reason is valid and means "no refinement".
package reason
