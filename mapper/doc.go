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

// Package mapper resolves escpos error codes and reasons into HTTP and gRPC
// statuses, for print servers that expose driver failures to clients.
//
// # Resolution model
//
// For a (code, reason) pair a Mapper tries, in order:
//
//  1. an exact override for the code;
//  2. the longest reason-prefix rule registered for the code;
//  3. the code's default (library or user-adjusted);
//  4. the global fallback, 500 / codes.Internal.
//
// Prefix rules work on whole reason segments, and "*" matches exactly one
// segment:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPPrefix(code.Unavailable, "usb.bulk", http.StatusBadGateway),
//	    mapper.WithHTTPPrefix(code.NotFound, "print.data.*", http.StatusUnprocessableEntity),
//	)
//
// Policies can also be loaded from YAML with LoadConfig and turned into
// options with Config.Options.
//
// A Mapper is an immutable snapshot: New copies everything it is given, so
// one instance can serve every request concurrently.
package mapper
