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

package apis

// CodedError reports the coarse, normalized classification of an error
// ("not_found", "unavailable", ...). Adapters treat an empty or unknown code
// as internal.
type CodedError interface {
	error
	ErrorCode() string
}

// ReasonedError reports the dot-separated reason refining the code. The
// result may be empty.
type ReasonedError interface {
	error
	ErrorReason() string
}

// KindedError reports the name of the closed taxonomy variant the error
// belongs to, e.g. "no_table_found". Callers branch on the kind, never on
// the rendered message.
type KindedError interface {
	error
	ErrorKind() string
}

// DetailedError exposes diagnostic key/values attached at the failure site.
// The returned map must not be modified by the caller. May be nil.
type DetailedError interface {
	error
	ErrorDetails() map[string]any
}

// CausedError exposes the direct cause of an error, nil for leaf errors.
// It mirrors Unwrap for callers that want the contract explicit instead of
// going through errors.Unwrap.
type CausedError interface {
	error
	ErrorCause() error
}
