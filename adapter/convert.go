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

// Package adapter flattens errors into the transport-neutral apis.ErrorView
// that the HTTP and gRPC writers put on the wire.
package adapter

import (
	"errors"

	"dirpx.dev/escpos/apis"
	"dirpx.dev/escpos/code"
)

// ToView describes err for the wire. The first apis.ViewProvider in err's
// chain (usually an *escpos.Error) supplies the view. Other errors are
// described through the apis contracts they implement, defaulting to kind
// "unknown" and code "internal" with their rendered text as message; their
// causes (apis.CausedError, else Unwrap) are listed in Causes, outermost
// first.
//
// Nothing is redacted; callers decide what is safe to expose.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}
	v := apis.ErrorView{Kind: "unknown", Code: string(code.Internal), Message: err.Error()}
	if ce, ok := err.(apis.CodedError); ok && ce.ErrorCode() != "" {
		v.Code = ce.ErrorCode()
	}
	if ke, ok := err.(apis.KindedError); ok {
		v.Kind = ke.ErrorKind()
	}
	if re, ok := err.(apis.ReasonedError); ok {
		v.Reason = re.ErrorReason()
	}
	if de, ok := err.(apis.DetailedError); ok && len(de.ErrorDetails()) > 0 {
		v.Details = de.ErrorDetails()
	}
	for c := cause(err); c != nil; c = cause(c) {
		v.Causes = append(v.Causes, c.Error())
	}
	return v
}

// cause prefers the apis.CausedError contract over errors.Unwrap.
func cause(err error) error {
	if ce, ok := err.(apis.CausedError); ok {
		return ce.ErrorCause()
	}
	return errors.Unwrap(err)
}
