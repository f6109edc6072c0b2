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

package escpos

import (
	"errors"

	"dirpx.dev/escpos/apis"
)

var (
	_ apis.ViewProvider  = (*Error)(nil)
	_ apis.CodedError    = (*Error)(nil)
	_ apis.ReasonedError = (*Error)(nil)
	_ apis.KindedError   = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.CausedError   = (*Error)(nil)
)

// ErrorView implements apis.ViewProvider. Message is the bare message
// without code, reason or cause; the cause chain is listed in Causes.
func (e *Error) ErrorView() apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Kind:    e.Kind.String(),
		Code:    e.ErrorCode(),
		Reason:  string(e.Reason),
		Message: e.message(),
	}
	if len(e.Details) > 0 {
		v.Details = e.Details
	}
	for cause := e.Cause; cause != nil; cause = errors.Unwrap(cause) {
		v.Causes = append(v.Causes, cause.Error())
	}
	return v
}
