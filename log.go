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
	"log/slog"
	"slices"
)

var _ slog.LogValuer = (*Error)(nil)

// LogValue implements slog.LogValuer so that
//
//	slog.Error("print failed", "error", err)
//
// logs the structured fields instead of the flat string.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{
		slog.String("kind", e.Kind.String()),
		slog.String("code", string(e.Code)),
	}
	if e.Reason != "" {
		attrs = append(attrs, slog.String("reason", string(e.Reason)))
	}
	attrs = append(attrs, slog.String("message", e.message()))
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		details := make([]any, 0, len(keys))
		for _, k := range keys {
			details = append(details, slog.Any(k, e.Details[k]))
		}
		attrs = append(attrs, slog.Group("details", details...))
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	return slog.GroupValue(attrs...)
}
