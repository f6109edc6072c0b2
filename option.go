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
	"maps"

	"dirpx.dev/escpos/reason"
)

// Option transforms an Error during construction. Options never modify
// their input; they return a copy.
type Option func(*Error) *Error

// WithReasonOption narrows the reason, e.g. "usb.transport.claim".
func WithReasonOption(r reason.Reason) Option {
	return func(e *Error) *Error { return e.WithReason(r) }
}

// WithMessageOption replaces the rendered message.
func WithMessageOption(msg string) Option {
	return func(e *Error) *Error { return e.WithMessage(msg) }
}

// WithDetailOption adds one diagnostic key/value.
func WithDetailOption(k string, v any) Option {
	return func(e *Error) *Error { return e.WithDetail(k, v) }
}

// WithDetailsOption merges diagnostic key/values.
func WithDetailsOption(kv map[string]any) Option {
	return func(e *Error) *Error { return e.WithDetails(kv) }
}

// WithCauseOption attaches a cause. Ignored for leaf kinds.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error { return e.WithCause(err) }
}

// WithReason returns a copy of e with Reason set to r.
func (e *Error) WithReason(r reason.Reason) *Error {
	cp := *e
	cp.Reason = r
	return &cp
}

// WithMessage returns a copy of e with a replaced message. An empty message
// falls back to the kind's default text when rendered.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a copy of e with k set to v in Details. The details map
// is copied, never shared with e.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(e.Details)+1)
	maps.Copy(m, e.Details)
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a copy of e with kv merged into Details; kv wins on
// conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(e.Details)+len(kv))
	maps.Copy(m, e.Details)
	maps.Copy(m, kv)
	cp.Details = m
	return &cp
}

// WithCause returns a copy of e wrapping err. Leaf kinds stay terminal: for
// them, and for a nil err, e is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil || !e.Kind.Wraps() {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
