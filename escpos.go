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

// Package escpos holds the error taxonomy shared by every part of the
// thermal printer driver.
//
// Each failure is an *Error whose Kind names one member of a closed set of
// variants (see Kinds). Next to the Kind every error carries:
//   - Code: coarse, transport-facing class (dirpx.dev/escpos/code);
//   - Reason: dot-separated origin, e.g. "usb.bulk.endpoint";
//   - Message: human-readable text with the variant's payload interpolated;
//   - Details: optional diagnostic key/values;
//   - Cause: the wrapped lower-level error, for wrapping kinds only.
//
// Callers branch on the variant with errors.Is against the Err* sentinels,
// or with KindOf:
//
//	if errors.Is(err, escpos.ErrNoTableFound) {
//	    // fall back to the default table
//	}
//
// Errors are immutable. The WithX helpers return modified copies.
package escpos

import (
	"errors"
	"strings"

	"dirpx.dev/escpos/code"
	"dirpx.dev/escpos/reason"
)

// Error is the single failure type of the driver.
type Error struct {
	// Kind is the taxonomy variant. It decides matching via errors.Is.
	Kind Kind

	// Code is the coarse class used by transport mappers. Constructors set
	// it from the Kind.
	Code code.Code

	// Reason refines Code with the failing subsystem. Constructors set it
	// from the Kind; callers may narrow it with WithReason.
	Reason reason.Reason

	// Message is the rendered, payload-bearing description.
	Message string

	// Details are extra diagnostic values (offsets, runes, device ids).
	// Treated as immutable; WithDetail copies.
	Details map[string]any

	// Cause is the wrapped lower-level error. Only wrapping kinds have one.
	Cause error
}

// Error renders the error as
//
//	<code>:<reason>: <message>[: <cause>]
//
// Payloads are concatenated, never used as format strings, so any content
// renders as-is. The result is never empty.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	c := e.Code
	if c == code.Empty {
		c = e.Kind.Code()
	}
	b.WriteString(string(c))
	if e.Reason != reason.Empty {
		b.WriteByte(':')
		b.WriteString(string(e.Reason))
	}
	b.WriteString(": ")
	b.WriteString(e.message())
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.info().message
}

// Unwrap returns the wrapped cause, nil for leaf errors.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is an *Error of the same, valid Kind. Payloads
// are not compared, so any NoTableFound error matches ErrNoTableFound.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.Kind.Valid() && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	return KindUnknown
}

// ErrorCode implements apis.CodedError. An unset Code reports the kind's
// code, as Error does.
func (e *Error) ErrorCode() string {
	if e.Code == code.Empty {
		return string(e.Kind.Code())
	}
	return string(e.Code)
}

// ErrorReason implements apis.ReasonedError.
func (e *Error) ErrorReason() string { return string(e.Reason) }

// ErrorKind implements apis.KindedError.
func (e *Error) ErrorKind() string { return e.Kind.String() }

// ErrorDetails implements apis.DetailedError.
func (e *Error) ErrorDetails() map[string]any { return e.Details }

// ErrorCause implements apis.CausedError. It returns the Cause field.
func (e *Error) ErrorCause() error { return e.Unwrap() }
