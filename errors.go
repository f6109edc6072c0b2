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

// Sentinels for errors.Is. They match any error of the same Kind regardless
// of payload.
var (
	ErrTransport      = sentinel(KindTransport)
	ErrCP437          = sentinel(KindCP437)
	ErrImage          = sentinel(KindImage)
	ErrNoBulkEndpoint = sentinel(KindNoBulkEndpoint)
	ErrNoReplacement  = sentinel(KindNoReplacement)
	ErrNoPrintData    = sentinel(KindNoPrintData)
	ErrPrinter        = sentinel(KindPrinter)
	ErrWrongMarkdown  = sentinel(KindWrongMarkdown)
	ErrNoTables       = sentinel(KindNoTables)
	ErrNoTableFound   = sentinel(KindNoTableFound)
	ErrNoWidth        = sentinel(KindNoWidth)
	ErrNoQRContent    = sentinel(KindNoQRContent)
	ErrNoQRContents   = sentinel(KindNoQRContents)
	ErrEncoding       = sentinel(KindEncoding)
)

func sentinel(k Kind) *Error {
	return &Error{Kind: k, Code: k.Code(), Reason: k.Reason()}
}

// newError builds an error of kind k with the kind's code and reason, then
// applies opts in order.
func newError(k Kind, msg string, opts []Option) *Error {
	e := &Error{Kind: k, Code: k.Code(), Reason: k.Reason(), Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Transport wraps a USB transport failure. cause is stored unchanged.
func Transport(cause error, opts ...Option) *Error {
	e := newError(KindTransport, "", nil).WithCause(cause)
	return apply(e, opts)
}

// CP437 reports a text fragment whose CP437 replacement could not be found.
func CP437(fragment string, opts ...Option) *Error {
	opts = append([]Option{WithDetailOption("fragment", fragment)}, opts...)
	return newError(KindCP437, "cp437 error: "+fragment, opts)
}

// Image wraps an image decoding failure. cause is stored unchanged.
func Image(cause error, opts ...Option) *Error {
	e := newError(KindImage, "", nil).WithCause(cause)
	return apply(e, opts)
}

// NoBulkEndpoint reports a device without a bulk OUT endpoint.
func NoBulkEndpoint(opts ...Option) *Error {
	return newError(KindNoBulkEndpoint, "", opts)
}

// NoReplacementFound reports a markup tag without a substitution value.
func NoReplacementFound(tag string, opts ...Option) *Error {
	opts = append([]Option{WithDetailOption("tag", tag)}, opts...)
	return newError(KindNoReplacement, "could not find replacement for tag {"+tag+"}", opts)
}

// NoPrintData reports an instruction that was given no print data.
func NoPrintData(opts ...Option) *Error {
	return newError(KindNoPrintData, "", opts)
}

// Printer reports a generic failure while printing.
func Printer(detail string, opts ...Option) *Error {
	opts = append([]Option{WithDetailOption("detail", detail)}, opts...)
	return newError(KindPrinter, "an error occurred while printing, "+detail, opts)
}

// WrongMarkdown reports structurally invalid markup.
func WrongMarkdown(opts ...Option) *Error {
	return newError(KindWrongMarkdown, "", opts)
}

// NoTables reports print data without any table.
func NoTables(opts ...Option) *Error {
	return newError(KindNoTables, "", opts)
}

// NoTableFound reports a table lookup by id that failed.
func NoTableFound(id string, opts ...Option) *Error {
	opts = append([]Option{WithDetailOption("table", id)}, opts...)
	return newError(KindNoTableFound, "no table was found for id {"+id+"}", opts)
}

// NoWidth reports a font without a width entry in the printer profile.
func NoWidth(opts ...Option) *Error {
	return newError(KindNoWidth, "", opts)
}

// NoQRContent reports a QR code label without content.
func NoQRContent(label string, opts ...Option) *Error {
	opts = append([]Option{WithDetailOption("label", label)}, opts...)
	return newError(KindNoQRContent, `could not find qr code content for "`+label+`"`, opts)
}

// NoQRContents reports print data without any QR content.
func NoQRContents(opts ...Option) *Error {
	return newError(KindNoQRContents, "", opts)
}

// Encoding reports a character that code page 437 cannot represent.
// cp437.Encode attaches the rune and its byte offset as details.
func Encoding(opts ...Option) *Error {
	return newError(KindEncoding, "", opts)
}

func apply(e *Error, opts []Option) *Error {
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}
