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
	"dirpx.dev/escpos/code"
	"dirpx.dev/escpos/reason"
)

// Kind identifies one variant of the driver's closed error taxonomy.
//
// The set is exhaustive for every failure source the driver integrates:
// USB transport, CP437 transliteration, image decoding, print data lookup,
// markup parsing and font metrics. A new failure source gets a new Kind;
// it never borrows an unrelated one.
type Kind uint8

const (
	// KindUnknown is the zero Kind. No constructor produces it.
	KindUnknown Kind = iota

	KindTransport      // wraps a USB/libusb error
	KindCP437          // a replaced sequence could not be transliterated
	KindImage          // wraps an image decoding error
	KindNoBulkEndpoint // the device has no bulk OUT endpoint
	KindNoReplacement  // a markup tag has no replacement value
	KindNoPrintData    // the instruction needs print data and got none
	KindPrinter        // generic failure while printing
	KindWrongMarkdown  // the markup is structurally wrong
	KindNoTables       // print data holds no tables at all
	KindNoTableFound   // no table for the requested id
	KindNoWidth        // the selected font has no width entry
	KindNoQRContent    // no QR content for the requested label
	KindNoQRContents   // print data holds no QR contents at all
	KindEncoding       // a character has no CP437 representation

	kindCount
)

type kindInfo struct {
	name    string
	code    code.Code
	reason  reason.Reason
	message string
	wraps   bool
}

var kindTable = [kindCount]kindInfo{
	KindUnknown:        {"unknown", code.Internal, reason.Empty, "unknown escpos error", false},
	KindTransport:      {"transport", code.Unavailable, reason.USBTransport, "libusb error", true},
	KindCP437:          {"cp437", code.Invalid, reason.CP437Replace, "cp437 error", false},
	KindImage:          {"image", code.Invalid, reason.ImageDecode, "image error", true},
	KindNoBulkEndpoint: {"no_bulk_endpoint", code.Unavailable, reason.USBBulkOut, "no bulk endpoint could be found", false},
	KindNoReplacement:  {"no_replacement_found", code.NotFound, reason.TagReplacement, "could not find replacement for tag", false},
	KindNoPrintData:    {"no_print_data", code.Missing, reason.PrintData, "print data must be supplied for this instruction", false},
	KindPrinter:        {"printer", code.Internal, reason.PrintJob, "an error occurred while printing", false},
	KindWrongMarkdown:  {"wrong_markdown", code.Invalid, reason.Markup, "incorrect markdown structure", false},
	KindNoTables:       {"no_tables", code.Missing, reason.Tables, "not a single table was found in the print data", false},
	KindNoTableFound:   {"no_table_found", code.NotFound, reason.Table, "no table was found for id", false},
	KindNoWidth:        {"no_width", code.Missing, reason.FontWidth, "no width was found for the selected font", false},
	KindNoQRContent:    {"no_qr_content", code.NotFound, reason.QRContent, "could not find qr code content", false},
	KindNoQRContents:   {"no_qr_contents", code.Missing, reason.QRContents, "could not find qr contents", false},
	KindEncoding:       {"encoding", code.Unsupported, reason.CP437Encode, "an unsupported utf-8 character was found when passing to cp437", false},
}

func (k Kind) info() kindInfo {
	if k >= kindCount {
		return kindTable[KindUnknown]
	}
	return kindTable[k]
}

// Kinds returns every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindUnknown + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind looks a Kind up by its String form.
func ParseKind(s string) (Kind, bool) {
	for k := KindUnknown + 1; k < kindCount; k++ {
		if kindTable[k].name == s {
			return k, true
		}
	}
	return KindUnknown, false
}

// Valid reports whether k is a member of the taxonomy.
func (k Kind) Valid() bool { return k > KindUnknown && k < kindCount }

// Wraps reports whether errors of this kind carry a lower-level cause.
// All other kinds are leaf errors.
func (k Kind) Wraps() bool { return k.info().wraps }

// Code is the default code for errors of this kind.
func (k Kind) Code() code.Code { return k.info().code }

// Reason is the default reason for errors of this kind.
func (k Kind) Reason() reason.Reason { return k.info().reason }

// String returns the snake_case name of k, "unknown" for invalid values.
func (k Kind) String() string { return k.info().name }
