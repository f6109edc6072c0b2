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

package mapper

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/escpos"
	"dirpx.dev/escpos/apis"
	"dirpx.dev/escpos/code"
	"dirpx.dev/escpos/reason"
	"google.golang.org/grpc/codes"
)

var _ apis.Mapper = (*mapper)(nil)

func TestDefaults_CoverEveryCode(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, c := range code.All() {
		if _, ok := defaultHTTP[c]; !ok {
			t.Fatalf("no HTTP default for %q", c)
		}
		if _, ok := defaultGRPC[c]; !ok {
			t.Fatalf("no gRPC default for %q", c)
		}
	}
	check := func(c code.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(c, reason.Empty)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) = %d/%v, want %d/%v", c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(code.NotFound, 404, codes.NotFound)
	check(code.Unavailable, 503, codes.Unavailable)
	check(code.Unsupported, 422, codes.InvalidArgument)
	check(code.Code("teapot"), 500, codes.Internal)
}

func TestEveryKindResolves(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, k := range escpos.Kinds() {
		st := m.Status(k.Code(), k.Reason())
		if st.HTTP < 400 || st.GRPC == codes.OK {
			t.Fatalf("kind %s resolved to %+v", k, st)
		}
	}
}

func TestPriority_OverrideThenPrefixThenDefault(t *testing.T) {
	m, err := New(
		WithHTTPDefault(code.Unavailable, 503),
		WithHTTPPrefix(code.Unavailable, "usb.bulk", 502),
		WithHTTPOverride(code.Unavailable, 418),
		WithGRPCPrefix(code.Unavailable, "usb.bulk", codes.FailedPrecondition),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(code.Unavailable, reason.USBBulkOut)
	if st.HTTP != 418 {
		t.Fatalf("override must win; got %d", st.HTTP)
	}
	if st.GRPC != codes.FailedPrecondition {
		t.Fatalf("prefix must beat default; got %v", st.GRPC)
	}
	if got := m.GRPCStatus(code.Unavailable, reason.USBTransport); got != codes.Unavailable {
		t.Fatalf("unmatched reason must use default; got %v", got)
	}
}

func TestPrefix_LongestAndWildcard(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.NotFound, "print.data", 422),
		WithHTTPPrefix(code.NotFound, "print.data.table", 409),
		WithHTTPPrefix(code.NotFound, "*.tag", 400),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		r    reason.Reason
		want int
	}{
		{reason.Table, 409},
		{reason.QRContent, 422},
		{reason.TagReplacement, 400},
		{"print.job", 404},
	}
	for _, tt := range tests {
		if got := m.HTTPStatus(code.NotFound, tt.r); got != tt.want {
			t.Fatalf("HTTPStatus(not_found, %q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestNew_NormalizesAndRejectsPrefixes(t *testing.T) {
	m, err := New(WithHTTPPrefix(code.Unavailable, "  USB/Bulk ", http.StatusBadGateway))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.Unavailable, reason.USBBulkOut); got != http.StatusBadGateway {
		t.Fatalf("normalized prefix must match; got %d", got)
	}
	for _, bad := range []string{"", "*", "usb..bulk", "9usb"} {
		if _, err := New(WithGRPCPrefix(code.Unavailable, bad, codes.Unavailable)); err == nil {
			t.Fatalf("prefix %q must be rejected", bad)
		}
	}
}

func TestExplain(t *testing.T) {
	m, err := New(
		WithHTTPPrefix(code.Unavailable, "usb.bulk", 502),
		WithGRPCOverride(code.Internal, codes.Unknown),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := `code="unavailable" reason="usb.bulk.endpoint"
http: source=prefix pattern="usb.bulk" -> 502
grpc: source=default -> UNAVAILABLE(14)`
	if got := m.Explain(code.Unavailable, reason.USBBulkOut); got != want {
		t.Fatalf("Explain mismatch\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
	exp := m.Explain(code.Internal, reason.PrintJob)
	if !strings.Contains(exp, "grpc: source=override -> UNKNOWN(2)") {
		t.Fatalf("override not explained:\n%s", exp)
	}
	exp = m.Explain("teapot", reason.Empty)
	if !strings.Contains(exp, "http: source=fallback -> 500") {
		t.Fatalf("fallback not explained:\n%s", exp)
	}
}

func TestConcurrentStatus(t *testing.T) {
	m, err := New(WithHTTPPrefix(code.Unavailable, "usb", 503))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = m.Status(code.Unavailable, reason.USBBulkOut)
				_ = m.Status(code.NotFound, reason.Table)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkStatus_Prefix(b *testing.B) {
	m, _ := New(WithHTTPPrefix(code.Unavailable, "usb.bulk", 502))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.Unavailable, reason.USBBulkOut)
	}
}

func TestDefault(t *testing.T) {
	m := Default()
	if m != Default() {
		t.Fatal("Default must return the shared mapper")
	}
	for _, c := range code.All() {
		if got, want := m.HTTPStatus(c, ""), defaultHTTP[c]; got != want {
			t.Fatalf("%s: HTTP %d, want %d", c, got, want)
		}
		if got, want := m.GRPCStatus(c, ""), defaultGRPC[c]; got != want {
			t.Fatalf("%s: gRPC %s, want %s", c, got, want)
		}
	}
}
