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
	"errors"
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/escpos/apis"
	"dirpx.dev/escpos/code"
	"dirpx.dev/escpos/mapper/internal/segmenttrie"
	"dirpx.dev/escpos/reason"
	"google.golang.org/grpc/codes"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
// It fails when a prefix rule is malformed.
func New(opts ...Option) (apis.Mapper, error) {
	b := &builder{
		http: newRules(defaultHTTP),
		grpc: newRules(defaultGRPC),
	}
	for _, opt := range opts {
		opt(b)
	}

	h, err := freeze(b.http, fallbackHTTP)
	if err != nil {
		return nil, fmt.Errorf("mapper: HTTP: %w", err)
	}
	g, err := freeze(b.grpc, fallbackGRPC)
	if err != nil {
		return nil, fmt.Errorf("mapper: gRPC: %w", err)
	}
	return &mapper{http: h, grpc: g}, nil
}

var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
})

// Default returns a shared mapper holding only the library defaults.
func Default() apis.Mapper { return defaultMapper() }

// table is the frozen resolution state of one transport.
type table[T any] struct {
	overrides map[code.Code]T
	tries     map[code.Code]*segmenttrie.Trie[T]
	defaults  map[code.Code]T
	fallback  T
}

// freeze copies r into a table. The builder maps are fresh per New call, so
// the copies only need to drop the builder's spare capacity.
func freeze[T any](r rules[T], fallback T) (table[T], error) {
	t := table[T]{
		overrides: clone(r.overrides),
		defaults:  clone(r.defaults),
		tries:     make(map[code.Code]*segmenttrie.Trie[T], len(r.prefixes)),
		fallback:  fallback,
	}
	for c, rs := range r.prefixes {
		if len(rs) == 0 {
			continue
		}
		tr := segmenttrie.New[T]()
		for _, rule := range rs {
			p, err := normalizePrefix(rule.prefix)
			if err != nil {
				return table[T]{}, fmt.Errorf("invalid reason-prefix %q for code %q: %w", rule.prefix, c, err)
			}
			if err := tr.Insert(p, rule.val); err != nil {
				return table[T]{}, fmt.Errorf("cannot insert prefix %q for code %q: %w", p, c, err)
			}
		}
		t.tries[c] = tr
	}
	return t, nil
}

func clone[T any](m map[code.Code]T) map[code.Code]T {
	out := make(map[code.Code]T, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// resolve returns the status for (c, r), the tier that produced it and,
// for prefix hits, the matched pattern.
func (t *table[T]) resolve(c code.Code, r reason.Reason) (val T, source, pattern string) {
	if v, ok := t.overrides[c]; ok {
		return v, "override", ""
	}
	if tr := t.tries[c]; tr != nil {
		if v, ok, pat := tr.MatchWithPattern(string(r)); ok {
			return v, "prefix", pat
		}
	}
	if v, ok := t.defaults[c]; ok {
		return v, "default", ""
	}
	return t.fallback, "fallback", ""
}

type mapper struct {
	http table[int]
	grpc table[codes.Code]
}

func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	v, _, _ := m.http.resolve(c, r)
	return v
}

func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	v, _, _ := m.grpc.resolve(c, r)
	return v
}

func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{HTTP: m.HTTPStatus(c, r), GRPC: m.GRPCStatus(c, r)}
}

// Explain renders which tier resolved each transport, e.g.
//
//	code="unavailable" reason="usb.bulk.endpoint"
//	http: source=prefix pattern="usb.bulk" -> 502
//	grpc: source=default -> UNAVAILABLE(14)
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	fmt.Fprintf(&b, "code=%q reason=%q\n", c, r)

	hv, src, pat := m.http.resolve(c, r)
	fmt.Fprintf(&b, "http: source=%s%s -> %d\n", src, patternAttr(pat), hv)

	gv, src, pat := m.grpc.resolve(c, r)
	fmt.Fprintf(&b, "grpc: source=%s%s -> %s(%d)", src, patternAttr(pat), grpcName(gv), int(gv))
	return b.String()
}

func patternAttr(p string) string {
	if p == "" {
		return ""
	}
	return fmt.Sprintf(" pattern=%q", p)
}

var (
	errEmptyPrefix    = errors.New("empty prefix")
	errWildcardPrefix = errors.New("prefix cannot consist of '*' only")
)

// normalizePrefix canonicalizes a reason prefix. Segments follow the reason
// grammar; "*" is allowed as long as one segment is concrete.
func normalizePrefix(raw string) (string, error) {
	p := reason.Normalize(raw)
	if p == "" {
		return "", errEmptyPrefix
	}
	concrete := false
	for _, seg := range strings.Split(p, ".") {
		if seg == "*" {
			continue
		}
		if !segmenttrie.ValidSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		concrete = true
	}
	if !concrete {
		return "", errWildcardPrefix
	}
	return p, nil
}
