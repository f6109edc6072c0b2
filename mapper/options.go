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
	"dirpx.dev/escpos/code"
	"google.golang.org/grpc/codes"
)

type prefixRule[T any] struct {
	prefix string
	val    T
}

// rules collects one transport's adjustments before New freezes them.
type rules[T any] struct {
	defaults  map[code.Code]T
	overrides map[code.Code]T
	prefixes  map[code.Code][]prefixRule[T]
}

func newRules[T any](defaults map[code.Code]T) rules[T] {
	r := rules[T]{
		defaults:  make(map[code.Code]T, len(defaults)),
		overrides: make(map[code.Code]T),
		prefixes:  make(map[code.Code][]prefixRule[T]),
	}
	for k, v := range defaults {
		r.defaults[k] = v
	}
	return r
}

type builder struct {
	http rules[int]
	grpc rules[codes.Code]
}

// Option adjusts the mapper being built.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status of c.
func WithHTTPDefault(c code.Code, status int) Option {
	return func(b *builder) { b.http.defaults[c] = status }
}

// WithGRPCDefault replaces the default gRPC code of c.
func WithGRPCDefault(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpc.defaults[c] = gc }
}

// WithHTTPOverride forces the HTTP status of c regardless of reason.
func WithHTTPOverride(c code.Code, status int) Option {
	return func(b *builder) { b.http.overrides[c] = status }
}

// WithGRPCOverride forces the gRPC code of c regardless of reason.
func WithGRPCOverride(c code.Code, gc codes.Code) Option {
	return func(b *builder) { b.grpc.overrides[c] = gc }
}

// WithHTTPPrefix adds a reason-prefix rule for c. The longest matching
// prefix wins; "*" matches one segment.
func WithHTTPPrefix(c code.Code, prefix string, status int) Option {
	return func(b *builder) {
		b.http.prefixes[c] = append(b.http.prefixes[c], prefixRule[int]{prefix, status})
	}
}

// WithGRPCPrefix is WithHTTPPrefix for gRPC.
func WithGRPCPrefix(c code.Code, prefix string, gc codes.Code) Option {
	return func(b *builder) {
		b.grpc.prefixes[c] = append(b.grpc.prefixes[c], prefixRule[codes.Code]{prefix, gc})
	}
}
