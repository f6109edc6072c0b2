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

// Package httpx writes driver errors as JSON HTTP responses for print
// servers.
package httpx

import (
	"fmt"
	"net/http"

	"dirpx.dev/escpos/adapter"
	"dirpx.dev/escpos/apis"
	"dirpx.dev/escpos/code"
	"dirpx.dev/escpos/mapper"
	"dirpx.dev/escpos/reason"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Meta is request-scoped context added to the response body. Empty fields
// are omitted.
type Meta struct {
	Correlation string
	TraceID     string
}

// Writer turns errors into HTTP responses, resolving the status through
// Mapper. A nil Mapper uses mapper.Default, so the zero Writer is usable.
type Writer struct {
	Mapper apis.Mapper
}

// Write sends err as
//
//	{"error": {"kind": ..., "code": ..., "reason": ..., "message": ...,
//	           "details": {...}, "causes": [...]}, "correlation": ...}
//
// with the status the Mapper assigns to the error's code and reason. A nil
// err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	v := adapter.ToView(err)
	m := w.Mapper
	if m == nil {
		m = mapper.Default()
	}
	st := m.Status(code.Code(v.Code), reason.Reason(v.Reason))

	body, mErr := encode(v, meta)
	if mErr != nil {
		// The view only holds strings and sanitized details, so this is not
		// expected; still answer with the resolved status.
		http.Error(rw, v.Message, st.HTTP)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handler adapts h so that a returned error is written with Write. The
// X-Request-Id header, when present, is echoed as correlation.
func (w Writer) Handler(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, err, Meta{Correlation: r.Header.Get("X-Request-Id")})
		}
	})
}

func encode(v apis.ErrorView, meta Meta) ([]byte, error) {
	e := map[string]*structpb.Value{
		"kind":    structpb.NewStringValue(v.Kind),
		"code":    structpb.NewStringValue(v.Code),
		"message": structpb.NewStringValue(v.Message),
	}
	if v.Reason != "" {
		e["reason"] = structpb.NewStringValue(v.Reason)
	}
	if len(v.Details) > 0 {
		d := make(map[string]*structpb.Value, len(v.Details))
		for k, val := range v.Details {
			d[k] = detailValue(val)
		}
		e["details"] = structpb.NewStructValue(&structpb.Struct{Fields: d})
	}
	if len(v.Causes) > 0 {
		causes := make([]*structpb.Value, len(v.Causes))
		for i, c := range v.Causes {
			causes[i] = structpb.NewStringValue(c)
		}
		e["causes"] = structpb.NewListValue(&structpb.ListValue{Values: causes})
	}

	root := map[string]*structpb.Value{
		"error": structpb.NewStructValue(&structpb.Struct{Fields: e}),
	}
	if meta.Correlation != "" {
		root["correlation"] = structpb.NewStringValue(meta.Correlation)
	}
	if meta.TraceID != "" {
		root["trace_id"] = structpb.NewStringValue(meta.TraceID)
	}
	return protojson.Marshal(&structpb.Struct{Fields: root})
}

// detailValue converts a detail to a proto value, rendering types that
// structpb does not know with fmt.
func detailValue(v any) *structpb.Value {
	if pv, err := structpb.NewValue(v); err == nil {
		return pv
	}
	return structpb.NewStringValue(fmt.Sprint(v))
}
