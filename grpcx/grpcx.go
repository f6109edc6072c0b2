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

// Package grpcx carries driver errors across gRPC as a status with a
// google.rpc.ErrorInfo detail, and restores them on the client side.
package grpcx

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/escpos"
	"dirpx.dev/escpos/adapter"
	"dirpx.dev/escpos/apis"
	"dirpx.dev/escpos/code"
	"dirpx.dev/escpos/mapper"
	"dirpx.dev/escpos/reason"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain of every status built here.
const Domain = "escpos.dirpx.dev"

// Metadata keys of the ErrorInfo detail. Error details are stored under
// DetailPrefix + key, rendered with fmt.
const (
	MetaCode     = "code"
	MetaReason   = "reason"
	MetaCause    = "cause"
	DetailPrefix = "detail."
)

// ToStatus converts err into a gRPC status using m for the code; a nil m
// means mapper.Default. The status
// message is the error's bare message; kind, code, reason, details and the
// first cause travel in an ErrorInfo whose Reason is the upper-case kind
// ("NO_TABLE_FOUND").
func ToStatus(m apis.Mapper, err error) *status.Status {
	if err == nil {
		return nil
	}
	if m == nil {
		m = mapper.Default()
	}
	v := adapter.ToView(err)
	st := status.New(m.GRPCStatus(code.Code(v.Code), reason.Reason(v.Reason)), v.Message)

	md := map[string]string{MetaCode: v.Code}
	if v.Reason != "" {
		md[MetaReason] = v.Reason
	}
	if len(v.Causes) > 0 {
		md[MetaCause] = v.Causes[0]
	}
	for k, val := range v.Details {
		md[DetailPrefix+k] = fmt.Sprint(val)
	}
	info := &errdetails.ErrorInfo{
		Reason:   strings.ToUpper(v.Kind),
		Domain:   Domain,
		Metadata: md,
	}
	if with, dErr := st.WithDetails(info); dErr == nil {
		return with
	}
	return st
}

// FromStatus rebuilds an *escpos.Error from a status produced by ToStatus.
// It reports false when st carries no ErrorInfo of this Domain or names an
// unknown kind. Detail values come back as strings; a wrapped cause comes
// back as an opaque error with the original text.
func FromStatus(st *status.Status) (*escpos.Error, bool) {
	if st == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		k, ok := escpos.ParseKind(strings.ToLower(info.GetReason()))
		if !ok {
			return nil, false
		}
		md := info.GetMetadata()
		e := &escpos.Error{
			Kind:    k,
			Code:    code.Code(md[MetaCode]),
			Reason:  reason.Reason(md[MetaReason]),
			Message: st.Message(),
		}
		for key, val := range md {
			if name, ok := strings.CutPrefix(key, DetailPrefix); ok {
				e = e.WithDetail(name, val)
			}
		}
		if c, ok := md[MetaCause]; ok {
			e = e.WithCause(errors.New(c))
		}
		return e, true
	}
	return nil, false
}

// FromError is FromStatus for an error returned by a gRPC call.
func FromError(err error) (*escpos.Error, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	return FromStatus(st)
}

// UnaryServerInterceptor converts handler errors that contain an
// *escpos.Error into statuses built by ToStatus. Other errors pass through.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		var e *escpos.Error
		if !errors.As(err, &e) {
			return nil, err
		}
		return nil, ToStatus(m, err).Err()
	}
}
