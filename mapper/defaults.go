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

	"dirpx.dev/escpos/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP maps every code declared in package code. Each kind's code is
// listed in escpos/kind.go.
var defaultHTTP = map[code.Code]int{
	code.Internal:    http.StatusInternalServerError, // print job broke half-way
	code.Invalid:     http.StatusBadRequest,          // bad markup, bad image bytes
	code.Missing:     http.StatusBadRequest,          // print data lacks tables, QR contents, widths
	code.NotFound:    http.StatusNotFound,            // tag, table or QR label lookup failed
	code.Unsupported: http.StatusUnprocessableEntity, // text the code page cannot carry
	code.Unavailable: http.StatusServiceUnavailable,  // printer unreachable over USB
}

var defaultGRPC = map[code.Code]codes.Code{
	code.Internal:    codes.Internal,
	code.Invalid:     codes.InvalidArgument,
	code.Missing:     codes.InvalidArgument,
	code.NotFound:    codes.NotFound,
	code.Unsupported: codes.InvalidArgument,
	code.Unavailable: codes.Unavailable,
}

const (
	fallbackHTTP = http.StatusInternalServerError
	fallbackGRPC = codes.Internal
)
