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
	"io"
	"os"
	"strconv"
	"strings"

	"dirpx.dev/escpos/code"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// Config is a mapping policy as stored in YAML:
//
//	defaults:
//	  - code: missing
//	    http: 422
//	    grpc: FAILED_PRECONDITION
//	overrides:
//	  - code: internal
//	    http: 502
//	prefixes:
//	  - code: unavailable
//	    reason: usb.bulk
//	    http: 502
//	    grpc: 14
//
// An absent (zero) http or grpc value leaves that transport untouched. Errors
// never map to success, so grpc OK (0) is rejected at load time rather than
// silently read as absent.
type Config struct {
	Defaults  []Rule `yaml:"defaults"`
	Overrides []Rule `yaml:"overrides"`
	Prefixes  []Rule `yaml:"prefixes"`
}

// Rule is one entry of a Config section. Reason is only read for prefixes.
type Rule struct {
	Code   code.Code `yaml:"code"`
	Reason string    `yaml:"reason,omitempty"`
	HTTP   int       `yaml:"http,omitempty"`
	GRPC   GRPCCode  `yaml:"grpc,omitempty"`
}

// GRPCCode is a gRPC status code that unmarshals from either its number or
// its upper-case name ("UNAVAILABLE").
type GRPCCode codes.Code

var grpcNames = [...]string{
	codes.OK:                 "OK",
	codes.Canceled:           "CANCELLED",
	codes.Unknown:            "UNKNOWN",
	codes.InvalidArgument:    "INVALID_ARGUMENT",
	codes.DeadlineExceeded:   "DEADLINE_EXCEEDED",
	codes.NotFound:           "NOT_FOUND",
	codes.AlreadyExists:      "ALREADY_EXISTS",
	codes.PermissionDenied:   "PERMISSION_DENIED",
	codes.ResourceExhausted:  "RESOURCE_EXHAUSTED",
	codes.FailedPrecondition: "FAILED_PRECONDITION",
	codes.Aborted:            "ABORTED",
	codes.OutOfRange:         "OUT_OF_RANGE",
	codes.Unimplemented:      "UNIMPLEMENTED",
	codes.Internal:           "INTERNAL",
	codes.Unavailable:        "UNAVAILABLE",
	codes.DataLoss:           "DATA_LOSS",
	codes.Unauthenticated:    "UNAUTHENTICATED",
}

func grpcName(c codes.Code) string {
	if int(c) < len(grpcNames) {
		return grpcNames[c]
	}
	return "CODE_" + strconv.Itoa(int(c))
}

// ErrGRPCCode is returned for grpc values that are neither a known name nor
// a number in range, and for OK.
var ErrGRPCCode = errors.New("mapper: invalid gRPC code")

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GRPCCode) UnmarshalYAML(n *yaml.Node) error {
	s := strings.TrimSpace(n.Value)
	if v, err := strconv.Atoi(s); err == nil {
		if v <= int(codes.OK) || v >= len(grpcNames) {
			return fmt.Errorf("%w: %d", ErrGRPCCode, v)
		}
		*g = GRPCCode(v)
		return nil
	}
	name := strings.ToUpper(s)
	for i, known := range grpcNames {
		if known == name && codes.Code(i) != codes.OK {
			*g = GRPCCode(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrGRPCCode, s)
}

// LoadConfig decodes a YAML policy. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("mapper: decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML policy from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("mapper: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Options turns the policy into options for New.
func (c Config) Options() []Option {
	var opts []Option
	for _, r := range c.Defaults {
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPDefault(r.Code, r.HTTP))
		}
		if r.GRPC != 0 {
			opts = append(opts, WithGRPCDefault(r.Code, codes.Code(r.GRPC)))
		}
	}
	for _, r := range c.Overrides {
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPOverride(r.Code, r.HTTP))
		}
		if r.GRPC != 0 {
			opts = append(opts, WithGRPCOverride(r.Code, codes.Code(r.GRPC)))
		}
	}
	for _, r := range c.Prefixes {
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPPrefix(r.Code, r.Reason, r.HTTP))
		}
		if r.GRPC != 0 {
			opts = append(opts, WithGRPCPrefix(r.Code, r.Reason, codes.Code(r.GRPC)))
		}
	}
	return opts
}
