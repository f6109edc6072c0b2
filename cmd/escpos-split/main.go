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

// Command escpos-split shows how printer markup text is split into numeric
// and literal segments before interpretation.
//
// Usage:
//
//	escpos-split [-cp437] [-explain] [-env file] [text ...]
//
// Each argument (or each stdin line when there are none) is printed as one
// "<class>\t<segment>" line per segment. With -cp437 every segment is also
// encoded for the printer's code page and shown as hex. Failures are
// printed as "Error: <message>"; with -explain the HTTP/gRPC mapping of the
// failure is printed too. The exit status is 1 if any input failed.
//
// Environment (also read from the -env file, default ".env"):
//
//	ESCPOS_LOG_LEVEL      debug, info, warn or error
//	ESCPOS_MAPPER_CONFIG  YAML mapping policy used by -explain
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"dirpx.dev/escpos"
	"dirpx.dev/escpos/apis"
	"dirpx.dev/escpos/cp437"
	"dirpx.dev/escpos/mapper"
	"dirpx.dev/escpos/tokenize"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("escpos-split", flag.ContinueOnError)
	fset.SetOutput(stderr)
	encode := fset.Bool("cp437", false, "encode segments to code page 437")
	explain := fset.Bool("explain", false, "explain the transport status of failures")
	envFile := fset.String("env", ".env", "environment file to load")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	var m apis.Mapper
	if *explain {
		if m, err = newMapper(cfg.MapperConfig); err != nil {
			log.Error("failed to build status mapper", "path", cfg.MapperConfig, "error", err)
			return 2
		}
	}

	p := printer{out: stdout, log: log, encode: *encode, mapper: m}
	if fset.NArg() > 0 {
		for _, text := range fset.Args() {
			p.line(text)
		}
	} else {
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			p.line(sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Error("failed to read input", "error", err)
			return 1
		}
	}
	if p.failed {
		return 1
	}
	return 0
}

func newMapper(path string) (apis.Mapper, error) {
	if path == "" {
		return mapper.Default(), nil
	}
	mc, err := mapper.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return mapper.New(mc.Options()...)
}

type printer struct {
	out    io.Writer
	log    *slog.Logger
	encode bool
	mapper apis.Mapper
	failed bool
}

func (p *printer) line(text string) {
	segs := tokenize.Split(text)
	p.log.Debug("split input", "input", text, "segments", len(segs))
	for _, seg := range segs {
		class := tokenize.Classify(seg)
		if !p.encode {
			fmt.Fprintf(p.out, "%s\t%q\n", class, seg)
			continue
		}
		b, err := cp437.Encode(seg)
		if err != nil {
			p.fail(err)
			return
		}
		fmt.Fprintf(p.out, "%s\t%q\t% x\n", class, seg, b)
	}
}

func (p *printer) fail(err error) {
	p.failed = true
	p.log.Warn("segment rejected", "error", err)
	fmt.Fprintf(p.out, "Error: %v\n", err)
	var e *escpos.Error
	if p.mapper != nil && errors.As(err, &e) {
		fmt.Fprintln(p.out, p.mapper.Explain(e.Code, e.Reason))
	}
}
