// This file is part of sparrow-lisp.
//
// Copyright 2026 The Sparrow Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package repl drives the read-eval-print loop and the file loader on top
// of the reader and eval packages.
package repl

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/TianpingHsu/sparrow-lisp/eval"
	"github.com/TianpingHsu/sparrow-lisp/reader"
	"github.com/TianpingHsu/sparrow-lisp/value"
)

// Options configures a Run call.
type Options struct {
	Prompt string // printed before each read; empty disables prompting
	Out    io.Writer
}

// Run reads and evaluates forms from rd against g until end of input. An
// evaluation error is reported to opts.Out and the loop continues — only a
// read error (a malformed stream, not a malformed program) is fatal,
// matching the top-level behaviour of original_source/sparrow.c's main
// loop: a bad expression aborts that expression, not the session.
//
// rd is caller-constructed, rather than built from an io.Reader here, so
// that the same reader instance can be shared with the `read` primitive's
// prim.Context — both must read from a single cursor into the stream, or a
// call to (read) inside the REPL would desynchronize the two.
func Run(rd *reader.Reader, g *value.Environment, opts Options) error {
	seenDiag := 0
	for {
		if opts.Prompt != "" {
			fmt.Fprint(opts.Out, opts.Prompt)
		}

		v, err := rd.Read()
		if err != nil {
			return errors.Wrap(err, "repl")
		}
		if v == value.Sentinel {
			return nil
		}

		result, err := eval.Eval(v, g)
		if err != nil {
			fmt.Fprintf(opts.Out, "error: %v\n", err)
		} else if result != value.Null {
			fmt.Fprintln(opts.Out, value.String(result))
		}

		if diags := rd.Diagnostics(); len(diags) > seenDiag {
			for _, d := range diags[seenDiag:] {
				fmt.Fprintln(opts.Out, d.String())
			}
			seenDiag = len(diags)
		}
	}
}
