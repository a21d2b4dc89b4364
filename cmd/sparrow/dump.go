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

package main

import (
	"io"

	"github.com/TianpingHsu/sparrow-lisp/eval"
	"github.com/TianpingHsu/sparrow-lisp/internal/sxi"
	"github.com/TianpingHsu/sparrow-lisp/value"
)

// dumpEnvironment writes every binding of the global environment's
// innermost frame to w, for -debug diagnostics on a fatal error —
// "write what the interpreter was looking at right before it died",
// adapted from stack/memory cells to name/value bindings.
func dumpEnvironment(w io.Writer) error {
	return dumpFrame(sxi.NewErrWriter(w), eval.Global)
}

func dumpFrame(w *sxi.ErrWriter, g *value.Environment) error {
	names := value.Slice(g.Names)
	values := value.Slice(g.Values)
	for i := range names {
		io.WriteString(w, value.String(names[i]))
		w.Write([]byte{'='})
		io.WriteString(w, value.String(values[i]))
		w.Write([]byte{'\n'})
	}
	return w.Err
}
