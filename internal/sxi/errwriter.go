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

// Package sxi — or sparrow-internal — holds small helpers shared by the
// printer and the REPL's debug dump that don't belong in any single
// public package.
package sxi

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and remembers the first error it produced.
// Once Err is set, every subsequent Write is a no-op that returns Err. This
// lets a deeply recursive printer call Write everywhere without an
// `if err != nil { return err }` after each call.
type ErrWriter struct {
	w   io.Writer
	Err error
}

// NewErrWriter wraps w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

// Write implements io.Writer.
func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteString writes a string through Write.
func (w *ErrWriter) WriteString(s string) {
	io.WriteString(w, s)
}
