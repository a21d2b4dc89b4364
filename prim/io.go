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

package prim

import (
	"io"

	"github.com/pkg/errors"

	"github.com/TianpingHsu/sparrow-lisp/eval"
	"github.com/TianpingHsu/sparrow-lisp/value"
)

// display writes v to c.Stdout and returns Null — display is used for
// effect, not for its value. A string is written as its bare bytes, without
// the quotes the printer adds; any other value is written in its printed
// representation.
func (c *Context) display(comb value.Value) (value.Value, error) {
	v, err := one(comb, "display")
	if err != nil {
		return nil, err
	}
	if s, ok := v.(value.Str); ok {
		if _, err := io.WriteString(c.Stdout, string(s)); err != nil {
			return nil, errors.Wrap(err, "display")
		}
		return value.Null, nil
	}
	if err := value.Write(c.Stdout, v); err != nil {
		return nil, errors.Wrap(err, "display")
	}
	return value.Null, nil
}

func (c *Context) newline(comb value.Value) (value.Value, error) {
	if len(args(comb)) != 0 {
		return nil, errors.Errorf("newline: takes no arguments")
	}
	if _, err := io.WriteString(c.Stdout, "\n"); err != nil {
		return nil, errors.Wrap(err, "newline")
	}
	return value.Null, nil
}

// read returns the next value from the context's input stream, or Sentinel
// at end of input — the same sentinel-on-EOF contract the reader itself
// exposes, so (read) can be used in a loop the way the REPL uses Read.
func (c *Context) read(comb value.Value) (value.Value, error) {
	if len(args(comb)) != 0 {
		return nil, errors.Errorf("read: takes no arguments")
	}
	if c.In == nil {
		return value.Sentinel, nil
	}
	v, err := c.In.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	return v, nil
}

// evalPrim implements the eval primitive. It always evaluates in c.Global,
// never the caller's environment — SPEC_FULL.md §12 resolves this
// explicitly, since "eval in the current environment" would let a
// procedure's locals leak into code it merely happens to evaluate.
func (c *Context) evalPrim(comb value.Value) (value.Value, error) {
	v, err := one(comb, "eval")
	if err != nil {
		return nil, err
	}
	return eval.Eval(v, c.Global)
}

// load implements (load "path"), delegating to eval.LoadFile so the
// primitive and the CLI's -load flag share one implementation.
func (c *Context) load(comb value.Value) (value.Value, error) {
	v, err := one(comb, "load")
	if err != nil {
		return nil, err
	}
	name, ok := v.(value.Str)
	if !ok {
		return nil, errors.Errorf("load: expects a string path, got %s", value.TypeName(v))
	}
	if err := eval.LoadFile(string(name), c.Global); err != nil {
		return nil, err
	}
	return value.Null, nil
}
