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

// Package prim registers Sparrow's native primitive procedures — the
// closed set SPEC_FULL.md §4.6 requires the loader to provide — into a
// global environment.
package prim

import (
	"io"

	"github.com/TianpingHsu/sparrow-lisp/env"
	"github.com/TianpingHsu/sparrow-lisp/reader"
	"github.com/TianpingHsu/sparrow-lisp/value"
)

// Context bundles the I/O state that display, newline, read and eval need
// beyond their own arguments — the same role the teacher's vm.Instance
// plays for its input/output ports, but sized to Sparrow's much smaller
// I/O surface.
type Context struct {
	Stdout io.Writer
	In     *reader.Reader
	Global *value.Environment
}

// Register binds every required primitive (SPEC_FULL.md §4.6) into g,
// table-driven in the shape of the teacher's opcodeIndex construction.
func Register(g *value.Environment, ctx *Context) {
	def := func(name string, fn value.PrimitiveFunc) {
		env.DefineInFrame(value.Intern(name), &value.Primitive{Name: name, Fn: fn}, g)
	}

	def("cons", primCons)
	def("car", primCar)
	def("cdr", primCdr)
	def("pair?", primPairP)
	def("null?", primNullP)
	def("symbol?", primSymbolP)
	def("number?", primNumberP)
	def("string?", primStringP)
	def("equal?", primEqualP)
	def("not", primNot)
	def("length", primLength)
	def("error", primError)

	def("+", primAdd)
	def("-", primSub)
	def("*", primMul)
	def("/", primDiv)
	def("mod", primMod)
	def("=", primNumEq)
	def("<", primLess)

	def("display", ctx.display)
	def("newline", ctx.newline)
	def("read", ctx.read)
	def("eval", ctx.evalPrim)
	def("load", ctx.load)
}

func args(comb value.Value) []value.Value {
	return value.Slice(value.Cdr(comb))
}
