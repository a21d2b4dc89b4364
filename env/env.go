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

// Package env implements the lexical environment chain: lookup, mutation
// and extension of the linked frames that back Sparrow's scoping.
//
// An Environment's frame is a pair of parallel lists (Names, Values)
// maintained by structural coupling — every DefineInFrame conses onto both
// lists at once, so the two never drift out of sync.
package env

import (
	"github.com/TianpingHsu/sparrow-lisp/value"
)

// New creates a fresh, empty environment frame with the given parent. A nil
// parent makes it the root (global) environment.
func New(parent *value.Environment) *value.Environment {
	return &value.Environment{
		Names:  value.Null,
		Values: value.Null,
		Parent: parent,
	}
}

// Extend creates a new environment whose frame is (names, values) and whose
// parent is parent. Compound-procedure application does not use it: it
// starts from New and binds each parameter with DefineInFrame.
func Extend(names, values value.Value, parent *value.Environment) *value.Environment {
	return &value.Environment{Names: names, Values: values, Parent: parent}
}

// Lookup walks the environment chain innermost-frame-first; within a frame
// it walks names/values in parallel, comparing by pointer identity against
// the interned symbol. It returns (value, true) on a hit, or
// (value.Sentinel, false) if sym is unbound anywhere in the chain.
func Lookup(sym *value.Symbol, e *value.Environment) (value.Value, bool) {
	for f := e; f != nil; f = f.Parent {
		names, values := f.Names, f.Values
		for {
			np, ok := names.(*value.Pair)
			if !ok {
				break
			}
			if np.Car == value.Value(sym) {
				return values.(*value.Pair).Car, true
			}
			names = np.Cdr
			values = values.(*value.Pair).Cdr
		}
	}
	return value.Sentinel, false
}

// DefineInFrame binds sym to val in the innermost frame of e only. If sym is
// already present there, its value is overwritten; otherwise a new binding
// is prepended to the frame. DefineInFrame always succeeds.
func DefineInFrame(sym *value.Symbol, val value.Value, e *value.Environment) {
	names, values := e.Names, e.Values
	for {
		np, ok := names.(*value.Pair)
		if !ok {
			break
		}
		if np.Car == value.Value(sym) {
			values.(*value.Pair).Car = val
			return
		}
		names = np.Cdr
		values = values.(*value.Pair).Cdr
	}
	e.Names = value.Cons(sym, e.Names)
	e.Values = value.Cons(val, e.Values)
}

// Set mutates the existing binding of sym along the environment chain,
// innermost first, and reports whether a binding was found. SPEC_FULL.md
// §13 tightens the reference's silent-miss behaviour: callers are expected
// to treat a false return as a fatal unbound-variable error.
func Set(sym *value.Symbol, val value.Value, e *value.Environment) bool {
	for f := e; f != nil; f = f.Parent {
		names, values := f.Names, f.Values
		for {
			np, ok := names.(*value.Pair)
			if !ok {
				break
			}
			if np.Car == value.Value(sym) {
				values.(*value.Pair).Car = val
				return true
			}
			names = np.Cdr
			values = values.(*value.Pair).Cdr
		}
	}
	return false
}
