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

package value

import "testing"

func TestPrintAtoms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{True, "#t"},
		{False, "#f"},
		{Int(42), "42"},
		{Int(-7), "-7"},
		{Str("hi"), "\"hi\""},
		{Intern("foo"), "foo"},
		{Null, "()"},
	}
	for _, c := range cases {
		if got := String(c.v); got != c.want {
			t.Errorf("String(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestPrintProperList(t *testing.T) {
	l := List(Int(1), Int(2), Int(3))
	if got := String(l); got != "(1 2 3)" {
		t.Errorf("String(list) = %q, want %q", got, "(1 2 3)")
	}
}

func TestPrintDottedPair(t *testing.T) {
	p := Cons(Int(9), Int(2))
	if got := String(p); got != "(9 . 2)" {
		t.Errorf("String(dotted pair) = %q, want %q", got, "(9 . 2)")
	}
}

func TestPrintNestedList(t *testing.T) {
	inner := List(Int(2), Int(3))
	outer := Cons(Int(1), Cons(inner, Null))
	if got := String(outer); got != "(1 (2 3))" {
		t.Errorf("String(nested) = %q, want %q", got, "(1 (2 3))")
	}
}

func TestPrintOpaqueValues(t *testing.T) {
	proc := &Procedure{Name: "square"}
	if got := String(proc); got != "<procedure:square>" {
		t.Errorf("String(proc) = %q, want %q", got, "<procedure:square>")
	}
	prim := &Primitive{Name: "cons"}
	if got := String(prim); got != "<primitive:cons>" {
		t.Errorf("String(prim) = %q, want %q", got, "<primitive:cons>")
	}
}
