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

package env

import (
	"testing"

	"github.com/TianpingHsu/sparrow-lisp/value"
)

func TestDefineAndLookup(t *testing.T) {
	g := New(nil)
	x := value.Intern("x")
	DefineInFrame(x, value.Int(10), g)
	v, ok := Lookup(x, g)
	if !ok || v != value.Value(value.Int(10)) {
		t.Fatalf("Lookup(x) = %v, %v, want 10, true", v, ok)
	}
}

func TestRedefineOverwrites(t *testing.T) {
	g := New(nil)
	x := value.Intern("x")
	DefineInFrame(x, value.Int(1), g)
	DefineInFrame(x, value.Int(2), g)
	v, _ := Lookup(x, g)
	if v != value.Value(value.Int(2)) {
		t.Fatalf("redefine did not overwrite: got %v", v)
	}
	if value.Length(g.Names) != 1 {
		t.Fatalf("redefine must not grow the frame, got %d names", value.Length(g.Names))
	}
}

func TestUnboundLookup(t *testing.T) {
	g := New(nil)
	_, ok := Lookup(value.Intern("nope"), g)
	if ok {
		t.Fatal("Lookup of an unbound symbol must report false")
	}
}

func TestShadowing(t *testing.T) {
	outer := New(nil)
	x := value.Intern("x")
	DefineInFrame(x, value.Int(1), outer)
	inner := Extend(value.Null, value.Null, outer)
	DefineInFrame(x, value.Int(2), inner)

	v, _ := Lookup(x, inner)
	if v != value.Value(value.Int(2)) {
		t.Fatalf("inner binding should shadow outer, got %v", v)
	}
	v, _ = Lookup(x, outer)
	if v != value.Value(value.Int(1)) {
		t.Fatalf("outer binding must be untouched, got %v", v)
	}
}

func TestSetMutatesAlongChain(t *testing.T) {
	outer := New(nil)
	x := value.Intern("x")
	DefineInFrame(x, value.Int(1), outer)
	inner := Extend(value.Null, value.Null, outer)

	ok := Set(x, value.Int(99), inner)
	if !ok {
		t.Fatal("Set must find the outer binding")
	}
	v, _ := Lookup(x, outer)
	if v != value.Value(value.Int(99)) {
		t.Fatalf("Set must mutate in place, got %v", v)
	}
}

func TestSetUnboundReportsMiss(t *testing.T) {
	g := New(nil)
	if Set(value.Intern("nope"), value.Int(1), g) {
		t.Fatal("Set on an unbound symbol must report false")
	}
}

func TestClosureSeesLaterTopLevelDefines(t *testing.T) {
	g := New(nil)
	y := value.Intern("y")
	// Simulate a closure capturing g before y is defined.
	captured := g
	DefineInFrame(y, value.Int(5), g)
	v, ok := Lookup(y, captured)
	if !ok || v != value.Value(value.Int(5)) {
		t.Fatalf("environment chain is by reference; later top-level defines must be visible, got %v, %v", v, ok)
	}
}
