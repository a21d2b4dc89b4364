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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TianpingHsu/sparrow-lisp/env"
	"github.com/TianpingHsu/sparrow-lisp/eval"
	"github.com/TianpingHsu/sparrow-lisp/reader"
	"github.com/TianpingHsu/sparrow-lisp/value"
)

func newTestEnv(t *testing.T, stdout *bytes.Buffer, in *reader.Reader) *value.Environment {
	t.Helper()
	g := env.New(nil)
	eval.RegisterSpecialForms(g)
	Register(g, &Context{Stdout: stdout, In: in, Global: g})
	return g
}

func evalStr(t *testing.T, g *value.Environment, src string) value.Value {
	t.Helper()
	r := reader.New("test", strings.NewReader(src))
	v, err := r.Read()
	if err != nil {
		t.Fatalf("reader error: %v", err)
	}
	result, err := eval.Eval(v, g)
	if err != nil {
		t.Fatalf("eval %q: unexpected error: %v", src, err)
	}
	return result
}

func TestConsCarCdr(t *testing.T) {
	g := newTestEnv(t, &bytes.Buffer{}, nil)
	if got := value.String(evalStr(t, g, "(car (cons 1 2))")); got != "1" {
		t.Errorf("got %q", got)
	}
	if got := value.String(evalStr(t, g, "(cdr (cons 1 2))")); got != "2" {
		t.Errorf("got %q", got)
	}
}

func TestCarOfNonPairIsError(t *testing.T) {
	g := newTestEnv(t, &bytes.Buffer{}, nil)
	r := reader.New("test", strings.NewReader("(car 5)"))
	v, _ := r.Read()
	if _, err := eval.Eval(v, g); err == nil {
		t.Fatal("expected an error taking car of a non-pair")
	}
}

func TestPredicates(t *testing.T) {
	g := newTestEnv(t, &bytes.Buffer{}, nil)
	cases := map[string]string{
		"(pair? (cons 1 2))": "#t",
		"(pair? 5)":          "#f",
		"(null? (quote ()))": "#t",
		"(null? 5)":          "#f",
		"(symbol? (quote a))": "#t",
		"(symbol? 5)":        "#f",
		"(number? 5)":        "#t",
		"(number? \"x\")":    "#f",
		"(string? \"x\")":    "#t",
		"(string? 5)":        "#f",
		"(not #f)":           "#t",
		"(not 5)":            "#f",
	}
	for src, want := range cases {
		if got := value.String(evalStr(t, g, src)); got != want {
			t.Errorf("%s: got %q, want %q", src, got, want)
		}
	}
}

func TestEqualStructural(t *testing.T) {
	g := newTestEnv(t, &bytes.Buffer{}, nil)
	cases := map[string]string{
		`(equal? (quote (1 2 3)) (quote (1 2 3)))`: "#t",
		`(equal? (quote (1 2 3)) (quote (1 2 4)))`: "#f",
		`(equal? "ab" "ab")`:                       "#t",
		`(equal? (quote (1 . 2)) (quote (1 . 3)))`: "#f",
	}
	for src, want := range cases {
		if got := value.String(evalStr(t, g, src)); got != want {
			t.Errorf("%s: got %q, want %q", src, got, want)
		}
	}
}

func TestEqualDoesNotReplicateCdrSelfCompareBug(t *testing.T) {
	// (1 2) and (1 3): cars equal, cdrs differ only in their own cdr's car.
	// The documented reference bug compares cdr(x) against itself and would
	// wrongly report these as equal.
	g := newTestEnv(t, &bytes.Buffer{}, nil)
	got := value.String(evalStr(t, g, `(equal? (quote (1 2)) (quote (1 3)))`))
	if got != "#f" {
		t.Fatalf("equal? must compare cdr(x) against cdr(y): got %q, want #f", got)
	}
}

func TestArithFoldSemantics(t *testing.T) {
	g := newTestEnv(t, &bytes.Buffer{}, nil)
	cases := map[string]string{
		"(+ 1 2 3)": "6",
		"(+)":       "0",
		"(* 2 3 4)": "24",
		"(*)":       "1",
		"(- 5)":     "5",
		"(- 10 2 3)": "5",
		"(/ 5)":     "5",
		"(/ 20 2 5)": "2",
		"(mod 10 3)": "1",
		"(= 1 1 1)": "#t",
		"(= 1 1 2)": "#f",
		"(< 1 2 3)": "#t",
		"(< 1 3 2)": "#f",
	}
	for src, want := range cases {
		if got := value.String(evalStr(t, g, src)); got != want {
			t.Errorf("%s: got %q, want %q", src, got, want)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	g := newTestEnv(t, &bytes.Buffer{}, nil)
	r := reader.New("test", strings.NewReader("(/ 1 0)"))
	v, _ := r.Read()
	if _, err := eval.Eval(v, g); err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestDisplayAndNewline(t *testing.T) {
	var out bytes.Buffer
	g := newTestEnv(t, &out, nil)
	evalStr(t, g, `(display "hi")`)
	evalStr(t, g, "(newline)")
	evalStr(t, g, "(display 42)")
	if out.String() != "hi\n42" {
		t.Errorf("got %q", out.String())
	}
}

func TestReadPrimitive(t *testing.T) {
	in := reader.New("test", strings.NewReader("(1 2 3) foo"))
	g := newTestEnv(t, &bytes.Buffer{}, in)
	if got := value.String(evalStr(t, g, "(read)")); got != "(1 2 3)" {
		t.Errorf("got %q", got)
	}
	if got := value.String(evalStr(t, g, "(read)")); got != "foo" {
		t.Errorf("got %q", got)
	}
}

func TestEvalPrimitiveUsesGlobalEnv(t *testing.T) {
	g := newTestEnv(t, &bytes.Buffer{}, nil)
	evalStr(t, g, "(define x 99)")
	got := value.String(evalStr(t, g, "(eval (quote x))"))
	if got != "99" {
		t.Errorf("got %q", got)
	}
}

func TestLoadPrimitiveEvaluatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.scm")
	if err := os.WriteFile(path, []byte("(define loaded 1)\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	g := newTestEnv(t, &bytes.Buffer{}, nil)
	evalStr(t, g, `(load "`+path+`")`)
	if got := value.String(evalStr(t, g, "loaded")); got != "1" {
		t.Errorf("got %q", got)
	}
}

func TestErrorPrimitiveReturnsError(t *testing.T) {
	g := newTestEnv(t, &bytes.Buffer{}, nil)
	r := reader.New("test", strings.NewReader(`(error "boom" 1 2)`))
	v, _ := r.Read()
	_, err := eval.Eval(v, g)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error message lost the irritants: %v", err)
	}
}
