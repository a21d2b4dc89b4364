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

import (
	"fmt"
	"io"
	"strconv"

	"github.com/TianpingHsu/sparrow-lisp/internal/sxi"
)

// Write prints v in canonical S-expression syntax to w. Opaque values
// (procedures, primitives, special forms, environments, ports) print in a
// diagnostic angle-bracket form that is not intended to be re-readable.
func Write(w io.Writer, v Value) error {
	ew := sxi.NewErrWriter(w)
	write(ew, v)
	return ew.Err
}

// String renders v the same way Write does, for use in error messages and
// tests.
func String(v Value) string {
	var b []byte
	buf := &byteSliceWriter{&b}
	_ = Write(buf, v)
	return string(b)
}

type byteSliceWriter struct {
	b *[]byte
}

func (w *byteSliceWriter) Write(p []byte) (int, error) {
	*w.b = append(*w.b, p...)
	return len(p), nil
}

func write(w *sxi.ErrWriter, v Value) {
	switch t := v.(type) {
	case nullType:
		w.WriteString("()")
	case sentinelType:
		w.WriteString("<sentinel>")
	case *Bool:
		if t.b {
			w.WriteString("#t")
		} else {
			w.WriteString("#f")
		}
	case Int:
		w.WriteString(strconv.FormatInt(int64(t), 10))
	case Str:
		w.WriteString("\"")
		w.WriteString(string(t))
		w.WriteString("\"")
	case *Symbol:
		w.WriteString(t.Name)
	case *Pair:
		writePair(w, t)
	case *Procedure:
		name := t.Name
		if name == "" {
			name = "anonymous"
		}
		fmt.Fprintf(w, "<procedure:%s>", name)
	case *Primitive:
		fmt.Fprintf(w, "<primitive:%s>", t.Name)
	case *SpecialForm:
		fmt.Fprintf(w, "<special-form:%s>", t.Name)
	case *Environment:
		w.WriteString("<environment>")
	case *Port:
		fmt.Fprintf(w, "<port:%s>", t.Name)
	default:
		fmt.Fprintf(w, "<unknown:%T>", v)
	}
}

// writePair prints a list in "(a b c)" form, switching to a dotted tail
// "(a b . c)" the moment the cdr of the last cell isn't Null. It does not
// guard against cyclic structure, matching the reference's behaviour: a
// cycle built with set-car! or set-cdr! makes it print without end.
func writePair(w *sxi.ErrWriter, p *Pair) {
	w.WriteString("(")
	write(w, p.Car)
	cur := p.Cdr
	for {
		switch t := cur.(type) {
		case nullType:
			w.WriteString(")")
			return
		case *Pair:
			w.WriteString(" ")
			write(w, t.Car)
			cur = t.Cdr
		default:
			w.WriteString(" . ")
			write(w, cur)
			w.WriteString(")")
			return
		}
	}
}
