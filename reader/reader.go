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

// Package reader turns a character stream into Sparrow values: the bridge
// between text and the heap that the value package defines.
package reader

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/TianpingHsu/sparrow-lisp/value"
)

// symbolAlphabet is the fixed punctuation set identifiers may start with or
// contain, per SPEC_FULL.md §4.3.
const symbolAlphabet = `~!@#$%^&*_-+\:,.<>|{}[]?=/`

const (
	maxStringBytes = 255
	maxIdentBytes  = 127
)

// Diagnostic is a non-fatal report produced while reading: an oversize
// token, an unterminated string, or a stray character the reader chose to
// skip. The reader keeps going after every Diagnostic.
type Diagnostic struct {
	Pos scanner.Position
	Msg string
}

func (d Diagnostic) String() string {
	return d.Pos.String() + ": " + d.Msg
}

// Reader pulls runes from an io.Reader one byte at a time with a single
// byte of lookahead, exactly as the grammar in SPEC_FULL.md §4.3 requires.
type Reader struct {
	r    *bufio.Reader
	pos  scanner.Position
	diag []Diagnostic
}

// New wraps r. name is used only to tag diagnostics (e.g. a file name).
func New(name string, r io.Reader) *Reader {
	rd := &Reader{r: bufio.NewReader(r)}
	rd.pos = scanner.Position{Filename: name, Line: 1, Column: 1}
	return rd
}

// Diagnostics returns every non-fatal diagnostic collected so far.
func (r *Reader) Diagnostics() []Diagnostic { return r.diag }

func (r *Reader) warn(msg string) {
	r.diag = append(r.diag, Diagnostic{Pos: r.pos, Msg: msg})
}

// nextByte consumes and returns the next byte, advancing position tracking.
// It reports io.EOF exactly when the stream is exhausted.
func (r *Reader) nextByte() (byte, error) {
	c, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if c == '\n' {
		r.pos.Line++
		r.pos.Column = 1
	} else {
		r.pos.Column++
	}
	return c, nil
}

// peekByte returns the next byte without consuming it. ok is false at EOF.
func (r *Reader) peekByte() (c byte, ok bool) {
	b, err := r.r.Peek(1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }

func isSymbolByte(c byte) bool {
	return strings.IndexByte(symbolAlphabet, c) >= 0
}

func isIdentStart(c byte) bool { return isAlpha(c) || isSymbolByte(c) }
func isIdentCont(c byte) bool  { return isAlnum(c) || isSymbolByte(c) }

// Read reads and returns a single value from the stream. At end of input, or
// when the matching close paren of an enclosing list is reached, it returns
// the Sentinel value with a nil error — callers distinguish the two cases by
// context exactly as SPEC_FULL.md §13 describes: a list reader only ever
// expects end-of-list, and a top-level loader or REPL only ever expects
// end-of-input.
func (r *Reader) Read() (value.Value, error) {
	for {
		c, err := r.nextByte()
		if err == io.EOF {
			return value.Sentinel, nil
		}
		if err != nil {
			return nil, err
		}

		switch {
		case isWhitespace(c):
			continue
		case c == ';':
			r.skipLineComment()
			continue
		case c == '"':
			return r.readString()
		case c == '\'':
			return r.readQuote()
		case isDigit(c) || (c == '-' && r.peekIsDigit()):
			return r.readInteger(c)
		case c == '(':
			if next, ok := r.peekByte(); ok && next == ')' {
				r.nextByte()
				return value.Null, nil
			}
			return r.readList()
		case c == ')':
			return value.Sentinel, nil
		case isIdentStart(c):
			return r.readIdentifier(c)
		default:
			r.warn("skipping unexpected character " + strconv.QuoteRune(rune(c)))
			continue
		}
	}
}

func (r *Reader) peekIsDigit() bool {
	c, ok := r.peekByte()
	return ok && isDigit(c)
}

func (r *Reader) skipLineComment() {
	for {
		c, err := r.nextByte()
		if err != nil || c == '\n' {
			return
		}
	}
}

func (r *Reader) readString() (value.Value, error) {
	var buf []byte
	truncated := false
	for {
		c, err := r.nextByte()
		if err == io.EOF {
			r.warn("unterminated string literal")
			break
		}
		if err != nil {
			return nil, err
		}
		if c == '"' {
			break
		}
		if len(buf) >= maxStringBytes {
			if !truncated {
				r.warn("string literal too long, truncated at 255 bytes")
				truncated = true
			}
			continue
		}
		buf = append(buf, c)
	}
	return value.Str(string(buf)), nil
}

func (r *Reader) readQuote() (value.Value, error) {
	quoted, err := r.Read()
	if err != nil {
		return nil, err
	}
	if quoted == value.Sentinel {
		r.warn("quote at end of input, ignored")
		return value.Sentinel, nil
	}
	return value.List(value.Intern("quote"), quoted), nil
}

func (r *Reader) readInteger(first byte) (value.Value, error) {
	neg := first == '-'
	var buf []byte
	if !neg {
		buf = append(buf, first)
	}
	for {
		c, ok := r.peekByte()
		if !ok || !isDigit(c) {
			break
		}
		r.nextByte()
		buf = append(buf, c)
	}
	n, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		return nil, err
	}
	if neg {
		n = -n
	}
	return value.Int(n), nil
}

func (r *Reader) readList() (value.Value, error) {
	var items []value.Value
	for {
		v, err := r.Read()
		if err != nil {
			return nil, err
		}
		if v == value.Sentinel {
			return value.FromSlice(items), nil
		}
		items = append(items, v)
	}
}

func (r *Reader) readIdentifier(first byte) (value.Value, error) {
	buf := []byte{first}
	warned := false
	for {
		c, ok := r.peekByte()
		if !ok || !isIdentCont(c) {
			break
		}
		r.nextByte()
		if len(buf) >= maxIdentBytes {
			if !warned {
				r.warn("identifier too long, truncated at 127 bytes")
				warned = true
			}
			continue
		}
		buf = append(buf, c)
	}
	name := string(buf)
	switch name {
	case "#t":
		return value.True, nil
	case "#f":
		return value.False, nil
	}
	return value.Intern(name), nil
}
