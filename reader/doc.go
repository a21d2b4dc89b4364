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

// Package reader implements the Sparrow S-expression grammar:
//
//	whitespace   := ' ' | '\t' | '\r' | '\n'
//	comment      := ';' <anything up to newline or EOF>
//	string       := '"' <bytes, no escapes> '"'   (truncated at 255 bytes)
//	quote        := '\'' expr                      => (quote expr)
//	integer      := ['-'] digit+
//	empty-list   := '(' ')'
//	list         := '(' expr* ')'
//	identifier   := identStart identCont*
//	identStart   := letter | symbolAlphabet
//	identCont    := letter | digit | symbolAlphabet
//	symbolAlphabet = ~!@#$%^&*_-+\:,.<>|{}[]?=/
//
// #t and #f are recognized as the boolean singletons; every other
// '#'-prefixed identifier reads as an ordinary symbol.
package reader
