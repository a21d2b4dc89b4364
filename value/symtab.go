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

// symTableSize is the number of hash buckets in the symbol table. The
// reference used 8191 and that table size produced a real collision between
// "#f" and "if" — two spellings that hash to the same bucket with nothing
// to break the tie once one of them took the slot. 10009 is the reference's
// own fix; it is kept here along with the chaining this implementation adds
// so that *any* future collision, not just this one, resolves correctly.
const symTableSize = 10009

// symTable is a separately-chained hash table keyed by symbol text. Intern
// is the only public entry point; bucket collisions are resolved by
// byte-wise comparison, never by hash equality alone.
type symTable struct {
	buckets [symTableSize][]*Symbol
}

// globalSymbols is the single process-wide symbol table. Symbol identity is
// shared-state per SPEC_FULL.md §5 and is never reset.
var globalSymbols symTable

// djb2 hashes s the way the reference does: h = 5381, then h = h*33 + c for
// every byte.
func djb2(s string) uint64 {
	var h uint64 = 5381
	for i := 0; i < len(s); i++ {
		h = h*33 + uint64(s[i])
	}
	return h
}

// Intern returns the unique *Symbol for the given text, creating it on first
// use. Calling Intern twice with the same text always returns the identical
// pointer.
func Intern(name string) *Symbol {
	return globalSymbols.intern(name)
}

func (t *symTable) intern(name string) *Symbol {
	idx := djb2(name) % symTableSize
	chain := t.buckets[idx]
	for _, s := range chain {
		if s.Name == name {
			return s
		}
	}
	s := &Symbol{Name: name}
	t.buckets[idx] = append(chain, s)
	return s
}
