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
	"strings"

	"github.com/pkg/errors"

	"github.com/TianpingHsu/sparrow-lisp/value"
)

func one(comb value.Value, who string) (value.Value, error) {
	a := args(comb)
	if len(a) != 1 {
		return nil, errors.Errorf("%s: requires exactly one argument", who)
	}
	return a[0], nil
}

func primCons(comb value.Value) (value.Value, error) {
	a := args(comb)
	if len(a) != 2 {
		return nil, errors.Errorf("cons: requires exactly two arguments")
	}
	return value.Cons(a[0], a[1]), nil
}

func primCar(comb value.Value) (value.Value, error) {
	v, err := one(comb, "car")
	if err != nil {
		return nil, err
	}
	p, ok := v.(*value.Pair)
	if !ok {
		return nil, errors.Errorf("car: not a pair (%s)", value.TypeName(v))
	}
	return p.Car, nil
}

func primCdr(comb value.Value) (value.Value, error) {
	v, err := one(comb, "cdr")
	if err != nil {
		return nil, err
	}
	p, ok := v.(*value.Pair)
	if !ok {
		return nil, errors.Errorf("cdr: not a pair (%s)", value.TypeName(v))
	}
	return p.Cdr, nil
}

func primPairP(comb value.Value) (value.Value, error) {
	v, err := one(comb, "pair?")
	if err != nil {
		return nil, err
	}
	return value.MakeBool(value.IsPair(v)), nil
}

func primNullP(comb value.Value) (value.Value, error) {
	v, err := one(comb, "null?")
	if err != nil {
		return nil, err
	}
	return value.MakeBool(v == value.Null), nil
}

func primSymbolP(comb value.Value) (value.Value, error) {
	v, err := one(comb, "symbol?")
	if err != nil {
		return nil, err
	}
	_, ok := v.(*value.Symbol)
	return value.MakeBool(ok), nil
}

func primNumberP(comb value.Value) (value.Value, error) {
	v, err := one(comb, "number?")
	if err != nil {
		return nil, err
	}
	_, ok := v.(value.Int)
	return value.MakeBool(ok), nil
}

func primStringP(comb value.Value) (value.Value, error) {
	v, err := one(comb, "string?")
	if err != nil {
		return nil, err
	}
	_, ok := v.(value.Str)
	return value.MakeBool(ok), nil
}

func primNot(comb value.Value) (value.Value, error) {
	v, err := one(comb, "not")
	if err != nil {
		return nil, err
	}
	return value.MakeBool(value.IsFalse(v)), nil
}

// primLength mirrors value.Length but reports an improper list as an error
// instead of panicking — primitives run on user-supplied data and must never
// crash the interpreter.
func primLength(comb value.Value) (value.Value, error) {
	v, err := one(comb, "length")
	if err != nil {
		return nil, err
	}
	n := 0
	for {
		switch t := v.(type) {
		case *value.Pair:
			n++
			v = t.Cdr
		default:
			if v == value.Null {
				return value.Int(n), nil
			}
			return nil, errors.Errorf("length: improper list")
		}
	}
}

// equal implements structural equality. This is the one place
// SPEC_FULL.md §9 calls out the reference's documented bug
// (is_equal(cdr(x), cdr(x)), comparing the left cdr against itself) and
// requires it not be replicated: the recursive call below compares
// x.Cdr against y.Cdr.
func equal(a, b value.Value) bool {
	switch x := a.(type) {
	case *value.Pair:
		y, ok := b.(*value.Pair)
		if !ok {
			return false
		}
		return equal(x.Car, y.Car) && equal(x.Cdr, y.Cdr)
	case value.Int:
		y, ok := b.(value.Int)
		return ok && x == y
	case value.Str:
		y, ok := b.(value.Str)
		return ok && x == y
	default:
		return a == b
	}
}

func primEqualP(comb value.Value) (value.Value, error) {
	a := args(comb)
	if len(a) != 2 {
		return nil, errors.Errorf("equal?: requires exactly two arguments")
	}
	return value.MakeBool(equal(a[0], a[1])), nil
}

// primError implements the error primitive: its arguments are printed
// space-separated and raised as a fatal Go error, mirroring the reference's
// prim_error "print message and die" behaviour.
func primError(comb value.Value) (value.Value, error) {
	a := args(comb)
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = value.String(v)
	}
	return nil, errors.New(strings.Join(parts, " "))
}
