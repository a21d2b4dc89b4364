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
	"github.com/pkg/errors"

	"github.com/TianpingHsu/sparrow-lisp/value"
)

// toInts demands that every element of vs is an Int, per SPEC_FULL.md §4.6's
// numeric primitives being integer-only — there is no Sparrow float variant.
func toInts(vs []value.Value) ([]value.Int, error) {
	out := make([]value.Int, len(vs))
	for i, v := range vs {
		n, ok := v.(value.Int)
		if !ok {
			return nil, errors.Errorf("not a number: %s", value.String(v))
		}
		out[i] = n
	}
	return out, nil
}

// primAdd implements the variadic, associative +. Zero arguments yield the
// additive identity.
func primAdd(comb value.Value) (value.Value, error) {
	ints, err := toInts(args(comb))
	if err != nil {
		return nil, err
	}
	var sum value.Int
	for _, n := range ints {
		sum += n
	}
	return sum, nil
}

// primMul implements the variadic, associative *. Zero arguments yield the
// multiplicative identity.
func primMul(comb value.Value) (value.Value, error) {
	ints, err := toInts(args(comb))
	if err != nil {
		return nil, err
	}
	acc := value.Int(1)
	for _, n := range ints {
		acc *= n
	}
	return acc, nil
}

// primSub implements -. Per SPEC_FULL.md §8, a single argument is a fold
// seeded by that argument — (- a) evaluates to a, not -a.
func primSub(comb value.Value) (value.Value, error) {
	ints, err := toInts(args(comb))
	if err != nil {
		return nil, err
	}
	if len(ints) == 0 {
		return nil, errors.Errorf("-: requires at least one argument")
	}
	acc := ints[0]
	for _, n := range ints[1:] {
		acc -= n
	}
	return acc, nil
}

// primDiv implements /, folding left to right. A single argument is its own
// result, matching -'s fold convention.
func primDiv(comb value.Value) (value.Value, error) {
	ints, err := toInts(args(comb))
	if err != nil {
		return nil, err
	}
	if len(ints) == 0 {
		return nil, errors.Errorf("/: requires at least one argument")
	}
	acc := ints[0]
	for _, n := range ints[1:] {
		if n == 0 {
			return nil, errors.Errorf("/: division by zero")
		}
		acc /= n
	}
	return acc, nil
}

// primMod implements mod, folding left to right like / and -.
func primMod(comb value.Value) (value.Value, error) {
	ints, err := toInts(args(comb))
	if err != nil {
		return nil, err
	}
	if len(ints) == 0 {
		return nil, errors.Errorf("mod: requires at least one argument")
	}
	acc := ints[0]
	for _, n := range ints[1:] {
		if n == 0 {
			return nil, errors.Errorf("mod: division by zero")
		}
		acc %= n
	}
	return acc, nil
}

// primNumEq implements =, true iff every argument is numerically equal.
func primNumEq(comb value.Value) (value.Value, error) {
	ints, err := toInts(args(comb))
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(ints); i++ {
		if ints[i-1] != ints[i] {
			return value.False, nil
		}
	}
	return value.True, nil
}

// primLess implements <, true iff the arguments are strictly increasing.
func primLess(comb value.Value) (value.Value, error) {
	ints, err := toInts(args(comb))
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(ints); i++ {
		if !(ints[i-1] < ints[i]) {
			return value.False, nil
		}
	}
	return value.True, nil
}
