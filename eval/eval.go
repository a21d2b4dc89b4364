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

// Package eval implements Sparrow's evaluator: dispatch on the tag of an
// expression, special-form recognition, and compound/primitive application.
package eval

import (
	"github.com/pkg/errors"

	"github.com/TianpingHsu/sparrow-lisp/env"
	"github.com/TianpingHsu/sparrow-lisp/value"
)

// Global is the single process-wide global environment that the eval
// primitive always evaluates against, per SPEC_FULL.md §4.6. It is created
// once, here, because every package that needs "the" global environment
// (the REPL, load, the eval primitive) needs to observe the exact same
// frame chain.
var Global = env.New(nil)

func init() {
	RegisterSpecialForms(Global)
	registerGlobalAliases(Global)
}

// registerGlobalAliases binds else, true and false as ordinary (mutable)
// global variables aliasing the boolean singletons, per SPEC_FULL.md §12.
// Grounded on original_source/sparrow.c's sparrow_init(), which does the
// same three define_variable calls before entering the REPL.
func registerGlobalAliases(g *value.Environment) {
	env.DefineInFrame(value.Intern("else"), value.True, g)
	env.DefineInFrame(value.Intern("true"), value.True, g)
	env.DefineInFrame(value.Intern("false"), value.False, g)
}

// Eval evaluates expr in env, dispatching on its dynamic type exactly as
// SPEC_FULL.md §4.5 specifies: self-evaluating data return themselves,
// symbols look themselves up, and pairs are combinations.
func Eval(expr value.Value, e *value.Environment) (value.Value, error) {
	switch t := expr.(type) {
	case value.Int, value.Str, *value.Bool:
		return expr, nil
	case *value.Symbol:
		v, ok := env.Lookup(t, e)
		if !ok {
			return nil, errors.Errorf("unbound variable: %s", t.Name)
		}
		return v, nil
	case *value.Pair:
		return evalCombination(t, e)
	default:
		if expr == value.Null {
			return value.Null, nil
		}
		return nil, errors.Errorf("cannot evaluate value of type %s", value.TypeName(expr))
	}
}

// evalCombination evaluates the operator of a combination and dispatches on
// its tag: special forms receive the raw combination, primitives and
// compound procedures receive left-to-right evaluated operands.
func evalCombination(comb *value.Pair, e *value.Environment) (value.Value, error) {
	op, err := Eval(comb.Car, e)
	if err != nil {
		return nil, err
	}
	switch fn := op.(type) {
	case *value.SpecialForm:
		return fn.Fn(comb, e)
	case *value.Primitive:
		args, err := evalOperands(comb.Cdr, e)
		if err != nil {
			return nil, err
		}
		combination := value.Cons(fn, value.FromSlice(args))
		return fn.Fn(combination)
	case *value.Procedure:
		return applyProcedure(fn, comb.Cdr, e)
	default:
		return nil, errors.Errorf("not applicable: %s (%s)", value.String(op), value.TypeName(op))
	}
}

// evalOperands evaluates a proper list of operand expressions left to right
// under callerEnv and returns the results as a Go slice.
func evalOperands(args value.Value, callerEnv *value.Environment) ([]value.Value, error) {
	var out []value.Value
	for {
		p, ok := args.(*value.Pair)
		if !ok {
			if args == value.Null {
				return out, nil
			}
			return nil, errors.Errorf("improper argument list")
		}
		v, err := Eval(p.Car, callerEnv)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		args = p.Cdr
	}
}

// Apply invokes f with already-evaluated args — the entry point the
// `apply` special form and the `apply` primitive contract (SPEC_FULL.md
// §4.6) both funnel into.
func Apply(f value.Value, args []value.Value) (value.Value, error) {
	switch fn := f.(type) {
	case *value.Primitive:
		combination := value.Cons(fn, value.FromSlice(args))
		return fn.Fn(combination)
	case *value.Procedure:
		return applyProcedureValues(fn, args)
	default:
		return nil, errors.Errorf("apply: not applicable: %s (%s)", value.String(f), value.TypeName(f))
	}
}
