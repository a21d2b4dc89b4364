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

package eval

import (
	"github.com/pkg/errors"

	"github.com/TianpingHsu/sparrow-lisp/env"
	"github.com/TianpingHsu/sparrow-lisp/value"
)

// dotSymbol marks a rest parameter in a dotted parameter list, e.g.
// (lambda (a b . rest) ...).
var dotSymbol = value.Intern(".")

// applyProcedure evaluates rawArgs under callerEnv, then applies proc to the
// result. This is the path taken by ordinary combinations.
func applyProcedure(proc *value.Procedure, rawArgs value.Value, callerEnv *value.Environment) (value.Value, error) {
	vals, err := evalOperands(rawArgs, callerEnv)
	if err != nil {
		return nil, err
	}
	return applyProcedureValues(proc, vals)
}

// applyProcedureValues binds already-evaluated vals to proc's parameters in a
// fresh frame over proc's captured environment, then evaluates the body.
func applyProcedureValues(proc *value.Procedure, vals []value.Value) (value.Value, error) {
	newEnv := env.New(proc.Env)
	if err := bindParamList(proc.Params, vals, newEnv); err != nil {
		return nil, errors.Wrapf(err, "calling %s", procDisplayName(proc))
	}
	return Eval(proc.Body, newEnv)
}

func procDisplayName(p *value.Procedure) string {
	if p.Name != "" {
		return p.Name
	}
	return "anonymous procedure"
}

// bindParamList walks params and vals in lock step, defining each parameter
// symbol in newEnv. Three shapes of params are recognized, per SPEC_FULL.md
// §4.5: a proper list of symbols, a dotted list ending in a rest symbol, and
// a lone symbol standing for the whole argument list (the single-symbol
// variadic form, equivalent to "(. rest)").
//
// Open Question #1 (SPEC_FULL.md §13) is resolved here: an arity mismatch
// without a rest parameter is a hard error, not a silent truncation or
// implicit nil-fill.
func bindParamList(params value.Value, vals []value.Value, newEnv *value.Environment) error {
	if sym, ok := params.(*value.Symbol); ok {
		env.DefineInFrame(sym, value.FromSlice(vals), newEnv)
		return nil
	}

	i := 0
	for {
		p, ok := params.(*value.Pair)
		if !ok {
			if params == value.Null {
				if i != len(vals) {
					return errors.Errorf("too many arguments: expected %d, got %d", i, len(vals))
				}
				return nil
			}
			return errors.Errorf("malformed parameter list")
		}

		sym, ok := p.Car.(*value.Symbol)
		if !ok {
			return errors.Errorf("parameter is not a symbol: %s", value.String(p.Car))
		}

		if sym == dotSymbol {
			restPair, ok := p.Cdr.(*value.Pair)
			if !ok {
				return errors.Errorf("malformed rest parameter after '.'")
			}
			restSym, ok := restPair.Car.(*value.Symbol)
			if !ok {
				return errors.Errorf("rest parameter is not a symbol")
			}
			if i > len(vals) {
				return errors.Errorf("too few arguments: expected at least %d, got %d", i, len(vals))
			}
			env.DefineInFrame(restSym, value.FromSlice(vals[i:]), newEnv)
			return nil
		}

		if i >= len(vals) {
			return errors.Errorf("too few arguments: expected at least %d, got %d", i+1, len(vals))
		}
		env.DefineInFrame(sym, vals[i], newEnv)
		i++
		params = p.Cdr
	}
}
