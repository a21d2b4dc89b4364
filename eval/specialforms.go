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

var lambdaSymbol = value.Intern("lambda")
var beginSymbol = value.Intern("begin")

// RegisterSpecialForms binds every special form recognized by the
// evaluator (SPEC_FULL.md §4.5) into g. Called once for Global; the REPL
// and loader never need to call it themselves.
func RegisterSpecialForms(g *value.Environment) {
	forms := []struct {
		name string
		fn   value.SpecialFormFunc
	}{
		{"quote", sfQuote},
		{"if", sfIf},
		{"define", sfDefine},
		{"lambda", sfLambda},
		{"cond", sfCond},
		{"begin", sfBegin},
		{"let", sfLet},
		{"set!", sfSet},
		{"set-car!", sfSetCar},
		{"set-cdr!", sfSetCdr},
		{"apply", sfApply},
	}
	for _, f := range forms {
		sym := value.Intern(f.name)
		env.DefineInFrame(sym, &value.SpecialForm{Name: f.name, Fn: f.fn}, g)
	}
}

// wrapBegin turns a list of body forms into a single expression: the form
// itself if there is exactly one, otherwise a (begin ...) wrapping of the
// whole sequence. Used by define, lambda and let to support multi-expression
// bodies.
func wrapBegin(bodyForms value.Value) value.Value {
	if p, ok := bodyForms.(*value.Pair); ok && p.Cdr == value.Null {
		return p.Car
	}
	return value.Cons(beginSymbol, bodyForms)
}

// sfQuote implements (quote datum) => datum, unevaluated.
func sfQuote(comb value.Value, _ *value.Environment) (value.Value, error) {
	return value.Cadr(comb), nil
}

// sfIf implements (if P C A). The alternative is optional; its absence
// evaluates to Null, matching the "unspecified value" convention used
// elsewhere for forms evaluated for effect.
func sfIf(comb value.Value, e *value.Environment) (value.Value, error) {
	args := value.Cdr(comb)
	predicate := value.Car(args)
	rest := value.Cdr(args)
	consequent := value.Car(rest)
	altRest := value.Cdr(rest)

	test, err := Eval(predicate, e)
	if err != nil {
		return nil, err
	}
	if value.IsFalse(test) {
		if p, ok := altRest.(*value.Pair); ok {
			return Eval(p.Car, e)
		}
		return value.Null, nil
	}
	return Eval(consequent, e)
}

// sfDefine implements both the variable form (define name expr) and the
// procedure-shorthand form (define (name . params) body...). Both forms
// evaluate to Null, so a define at the REPL prints nothing.
func sfDefine(comb value.Value, e *value.Environment) (value.Value, error) {
	args := value.Cdr(comb)
	target := value.Car(args)

	switch t := target.(type) {
	case *value.Symbol:
		val, err := Eval(value.Cadr(args), e)
		if err != nil {
			return nil, err
		}
		env.DefineInFrame(t, val, e)
		return value.Null, nil
	case *value.Pair:
		name, ok := t.Car.(*value.Symbol)
		if !ok {
			return nil, errors.Errorf("define: procedure name must be a symbol")
		}
		proc := &value.Procedure{
			Name:   name.Name,
			Params: t.Cdr,
			Body:   wrapBegin(value.Cdr(args)),
			Env:    e,
		}
		env.DefineInFrame(name, proc, e)
		return value.Null, nil
	default:
		return nil, errors.Errorf("define: malformed target %s", value.String(target))
	}
}

// sfLambda implements (lambda params body...). params may be a proper list
// of symbols, a dotted list ending in a rest symbol, or a lone symbol — all
// three are resolved later, at application time, by bindParamList.
func sfLambda(comb value.Value, e *value.Environment) (value.Value, error) {
	args := value.Cdr(comb)
	return &value.Procedure{
		Params: value.Car(args),
		Body:   wrapBegin(value.Cdr(args)),
		Env:    e,
	}, nil
}

// sfCond implements (cond (test expr) ... ), evaluating clauses in order and
// returning the first whose test is not false. A cond with no matching
// clause evaluates to Null.
func sfCond(comb value.Value, e *value.Environment) (value.Value, error) {
	clauses := value.Cdr(comb)
	for {
		p, ok := clauses.(*value.Pair)
		if !ok {
			return value.Null, nil
		}
		clause := p.Car
		test, err := Eval(value.Car(clause), e)
		if err != nil {
			return nil, err
		}
		if !value.IsFalse(test) {
			return Eval(value.Cadr(clause), e)
		}
		clauses = p.Cdr
	}
}

// sfBegin implements (begin expr...): evaluate each in order, returning the
// last result.
func sfBegin(comb value.Value, e *value.Environment) (value.Value, error) {
	actions := value.Cdr(comb)
	var result value.Value = value.Null
	for {
		p, ok := actions.(*value.Pair)
		if !ok {
			return result, nil
		}
		v, err := Eval(p.Car, e)
		if err != nil {
			return nil, err
		}
		result = v
		actions = p.Cdr
	}
}

// sfLet implements (let ((name expr) ...) body...) by desugaring to an
// immediately-applied lambda, evaluated in the calling environment — never
// Global — exactly as SPEC_FULL.md §12 decides.
func sfLet(comb value.Value, e *value.Environment) (value.Value, error) {
	args := value.Cdr(comb)
	bindings := value.Car(args)
	body := value.Cdr(args)

	var names []value.Value
	var exprs []value.Value
	for {
		p, ok := bindings.(*value.Pair)
		if !ok {
			break
		}
		binding := p.Car
		names = append(names, value.Car(binding))
		exprs = append(exprs, value.Cadr(binding))
		bindings = p.Cdr
	}

	lambdaExpr := value.Cons(lambdaSymbol, value.Cons(value.FromSlice(names), body))
	call := value.Cons(lambdaExpr, value.FromSlice(exprs))
	return Eval(call, e)
}

// sfSet implements (set! name expr): mutate an existing binding along the
// environment chain. An unbound target is a fatal error (SPEC_FULL.md §13),
// not a silent no-op.
func sfSet(comb value.Value, e *value.Environment) (value.Value, error) {
	args := value.Cdr(comb)
	sym, ok := value.Car(args).(*value.Symbol)
	if !ok {
		return nil, errors.Errorf("set!: target must be a symbol")
	}
	val, err := Eval(value.Cadr(args), e)
	if err != nil {
		return nil, err
	}
	if !env.Set(sym, val, e) {
		return nil, errors.Errorf("unbound variable: %s", sym.Name)
	}
	return val, nil
}

func sfSetCar(comb value.Value, e *value.Environment) (value.Value, error) {
	return mutatePair(comb, e, true)
}

func sfSetCdr(comb value.Value, e *value.Environment) (value.Value, error) {
	return mutatePair(comb, e, false)
}

// mutatePair implements (set-car! place V) and (set-cdr! place V). place is
// evaluated like any other expression and must yield a pair. If place was
// written as a bare symbol, that symbol is rebound (via set!, along the
// environment chain) to the mutated pair as well — the reference's documented
// quirk, preserved here rather than "fixed", since nothing in SPEC_FULL.md
// calls it a bug.
func mutatePair(comb value.Value, e *value.Environment, isCar bool) (value.Value, error) {
	args := value.Cdr(comb)
	placeExpr := value.Car(args)
	valExpr := value.Cadr(args)

	placeVal, err := Eval(placeExpr, e)
	if err != nil {
		return nil, err
	}
	pair, ok := placeVal.(*value.Pair)
	if !ok {
		name := "set-cdr!"
		if isCar {
			name = "set-car!"
		}
		return nil, errors.Errorf("%s: not a pair (%s)", name, value.TypeName(placeVal))
	}

	v, err := Eval(valExpr, e)
	if err != nil {
		return nil, err
	}
	if isCar {
		pair.Car = v
	} else {
		pair.Cdr = v
	}

	if sym, ok := placeExpr.(*value.Symbol); ok {
		env.Set(sym, pair, e)
	}
	return pair, nil
}

// sfApply implements (apply f a1 ... ak rest): evaluate f and each argument,
// splice the evaluated rest list onto the end, and invoke f with the
// combined argument list. SPEC_FULL.md §4.6 also lists apply among the
// required primitives; that requirement is satisfied by this single
// special-form binding sharing the ordinary variable namespace, so no
// separate Primitive is registered for it.
func sfApply(comb value.Value, e *value.Environment) (value.Value, error) {
	args := value.Slice(value.Cdr(comb))
	if len(args) < 2 {
		return nil, errors.Errorf("apply: requires a procedure and at least one list argument")
	}

	f, err := Eval(args[0], e)
	if err != nil {
		return nil, err
	}

	var evaluated []value.Value
	for _, a := range args[1 : len(args)-1] {
		v, err := Eval(a, e)
		if err != nil {
			return nil, err
		}
		evaluated = append(evaluated, v)
	}

	restVal, err := Eval(args[len(args)-1], e)
	if err != nil {
		return nil, err
	}
	evaluated = append(evaluated, value.Slice(restVal)...)

	return Apply(f, evaluated)
}
