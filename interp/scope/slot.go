// Copyright 2026 The Brewin Authors
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

package scope

import "brewin.dev/interp/value"

// Eval is the callback a Thunk uses to force its captured expression.
// It is supplied by the eval package (the only package that knows how
// to walk an ast.Expr); scope stays free of a dependency on eval or
// ast so that the scope chain and the evaluator can each be tested in
// isolation, the same separation cue/internal/core/adt keeps between
// Environment and the expressions it resolves.
type Eval func(expr interface{}, env *Frame) (value.Value, error)

// Thunk is a suspended argument expression plus the environment
// snapshot its free variables resolve against. It is only ever
// constructed for lazily-bound function call arguments; plain
// assignment always evaluates eagerly.
type Thunk struct {
	Expr      interface{} // an ast.Expr; kept opaque to avoid an ast import cycle
	Env       *Frame
	cached    value.Value
	hasCached bool
}

// NewThunk captures expr against env at the moment an argument is
// bound to a parameter.
func NewThunk(expr interface{}, env *Frame) *Thunk {
	return &Thunk{Expr: expr, Env: env}
}

// Force evaluates the thunk's expression against its captured
// environment the first time it's needed, and returns the cached
// result on every later call. Only a *successful* evaluation is
// cached: a thunk whose evaluation raised an exception is retried in
// full the next time it's forced ("memoizes its first
// successful evaluation").
func (t *Thunk) Force(eval Eval) (value.Value, error) {
	if t.hasCached {
		return t.cached, nil
	}
	v, err := eval(t.Expr, t.Env)
	if err != nil {
		return nil, err
	}
	t.cached = v
	t.hasCached = true
	return v, nil
}

// Slot is a variable binding cell: either a plain value or a pending
// thunk, never both. Reassignment ("Re-assignment
// invalidates the cache") always replaces a Slot's content with a
// plain value and drops any thunk, which is what makes cache
// invalidation trivial — there is nothing left to invalidate, the
// slot no longer defers to the old expression at all.
type Slot struct {
	val   value.Value
	thunk *Thunk
	adapt func(value.Value) (value.Value, error)
}

// NewValueSlot binds a slot directly to an already-evaluated value
// with no declared type to check later assignments against.
func NewValueSlot(v value.Value) *Slot { return &Slot{val: v} }

// NewTypedValueSlot binds a slot directly to an already-evaluated
// value that also carries a declared-type adapt hook: every later
// Set runs the new value through adapt before it's stored, so a
// plain "x = expr;" assignment is coerced and type-checked against
// the variable's declared type the same way a function parameter or
// a struct field write already is.
func NewTypedValueSlot(v value.Value, adapt func(value.Value) (value.Value, error)) *Slot {
	return &Slot{val: v, adapt: adapt}
}

// NewThunkSlot binds a slot to a lazy argument thunk.
func NewThunkSlot(t *Thunk) *Slot { return &Slot{thunk: t} }

// NewTypedThunkSlot binds a slot to a lazy argument thunk whose forced
// value must be coerced to (and checked against) a declared parameter
// type — "each argument must be coercible to the declared
// parameter type". The check happens lazily too: it runs each time the
// thunk is forced, not at call time, since the argument's value isn't
// known until then.
func NewTypedThunkSlot(t *Thunk, adapt func(value.Value) (value.Value, error)) *Slot {
	return &Slot{thunk: t, adapt: adapt}
}

// Get resolves the slot to a value, forcing its thunk if it has one.
func (s *Slot) Get(eval Eval) (value.Value, error) {
	var v value.Value
	var err error
	if s.thunk != nil {
		v, err = s.thunk.Force(eval)
	} else {
		v, err = s.val, nil
	}
	if err != nil {
		return nil, err
	}
	if s.adapt != nil {
		return s.adapt(v)
	}
	return v, nil
}

// Set rebinds the slot to v, discarding any thunk, after running v
// through the slot's adapt hook if it has one — the same
// declared-type coercion/check path a struct field write or a
// function argument already goes through. This is the only mutator;
// there is no way to put a new thunk into an existing Slot; a
// reassigned parameter is eager from that point on.
func (s *Slot) Set(v value.Value) error {
	if s.adapt != nil {
		cv, err := s.adapt(v)
		if err != nil {
			return err
		}
		v = cv
	}
	s.val = v
	s.thunk = nil
	return nil
}
