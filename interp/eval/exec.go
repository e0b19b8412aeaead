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

package eval

import (
	"brewin.dev/interp/ast"
	brewerr "brewin.dev/interp/errors"
	"brewin.dev/interp/scope"
	"brewin.dev/interp/value"
)

// Signal is the explicit control-flow result of executing a statement
// or a block: either nothing happened (the zero value), a return was
// hit, or — propagated as a Go error instead, see below — an
// exception is unwinding. Hard errors (NAME/TYPE/FAULT) and catchable
// raises both travel as the `error` return value, since Go's ordinary
// call-stack unwinding on a non-nil error already pops each pushed
// frame exactly once; Signal only needs to carry the one case Go's
// error path can't: "this call returned a value, stop running further
// statements in the enclosing blocks."
type Signal struct {
	Returned bool
	HasValue bool
	Value    value.Value
}

var normal = Signal{}

// execStmts runs a statement list in frame, stopping early if any
// statement's Signal reports a return, or if an error (hard or
// raised) propagates out of it.
func (ctx *Context) execStmts(frame *scope.Frame, stmts []ast.Stmt) (Signal, error) {
	for _, s := range stmts {
		sig, err := ctx.execStmt(frame, s)
		if err != nil {
			return Signal{}, err
		}
		if sig.Returned {
			return sig, nil
		}
	}
	return normal, nil
}

func (ctx *Context) execStmt(frame *scope.Frame, stmt ast.Stmt) (Signal, error) {
	ctx.tracef("exec %T", stmt)
	switch s := stmt.(type) {
	case *ast.VarDef:
		return normal, ctx.execVarDef(frame, s)
	case *ast.Assign:
		return normal, ctx.execAssign(frame, s)
	case *ast.FCallStmt:
		_, err := ctx.dispatch(frame, s.Call)
		return normal, err
	case *ast.If:
		return ctx.execIf(frame, s)
	case *ast.For:
		return ctx.execFor(frame, s)
	case *ast.Return:
		return ctx.execReturn(frame, s)
	case *ast.Raise:
		return normal, ctx.execRaise(frame, s)
	case *ast.Try:
		return ctx.execTry(frame, s)
	default:
		return normal, brewerr.New(brewerr.TypeError, stmt.Position(), "unhandled statement node %T", stmt)
	}
}

func (ctx *Context) execVarDef(frame *scope.Frame, s *ast.VarDef) error {
	def := ctx.Reg.Default(s.Type)
	declType := s.Type
	name := s.Name
	slot := scope.NewTypedValueSlot(def, func(v value.Value) (value.Value, error) {
		cv, ok := CoerceAssign(v, declType, ctx.Reg)
		if !ok {
			return nil, brewerr.New(brewerr.TypeError, s.Pos, "cannot assign value to %q, not coercible to declared type %s", name, declType)
		}
		return cv, nil
	})
	if !frame.Define(s.Name, slot) {
		return brewerr.New(brewerr.NameError, s.Pos, "variable %q already defined in this scope", s.Name)
	}
	return nil
}

func (ctx *Context) execAssign(frame *scope.Frame, s *ast.Assign) error {
	v, err := ctx.evalExpr(frame, s.Value)
	if err != nil {
		return err
	}
	return ctx.writePath(frame, s.Fields, v, s.Pos)
}

func (ctx *Context) execIf(frame *scope.Frame, s *ast.If) (Signal, error) {
	cond, err := ctx.evalExpr(frame, s.Cond)
	if err != nil {
		return Signal{}, err
	}
	b, ok := value.CoerceToBool(cond)
	if !ok {
		return Signal{}, brewerr.New(brewerr.TypeError, s.Pos, "if condition must be bool, got %s", cond.Kind())
	}
	branch := s.Else
	if b {
		branch = s.Then
	}
	block := scope.New(scope.Block, frame)
	return ctx.execStmts(block, branch)
}

func (ctx *Context) execFor(frame *scope.Frame, s *ast.For) (Signal, error) {
	if s.Init != nil {
		if _, err := ctx.execStmt(frame, s.Init); err != nil {
			return Signal{}, err
		}
	}
	for {
		cond, err := ctx.evalExpr(frame, s.Cond)
		if err != nil {
			return Signal{}, err
		}
		b, ok := value.CoerceToBool(cond)
		if !ok {
			return Signal{}, brewerr.New(brewerr.TypeError, s.Pos, "for condition must be bool, got %s", cond.Kind())
		}
		if !b {
			return normal, nil
		}

		block := scope.New(scope.Block, frame)
		sig, err := ctx.execStmts(block, s.Body)
		if err != nil {
			return Signal{}, err
		}
		if sig.Returned {
			return sig, nil
		}

		if s.Update != nil {
			if _, err := ctx.execStmt(frame, s.Update); err != nil {
				return Signal{}, err
			}
		}
	}
}

func (ctx *Context) execReturn(frame *scope.Frame, s *ast.Return) (Signal, error) {
	if s.Value == nil {
		return Signal{Returned: true}, nil
	}
	v, err := ctx.evalExpr(frame, s.Value)
	if err != nil {
		return Signal{}, err
	}
	return Signal{Returned: true, HasValue: true, Value: v}, nil
}

func (ctx *Context) execRaise(frame *scope.Frame, s *ast.Raise) error {
	v, err := ctx.evalExpr(frame, s.Value)
	if err != nil {
		return err
	}
	payload, ok := v.(value.String)
	if !ok {
		return brewerr.New(brewerr.TypeError, s.Pos, "raise expression must be a string, got %s", v.Kind())
	}
	return &brewerr.Raised{Payload: string(payload), Pos: s.Pos}
}

func (ctx *Context) execTry(frame *scope.Frame, s *ast.Try) (Signal, error) {
	block := scope.New(scope.Block, frame)
	sig, err := ctx.execStmts(block, s.Body)
	if err == nil {
		return sig, nil
	}

	raised, ok := err.(*brewerr.Raised)
	if !ok {
		return Signal{}, err
	}
	for _, c := range s.Catchers {
		if c.Name != raised.Payload {
			continue
		}
		catchBlock := scope.New(scope.Block, frame)
		return ctx.execStmts(catchBlock, c.Body)
	}
	return Signal{}, err
}
