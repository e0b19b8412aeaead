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

// evalExpr walks an expression node, discriminating the node kind by
// Go type via a tagged sum rather than a dynamic keyed-map tag.
func (ctx *Context) evalExpr(frame *scope.Frame, expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Lit:
		return litValue(e), nil

	case *ast.VarRef:
		return ctx.readPath(frame, splitPath(e.Name), e.Pos)

	case *ast.Unary:
		return ctx.evalUnary(frame, e)

	case *ast.Binary:
		return ctx.evalBinary(frame, e)

	case *ast.FCall:
		return ctx.dispatch(frame, e)

	case *ast.New:
		inst, ok := ctx.Reg.NewInstance(e.Type)
		if !ok {
			return nil, brewerr.New(brewerr.NameError, e.Pos, "undefined struct type %q", e.Type)
		}
		return inst, nil

	default:
		return nil, brewerr.New(brewerr.TypeError, expr.Position(), "unhandled expression node %T", expr)
	}
}

func litValue(l *ast.Lit) value.Value {
	switch l.Kind {
	case "int":
		switch n := l.Val.(type) {
		case int64:
			return value.Int(n)
		case int:
			return value.Int(n)
		}
	case "string":
		if s, ok := l.Val.(string); ok {
			return value.String(s)
		}
	case "bool":
		if b, ok := l.Val.(bool); ok {
			return value.Bool(b)
		}
	}
	return value.Nil{}
}

func (ctx *Context) evalUnary(frame *scope.Frame, e *ast.Unary) (value.Value, error) {
	operand, err := ctx.evalExpr(frame, e.Operand)
	if err != nil {
		return nil, err
	}
	v, err := value.UnaryOp(e.Op, operand)
	if err != nil {
		return nil, brewerr.New(brewerr.TypeError, e.Pos, "%s", err)
	}
	return v, nil
}

func (ctx *Context) evalBinary(frame *scope.Frame, e *ast.Binary) (value.Value, error) {
	left, err := ctx.evalExpr(frame, e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op == "&&" || e.Op == "||" {
		lb, ok := value.CoerceToBool(left)
		if !ok {
			return nil, brewerr.New(brewerr.TypeError, e.Pos, "unsupported operand type for %s: %s", e.Op, left.Kind())
		}
		if result, short := value.ShortCircuit(e.Op, lb); short {
			return value.Bool(result), nil
		}
		right, err := ctx.evalExpr(frame, e.Right)
		if err != nil {
			return nil, err
		}
		rb, ok := value.CoerceToBool(right)
		if !ok {
			return nil, brewerr.New(brewerr.TypeError, e.Pos, "unsupported operand type for %s: %s", e.Op, right.Kind())
		}
		return value.LogicalOp(e.Op, lb, rb), nil
	}

	right, err := ctx.evalExpr(frame, e.Right)
	if err != nil {
		return nil, err
	}

	result, err := value.BinOp(e.Op, left, right)
	if err == value.ErrDivByZero {
		return nil, &brewerr.Raised{Payload: "div0", Pos: e.Pos}
	}
	if err != nil {
		return nil, brewerr.New(brewerr.TypeError, e.Pos, "%s", err)
	}
	return result, nil
}
