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
	"brewin.dev/interp/types"
	"brewin.dev/interp/value"
)

// dispatch resolves and invokes a call, whether to a built-in or a
// user-defined overload.
func (ctx *Context) dispatch(frame *scope.Frame, call *ast.FCall) (value.Value, error) {
	switch call.Name {
	case "print":
		ctx.tracef("call %s (%d args)", call.Name, len(call.Args))
		return ctx.callPrint(frame, call)
	case "inputi", "inputs":
		ctx.tracef("call %s (%d args)", call.Name, len(call.Args))
		return ctx.callInput(frame, call)
	default:
		return ctx.callUser(frame, call)
	}
}

func (ctx *Context) callUser(frame *scope.Frame, call *ast.FCall) (value.Value, error) {
	overloads := ctx.Reg.Overloads(call.Name)
	if len(overloads) == 0 {
		return nil, brewerr.New(brewerr.NameError, call.Pos, "function %q is not defined", call.Name)
	}

	var target *ast.FuncDef
	var lastMismatch *ast.FuncDef
	for _, fd := range overloads {
		if len(fd.Params) == len(call.Args) {
			target = fd
			break
		}
		lastMismatch = fd
	}
	if target == nil {
		// Report the last arity mismatch tried: when no overload's
		// parameter count matches, only the final candidate's expected
		// count is surfaced.
		cand := lastMismatch
		if cand == nil {
			cand = overloads[len(overloads)-1]
		}
		return nil, brewerr.New(brewerr.NameError, call.Pos,
			"function %s expected %d arguments, got %d", call.Name, len(cand.Params), len(call.Args))
	}

	ctx.tracef("call %s (%d args)", call.Name, len(call.Args))
	ctx.depth++
	defer func() { ctx.depth-- }()

	// Function frames see neither the caller's scope nor any enclosing
	// block (no dynamic scope, no closures): Up is nil. Each argument
	// is thunked against the *caller's* frame, so a parameter forced
	// later inside the callee still resolves its free variables using
	// the caller's bindings.
	fnFrame := scope.New(scope.Func, nil)
	for i, p := range target.Params {
		thunk := scope.NewThunk(call.Args[i], frame)
		paramType := p.Type
		fnFrame.Define(p.Name, scope.NewTypedThunkSlot(thunk, func(v value.Value) (value.Value, error) {
			cv, ok := CoerceAssign(v, paramType, ctx.Reg)
			if !ok {
				return nil, brewerr.New(brewerr.TypeError, call.Pos,
					"argument to %s not coercible to declared type %s", call.Name, paramType)
			}
			return cv, nil
		}))
	}

	bodyFrame := scope.New(scope.Block, fnFrame)
	sig, err := ctx.execStmts(bodyFrame, target.Body)
	if err != nil {
		return nil, err
	}

	isVoid := target.ReturnType == "" || target.ReturnType == types.Void
	if isVoid {
		if sig.Returned && sig.HasValue {
			return nil, brewerr.New(brewerr.TypeError, call.Pos, "void function %s cannot return a value", call.Name)
		}
		return value.Nil{}, nil
	}
	if !sig.Returned || !sig.HasValue {
		return ctx.Reg.Default(target.ReturnType), nil
	}
	coerced, ok := CoerceAssign(sig.Value, target.ReturnType, ctx.Reg)
	if !ok {
		return nil, brewerr.New(brewerr.TypeError, call.Pos,
			"return value of %s not coercible to declared type %s", call.Name, target.ReturnType)
	}
	return coerced, nil
}
