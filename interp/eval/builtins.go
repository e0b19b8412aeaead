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
	"strconv"
	"strings"

	"brewin.dev/interp/ast"
	brewerr "brewin.dev/interp/errors"
	"brewin.dev/interp/scope"
	"brewin.dev/interp/value"
)

// callPrint implements the print built-in: all arguments
// are evaluated eagerly, rendered, concatenated, and sent to output.
func (ctx *Context) callPrint(frame *scope.Frame, call *ast.FCall) (value.Value, error) {
	var b strings.Builder
	for _, arg := range call.Args {
		v, err := ctx.evalExpr(frame, arg)
		if err != nil {
			return nil, err
		}
		b.WriteString(v.Render())
	}
	ctx.Host.Output(b.String())
	return value.Nil{}, nil
}

// callInput implements inputi/inputs: an optional single
// argument is printed as a prompt, then one line is read from the
// host and parsed to the requested type.
func (ctx *Context) callInput(frame *scope.Frame, call *ast.FCall) (value.Value, error) {
	switch len(call.Args) {
	case 0:
	case 1:
		v, err := ctx.evalExpr(frame, call.Args[0])
		if err != nil {
			return nil, err
		}
		ctx.Host.Output(v.Render())
	default:
		return nil, brewerr.New(brewerr.NameError, call.Pos,
			"function %s expected 0 or 1 arguments, got %d", call.Name, len(call.Args))
	}

	line, err := ctx.Host.GetInput()
	if err != nil {
		return nil, brewerr.New(brewerr.FaultError, call.Pos, "reading input: %s", err)
	}

	if call.Name == "inputs" {
		return value.String(line), nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return nil, brewerr.New(brewerr.FaultError, call.Pos, "inputi: %q is not an integer", line)
	}
	return value.Int(n), nil
}
