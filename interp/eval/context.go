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

// Package eval is the evaluator core: the statement executor, the
// expression evaluator, call dispatch with thunked arguments, and the
// exception machinery.
//
// Interpreter-wide state (the struct/function registry, the host,
// tracing) is threaded explicitly through a *Context rather than kept
// on a global, and a return is an explicit Signal value handed back
// from every statement rather than a boolean field flipped somewhere
// shared.
package eval

import (
	"fmt"
	"io"
	"os"

	"brewin.dev/interp/ast"
	"brewin.dev/interp/debug"
	"brewin.dev/interp/host"
	"brewin.dev/interp/scope"
	"brewin.dev/interp/types"
	"brewin.dev/interp/value"
)

// Context carries everything the evaluator needs that isn't part of
// the current lexical scope: the program's struct/function tables,
// the I/O host, and tracing state.
type Context struct {
	Reg   *types.Registry
	Host  host.Host
	Trace io.Writer
	depth int
}

// NewContext builds an evaluator context for a validated registry and
// host. Trace defaults to os.Stderr when debug.Flags.Trace is set
// (BREWIN_DEBUG=trace, or the CLI's --trace flag), and is otherwise
// left nil so tracef is a no-op.
func NewContext(reg *types.Registry, h host.Host) *Context {
	ctx := &Context{Reg: reg, Host: h}
	if debug.Flags.Trace {
		ctx.Trace = os.Stderr
	}
	return ctx
}

// evalFn adapts evalExpr to the scope.Eval signature a Thunk forces
// against; it's the one seam between the scope package (which knows
// nothing of ast or eval) and this package.
func (ctx *Context) evalFn(expr interface{}, env *scope.Frame) (value.Value, error) {
	return ctx.evalExpr(env, expr.(ast.Expr))
}

func (ctx *Context) tracef(format string, args ...interface{}) {
	if !debug.Flags.Trace || ctx.Trace == nil {
		return
	}
	fmt.Fprintf(ctx.Trace, "%s%s\n", indent(ctx.depth), fmt.Sprintf(format, args...))
}

func indent(n int) string {
	b := make([]byte, n*2)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
