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
	"brewin.dev/interp/host"
	"brewin.dev/interp/types"
)

// Run loads prog's struct/function tables and executes main() with no
// arguments. The returned error, if any, is always a *brewerr.Error: a
// caught-nowhere *brewerr.Raised that escapes main is converted to a
// FaultError citing its payload.
func Run(prog *ast.Program, h host.Host) error {
	reg, err := types.NewRegistry(prog)
	if err != nil {
		return brewerr.New(brewerr.TypeError, 0, "%s", err)
	}

	ctx := NewContext(reg, h)
	call := &ast.FCall{Name: "main"}
	_, err = ctx.callUser(nil, call)
	if err == nil {
		return nil
	}
	if raised, ok := err.(*brewerr.Raised); ok {
		return raised.AsFault()
	}
	return err
}
