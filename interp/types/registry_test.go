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

package types_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"brewin.dev/interp/ast"
	"brewin.dev/interp/types"
	"brewin.dev/interp/value"
)

func TestNewRegistryRejectsUndeclaredType(t *testing.T) {
	prog := &ast.Program{
		Functions: []*ast.FuncDef{
			{Name: "main", ReturnType: "Bogus"},
		},
	}
	_, err := types.NewRegistry(prog)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestOverloadsByArity(t *testing.T) {
	one := &ast.FuncDef{Name: "f", Params: []ast.Param{{Name: "a", Type: types.Int}}}
	two := &ast.FuncDef{Name: "f", Params: []ast.Param{{Name: "a", Type: types.Int}, {Name: "b", Type: types.Int}}}
	prog := &ast.Program{Functions: []*ast.FuncDef{one, two}}
	reg, err := types.NewRegistry(prog)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(reg.Overloads("f")), 2))
}

func TestNewInstanceDefaultsEveryField(t *testing.T) {
	prog := &ast.Program{
		Structs: []*ast.StructDef{
			{Name: "Point", Fields: []ast.Field{{Name: "x", Type: types.Int}, {Name: "next", Type: "Point"}}},
		},
	}
	reg, err := types.NewRegistry(prog)
	qt.Assert(t, qt.IsNil(err))

	inst, ok := reg.NewInstance("Point")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(inst.Ref.Fields["x"], value.Value(value.Int(0))))
	qt.Assert(t, qt.IsTrue(value.IsNullStruct(inst.Ref.Fields["next"])))
}

func TestFieldType(t *testing.T) {
	prog := &ast.Program{
		Structs: []*ast.StructDef{
			{Name: "Point", Fields: []ast.Field{{Name: "x", Type: types.Int}}},
		},
	}
	reg, err := types.NewRegistry(prog)
	qt.Assert(t, qt.IsNil(err))

	ft, ok := reg.FieldType("Point", "x")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ft, types.Int))

	_, ok = reg.FieldType("Point", "missing")
	qt.Assert(t, qt.IsFalse(ok))
}
