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

// Package types holds the program-wide struct and function tables
// and the declared-type validation and default-value logic other
// packages need. It is populated once at program load.
package types

import (
	"fmt"
	"sort"

	"brewin.dev/interp/ast"
	"brewin.dev/interp/value"
)

const (
	Int    = "int"
	Str    = "string"
	Bool   = "bool"
	Void   = "void"
)

// Field is an ordered struct field declaration.
type Field struct {
	Name string
	Type string
}

// StructDef is the validated, ordered field list for one struct name.
type StructDef struct {
	Name   string
	Fields []Field
}

// Registry holds every struct and function declared by a program.
type Registry struct {
	structs map[string]*StructDef
	funcs   map[string][]*ast.FuncDef
}

// NewRegistry builds a Registry from a parsed program, validating that
// every declared type (struct field, param, return type) resolves to
// a primitive or a previously-or-later declared struct name. Returns
// an error on the first unresolvable type, surfaced as a TYPE_ERROR
// before execution begins.
func NewRegistry(prog *ast.Program) (*Registry, error) {
	r := &Registry{
		structs: make(map[string]*StructDef),
		funcs:   make(map[string][]*ast.FuncDef),
	}
	for _, sd := range prog.Structs {
		fields := make([]Field, len(sd.Fields))
		for i, f := range sd.Fields {
			fields[i] = Field{Name: f.Name, Type: f.Type}
		}
		r.structs[sd.Name] = &StructDef{Name: sd.Name, Fields: fields}
	}
	for _, fd := range prog.Functions {
		r.funcs[fd.Name] = append(r.funcs[fd.Name], fd)
	}
	if err := r.validateTypes(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) validateTypes() error {
	check := func(t string) error {
		if t == "" || t == Void || t == Int || t == Str || t == Bool {
			return nil
		}
		if _, ok := r.structs[t]; ok {
			return nil
		}
		return fmt.Errorf("undeclared type %q", t)
	}
	names := make([]string, 0, len(r.structs))
	for n := range r.structs {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		for _, f := range r.structs[n].Fields {
			if err := check(f.Type); err != nil {
				return fmt.Errorf("struct %s field %s: %w", n, f.Name, err)
			}
		}
	}
	fnames := make([]string, 0, len(r.funcs))
	for n := range r.funcs {
		fnames = append(fnames, n)
	}
	sort.Strings(fnames)
	for _, name := range fnames {
		for _, fd := range r.funcs[name] {
			for _, p := range fd.Params {
				if err := check(p.Type); err != nil {
					return fmt.Errorf("func %s param %s: %w", name, p.Name, err)
				}
			}
			if err := check(fd.ReturnType); err != nil {
				return fmt.Errorf("func %s return type: %w", name, err)
			}
		}
	}
	return nil
}

// Struct looks up a declared struct type by name.
func (r *Registry) Struct(name string) (*StructDef, bool) {
	sd, ok := r.structs[name]
	return sd, ok
}

// IsStructType reports whether name refers to a declared struct type.
func (r *Registry) IsStructType(name string) bool {
	_, ok := r.structs[name]
	return ok
}

// Overloads returns every declared overload of name, in declaration
// order, or nil if the name was never declared.
func (r *Registry) Overloads(name string) []*ast.FuncDef {
	return r.funcs[name]
}

// FieldType returns the declared type of a struct field, or false if
// structType or field is unknown.
func (r *Registry) FieldType(structType, field string) (string, bool) {
	sd, ok := r.structs[structType]
	if !ok {
		return "", false
	}
	for _, f := range sd.Fields {
		if f.Name == field {
			return f.Type, true
		}
	}
	return "", false
}

// IsPrimitive reports whether name is one of int/string/bool.
func IsPrimitive(name string) bool {
	return name == Int || name == Str || name == Bool
}

// Default returns the zero value for a declared type: 0, "", false,
// or a null-handle struct for a declared struct type. Nothing is
// allocated: a struct-typed default has no fields (NewInstance is what
// defaults a fresh struct's fields).
func (r *Registry) Default(declaredType string) value.Value {
	switch declaredType {
	case Int:
		return value.Int(0)
	case Str:
		return value.String("")
	case Bool:
		return value.Bool(false)
	case "", Void:
		return value.Nil{}
	default:
		if _, ok := r.structs[declaredType]; ok {
			return value.NullStruct(declaredType)
		}
		return value.Nil{}
	}
}

// NewInstance allocates a fresh, fully-defaulted struct of the given
// type, for `new T`.
func (r *Registry) NewInstance(typeName string) (value.Struct, bool) {
	sd, ok := r.structs[typeName]
	if !ok {
		return value.Struct{}, false
	}
	fields := make(map[string]value.Value, len(sd.Fields))
	for _, f := range sd.Fields {
		fields[f.Name] = r.Default(f.Type)
	}
	return value.NewStruct(typeName, fields), true
}
