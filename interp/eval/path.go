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
	"strings"

	brewerr "brewin.dev/interp/errors"
	"brewin.dev/interp/scope"
	"brewin.dev/interp/token"
	"brewin.dev/interp/value"
)

// splitPath splits a possibly-dotted variable/field reference such as
// "p.v" or "a.b.c" into its component names.
func splitPath(name string) []string {
	return strings.Split(name, ".")
}

// readPath resolves a dotted variable/field chain for reads
// ("p.v", "a.b.c"): the same struct-chain semantics govern both reads
// and the dotted assignment targets handled elsewhere, applied here
// symmetrically.
func (ctx *Context) readPath(frame *scope.Frame, parts []string, pos token.Pos) (value.Value, error) {
	slot, ok := frame.Lookup(parts[0])
	if !ok {
		return nil, brewerr.New(brewerr.NameError, pos, "undefined variable %q", parts[0])
	}
	v, err := slot.Get(ctx.evalFn)
	if err != nil {
		return nil, err
	}
	for _, field := range parts[1:] {
		v, err = ctx.stepField(v, field, pos)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// stepField dereferences one struct field of v.
func (ctx *Context) stepField(v value.Value, field string, pos token.Pos) (value.Value, error) {
	s, ok := v.(value.Struct)
	if !ok {
		return nil, brewerr.New(brewerr.TypeError, pos, "cannot access field %q of non-struct value", field)
	}
	if s.Ref == nil {
		return nil, brewerr.New(brewerr.FaultError, pos, "null dereference accessing field %q", field)
	}
	nv, ok := s.Ref.Fields[field]
	if !ok {
		return nil, brewerr.New(brewerr.NameError, pos, "struct %s has no field %q", s.TypeName, field)
	}
	return nv, nil
}

// writePath resolves a dotted assignment target and writes newVal
// into it, applying declared-type coercion on the final hop — a bare
// variable's own declared type (via the Slot's adapt hook) or the
// target struct field's declared type.
func (ctx *Context) writePath(frame *scope.Frame, parts []string, newVal value.Value, pos token.Pos) error {
	slot, ok := frame.Lookup(parts[0])
	if !ok {
		return brewerr.New(brewerr.NameError, pos, "undefined variable %q", parts[0])
	}
	if len(parts) == 1 {
		return slot.Set(newVal)
	}
	v, err := slot.Get(ctx.evalFn)
	if err != nil {
		return err
	}
	for _, field := range parts[1 : len(parts)-1] {
		v, err = ctx.stepField(v, field, pos)
		if err != nil {
			return err
		}
	}
	s, ok := v.(value.Struct)
	last := parts[len(parts)-1]
	if !ok {
		return brewerr.New(brewerr.TypeError, pos, "cannot assign field %q of non-struct value", last)
	}
	if s.Ref == nil {
		return brewerr.New(brewerr.FaultError, pos, "null dereference assigning field %q", last)
	}
	fieldType, ok := ctx.Reg.FieldType(s.TypeName, last)
	if !ok {
		return brewerr.New(brewerr.NameError, pos, "struct %s has no field %q", s.TypeName, last)
	}
	coerced, ok := CoerceAssign(newVal, fieldType, ctx.Reg)
	if !ok {
		return brewerr.New(brewerr.TypeError, pos, "cannot assign value to field %q of declared type %s", last, fieldType)
	}
	s.Ref.Fields[last] = coerced
	return nil
}
