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

// Package value implements the evaluator's tagged-union runtime value
// and the two implicit coercions. The shape
// mirrors cuelang.org/go/internal/core/adt's Value interface plus
// Kind()-based dispatch, scaled down to Brewin's four primitive kinds
// plus struct references.
package value

import "fmt"

// Kind tags the variant a Value holds.
type Kind int

const (
	IntKind Kind = iota
	StringKind
	BoolKind
	NilKind
	StructKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case StringKind:
		return "string"
	case BoolKind:
		return "bool"
	case NilKind:
		return "nil"
	case StructKind:
		return "struct"
	default:
		return "unknown"
	}
}

// Value is any runtime value. Concrete implementations are Int,
// String, Bool, Nil and Struct.
type Value interface {
	Kind() Kind
	// Render is the textual form print() uses: natural for int/string,
	// "true"/"false" for bool, "nil" for nil and null structs.
	Render() string
}

// Int is a Brewin int.
type Int int64

func (Int) Kind() Kind          { return IntKind }
func (v Int) Render() string    { return fmt.Sprintf("%d", int64(v)) }

// String is a Brewin string.
type String string

func (String) Kind() Kind       { return StringKind }
func (v String) Render() string { return string(v) }

// Bool is a Brewin bool.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }
func (v Bool) Render() string {
	if v {
		return "true"
	}
	return "false"
}

// Nil is the untyped nil literal.
type Nil struct{}

func (Nil) Kind() Kind      { return NilKind }
func (Nil) Render() string  { return "nil" }

// Handle is the shared, mutable backing store of a struct instance.
// Every Value that refers to the same *Handle observes the same
// field mutations.
type Handle struct {
	TypeName string
	Fields   map[string]Value
}

// Struct is a reference to a struct instance, or a null reference of
// a declared struct type if Ref is nil.
type Struct struct {
	TypeName string
	Ref      *Handle
}

func (Struct) Kind() Kind { return StructKind }
func (v Struct) Render() string {
	if v.Ref == nil {
		return "nil"
	}
	return fmt.Sprintf("%s instance", v.TypeName)
}

// IsNullStruct reports whether v is a struct-typed value holding a
// null reference.
func IsNullStruct(v Value) bool {
	s, ok := v.(Struct)
	return ok && s.Ref == nil
}

// NewStruct allocates a fresh handle for "new T", with fields set to
// their per-field defaults.
func NewStruct(typeName string, fields map[string]Value) Struct {
	return Struct{TypeName: typeName, Ref: &Handle{TypeName: typeName, Fields: fields}}
}

// NullStruct returns the default value of a declared struct type: a
// Struct with no backing handle.
func NullStruct(typeName string) Struct {
	return Struct{TypeName: typeName, Ref: nil}
}

// CoerceToBool implements the int->bool coercion of : any
// int may be used where a bool is required, nonzero meaning true.
// Returns ok=false if v is neither bool nor int.
func CoerceToBool(v Value) (b bool, ok bool) {
	switch x := v.(type) {
	case Bool:
		return bool(x), true
	case Int:
		return x != 0, true
	default:
		return false, false
	}
}

// Equal implements the universal, never-erroring ==: handle identity
// for structs (null == null), value equality for primitives of the
// same kind, int-to-bool coercion when one side is Int and the other
// Bool (1 == true), and false for every other cross-kind pairing
// (e.g. bool vs string is never coerced; only int/bool has a table
// row for it).
func Equal(a, b Value) bool {
	ak, bk := a.Kind(), b.Kind()
	if ak == NilKind || bk == NilKind {
		return isNilLike(a) && isNilLike(b)
	}
	if ak == StructKind && bk == StructKind {
		as, bs := a.(Struct), b.(Struct)
		if as.Ref == nil || bs.Ref == nil {
			return as.Ref == nil && bs.Ref == nil
		}
		return as.Ref == bs.Ref
	}
	if (ak == IntKind && bk == BoolKind) || (ak == BoolKind && bk == IntKind) {
		ab, _ := CoerceToBool(a)
		bb, _ := CoerceToBool(b)
		return ab == bb
	}
	if ak != bk {
		return false
	}
	switch ak {
	case IntKind:
		return a.(Int) == b.(Int)
	case StringKind:
		return a.(String) == b.(String)
	case BoolKind:
		return a.(Bool) == b.(Bool)
	}
	return false
}

func isNilLike(v Value) bool {
	if _, ok := v.(Nil); ok {
		return true
	}
	return IsNullStruct(v)
}
