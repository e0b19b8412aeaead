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
	"brewin.dev/interp/types"
	"brewin.dev/interp/value"
)

// CoerceAssign implements the two coercions of at every
// point a value is written into a declared-type slot: a struct field,
// a function parameter, or a function return value. It returns the
// (possibly coerced) value and whether the assignment is legal.
func CoerceAssign(v value.Value, declaredType string, reg *types.Registry) (value.Value, bool) {
	switch declaredType {
	case types.Int:
		if i, ok := v.(value.Int); ok {
			return i, true
		}
		return nil, false

	case types.Bool:
		if b, ok := value.CoerceToBool(v); ok {
			return value.Bool(b), true
		}
		return nil, false

	case types.Str:
		if s, ok := v.(value.String); ok {
			return s, true
		}
		return nil, false

	case "", types.Void:
		return v, true

	default:
		if !reg.IsStructType(declaredType) {
			return nil, false
		}
		if _, ok := v.(value.Nil); ok {
			return value.NullStruct(declaredType), true
		}
		if s, ok := v.(value.Struct); ok && s.TypeName == declaredType {
			return s, true
		}
		return nil, false
	}
}
