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

package value_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"brewin.dev/interp/value"
)

func TestCoerceToBool(t *testing.T) {
	cases := []struct {
		in   value.Value
		want bool
		ok   bool
	}{
		{value.Bool(true), true, true},
		{value.Bool(false), false, true},
		{value.Int(0), false, true},
		{value.Int(7), true, true},
		{value.Int(-1), true, true},
		{value.String("x"), false, false},
		{value.Nil{}, false, false},
	}
	for _, c := range cases {
		got, ok := value.CoerceToBool(c.in)
		qt.Assert(t, qt.Equals(ok, c.ok))
		if c.ok {
			qt.Assert(t, qt.Equals(got, c.want))
		}
	}
}

func TestEqualNilLike(t *testing.T) {
	null := value.NullStruct("Point")
	qt.Assert(t, qt.IsTrue(value.Equal(value.Nil{}, value.Nil{})))
	qt.Assert(t, qt.IsTrue(value.Equal(value.Nil{}, null)))
	qt.Assert(t, qt.IsTrue(value.Equal(null, value.NullStruct("Other"))))
}

func TestEqualStructIdentity(t *testing.T) {
	a := value.NewStruct("Point", map[string]value.Value{"x": value.Int(1)})
	b := value.NewStruct("Point", map[string]value.Value{"x": value.Int(1)})
	qt.Assert(t, qt.IsFalse(value.Equal(a, b)))
	qt.Assert(t, qt.IsTrue(value.Equal(a, a)))
}

func TestEqualCoercesIntBool(t *testing.T) {
	qt.Assert(t, qt.IsTrue(value.Equal(value.Int(1), value.Bool(true))))
	qt.Assert(t, qt.IsTrue(value.Equal(value.Bool(true), value.Int(7))))
	qt.Assert(t, qt.IsTrue(value.Equal(value.Int(0), value.Bool(false))))
	qt.Assert(t, qt.IsFalse(value.Equal(value.Int(1), value.Bool(false))))
}

func TestEqualNeverCoercesAcrossOtherKinds(t *testing.T) {
	qt.Assert(t, qt.IsFalse(value.Equal(value.String("true"), value.Bool(true))))
	qt.Assert(t, qt.IsFalse(value.Equal(value.String("1"), value.Int(1))))
}
