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

func TestBinOpArith(t *testing.T) {
	v, err := value.BinOp("+", value.Int(2), value.Int(3))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Int(5))))

	v, err = value.BinOp("+", value.String("a"), value.String("b"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.String("ab"))))
}

func TestBinOpDivFloorsNegative(t *testing.T) {
	v, err := value.BinOp("/", value.Int(-7), value.Int(2))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Int(-4))))
}

func TestBinOpDivByZero(t *testing.T) {
	_, err := value.BinOp("/", value.Int(1), value.Int(0))
	qt.Assert(t, qt.Equals(err, value.ErrDivByZero))
}

func TestBinOpTypeMismatch(t *testing.T) {
	_, err := value.BinOp("+", value.Int(1), value.String("x"))
	qt.Assert(t, qt.IsNotNil(err))
}

func TestShortCircuit(t *testing.T) {
	_, ok := value.ShortCircuit("&&", false)
	qt.Assert(t, qt.IsTrue(ok))

	_, ok = value.ShortCircuit("&&", true)
	qt.Assert(t, qt.IsFalse(ok))

	_, ok = value.ShortCircuit("||", true)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestUnaryOp(t *testing.T) {
	v, err := value.UnaryOp("neg", value.Int(5))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Int(-5))))

	v, err = value.UnaryOp("!", value.Bool(false))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Bool(true))))

	v, err = value.UnaryOp("!", value.Int(0))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Bool(true))))
}
