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

package scope_test

import (
	"errors"
	"testing"

	"github.com/go-quicktest/qt"

	"brewin.dev/interp/scope"
	"brewin.dev/interp/value"
)

func TestBlockFrameSeesEnclosing(t *testing.T) {
	outer := scope.New(scope.Func, nil)
	outer.Define("x", scope.NewValueSlot(value.Int(1)))
	inner := scope.New(scope.Block, outer)

	slot, ok := inner.Lookup("x")
	qt.Assert(t, qt.IsTrue(ok))
	v, err := slot.Get(nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Int(1))))
}

func TestFuncFrameBlocksLookupPastBarrier(t *testing.T) {
	caller := scope.New(scope.Func, nil)
	caller.Define("x", scope.NewValueSlot(value.Int(1)))
	// A fresh call frame never chains to the caller (no dynamic scope).
	callee := scope.New(scope.Func, nil)

	_, ok := callee.Lookup("x")
	qt.Assert(t, qt.IsFalse(ok))
}

func TestDefineRejectsDuplicateInSameFrame(t *testing.T) {
	f := scope.New(scope.Block, nil)
	qt.Assert(t, qt.IsTrue(f.Define("x", scope.NewValueSlot(value.Int(1)))))
	qt.Assert(t, qt.IsFalse(f.Define("x", scope.NewValueSlot(value.Int(2)))))
}

func TestThunkForcesOnceOnSuccess(t *testing.T) {
	calls := 0
	eval := func(expr interface{}, env *scope.Frame) (value.Value, error) {
		calls++
		return value.Int(expr.(int)), nil
	}
	th := scope.NewThunk(42, nil)
	v1, err := th.Force(eval)
	qt.Assert(t, qt.IsNil(err))
	v2, err := th.Force(eval)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v1, value.Value(value.Int(42))))
	qt.Assert(t, qt.Equals(v2, value.Value(value.Int(42))))
	qt.Assert(t, qt.Equals(calls, 1))
}

func TestThunkRetriesOnFailure(t *testing.T) {
	attempts := 0
	failOnce := errors.New("boom")
	eval := func(expr interface{}, env *scope.Frame) (value.Value, error) {
		attempts++
		if attempts == 1 {
			return nil, failOnce
		}
		return value.Int(7), nil
	}
	th := scope.NewThunk(nil, nil)
	_, err := th.Force(eval)
	qt.Assert(t, qt.Equals(err, failOnce))
	v, err := th.Force(eval)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Int(7))))
	qt.Assert(t, qt.Equals(attempts, 2))
}

func TestSetClearsThunk(t *testing.T) {
	calls := 0
	eval := func(expr interface{}, env *scope.Frame) (value.Value, error) {
		calls++
		return value.Int(1), nil
	}
	th := scope.NewThunk(nil, nil)
	slot := scope.NewThunkSlot(th)
	qt.Assert(t, qt.IsNil(slot.Set(value.Int(99))))

	v, err := slot.Get(eval)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Int(99))))
	qt.Assert(t, qt.Equals(calls, 0))
}

func TestTypedValueSlotCoercesOnSet(t *testing.T) {
	adapt := func(v value.Value) (value.Value, error) {
		b, ok := value.CoerceToBool(v)
		if !ok {
			return nil, errors.New("not coercible to bool")
		}
		return value.Bool(b), nil
	}
	slot := scope.NewTypedValueSlot(value.Bool(false), adapt)

	qt.Assert(t, qt.IsNil(slot.Set(value.Int(1))))
	v, err := slot.Get(nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Bool(true))))

	err = slot.Set(value.String("x"))
	qt.Assert(t, qt.IsNotNil(err))
}

func TestTypedThunkSlotAppliesAdaptOnEachGet(t *testing.T) {
	eval := func(expr interface{}, env *scope.Frame) (value.Value, error) {
		return value.Int(3), nil
	}
	adaptCalls := 0
	adapt := func(v value.Value) (value.Value, error) {
		adaptCalls++
		return v, nil
	}
	th := scope.NewThunk(nil, nil)
	slot := scope.NewTypedThunkSlot(th, adapt)

	_, _ = slot.Get(eval)
	_, _ = slot.Get(eval)
	qt.Assert(t, qt.Equals(adaptCalls, 2))
}
