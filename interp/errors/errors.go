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

// Package errors defines the evaluator's error taxonomy: NAME_ERROR,
// TYPE_ERROR and FAULT_ERROR, plus the Raised control value used to
// unwind a user "raise" statement to a matching "catch".
package errors

import (
	"errors"
	"fmt"

	"brewin.dev/interp/token"
)

// Kind classifies an Error for the host's error(kind, msg) channel.
type Kind int

const (
	// NameError covers undefined variables/functions, arity mismatches,
	// and duplicate definitions within a scope.
	NameError Kind = iota
	// TypeError covers operator/operand mismatches, non-coercible
	// assignment or return, non-bool conditions, and invalid declared
	// types.
	TypeError
	// FaultError covers null-handle dereference and an uncaught user
	// exception escaping main.
	FaultError
)

func (k Kind) String() string {
	switch k {
	case NameError:
		return "NAME_ERROR"
	case TypeError:
		return "TYPE_ERROR"
	case FaultError:
		return "FAULT_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Message is an embeddable deferred-format error message: arguments
// are kept around rather than formatted immediately, so the message
// can be inspected by kind separately from its rendered text.
type Message struct {
	format string
	args   []interface{}
}

// NewMessagef builds a Message from a printf-style format and args.
func NewMessagef(format string, args ...interface{}) Message {
	return Message{format: format, args: args}
}

func (m *Message) Msg() (string, []interface{}) { return m.format, m.args }

func (m *Message) Error() string { return fmt.Sprintf(m.format, m.args...) }

// Error is a Brewin evaluator error: a Kind, a position, and a
// human-readable message. Name, type and fault errors all implement
// it; they are never catchable by a Brewin "try" block (see Raised,
// below, for the catchable counterpart).
type Error struct {
	Message
	Kind Kind
	Pos  token.Pos
}

// New builds an Error of the given kind at the given position.
func New(kind Kind, pos token.Pos, format string, args ...interface{}) *Error {
	return &Error{Message: NewMessagef(format, args...), Kind: kind, Pos: pos}
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message.Error())
}

// Is lets errors.Is match on Kind: errors.Is(err, errors.NameErrorKind)
// reports whether err is an *Error of that kind. Callers compare
// against the sentinel values below.
func (e *Error) Is(target error) bool {
	k, ok := target.(kindSentinel)
	return ok && e.Kind == Kind(k)
}

type kindSentinel Kind

func (kindSentinel) Error() string { return "" }

var (
	// NameErrorKind, TypeErrorKind and FaultErrorKind are sentinels for
	// use with errors.Is, e.g. errors.Is(err, errors.NameErrorKind).
	NameErrorKind  error = kindSentinel(NameError)
	TypeErrorKind  error = kindSentinel(TypeError)
	FaultErrorKind error = kindSentinel(FaultError)
)

// Raised is the control value produced by a Brewin "raise" statement.
// Unlike Error, it is catchable: a "try"/"catch" block matches it by
// string equality of Payload. An uncaught Raised that escapes main is
// converted to a FaultError by the caller (see interp/eval).
type Raised struct {
	Payload string
	Pos     token.Pos
}

func (r *Raised) Error() string {
	return fmt.Sprintf("uncaught exception: %q", r.Payload)
}

// AsFault converts an escaped Raised into the FaultError the host sees
// when no catcher in the whole program matched it.
func (r *Raised) AsFault() *Error {
	return New(FaultError, r.Pos, "uncaught exception: %s", r.Payload)
}

// Unwrap/Is/As passthroughs so callers can keep using the standard
// errors package on top of this one, matching cue/errors' approach of
// wrapping rather than replacing the stdlib error machinery.
func Unwrap(err error) error          { return errors.Unwrap(err) }
func Is(err, target error) bool       { return errors.Is(err, target) }
func As(err error, target interface{}) bool { return errors.As(err, target) }
