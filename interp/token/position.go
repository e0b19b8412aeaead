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

// Package token carries source positions for AST nodes.
//
// Brewin's evaluator does not need source-accurate diagnostics (the
// error taxonomy in the top-level error package reports a kind and a
// message, not a column), but every node carries a Pos field so that
// host-facing error messages can include a "line N" prefix when a
// position is known. ast.Decode leaves every Pos at NoPos, since the
// JSON AST it reads carries no line numbers, so errors from a decoded
// program have no line prefix.
package token

import "fmt"

// Pos is a 1-based line number within the source the AST was parsed
// from. A zero Pos means "no position available" (e.g. a node
// synthesized by the evaluator itself, such as a default value).
type Pos int

// NoPos is the zero value of Pos.
const NoPos Pos = 0

// IsValid reports whether p refers to an actual source line.
func (p Pos) IsValid() bool { return p > 0 }

// String renders p as "line N", or "-" if invalid.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("line %d", int(p))
}
