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

package ast

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
)

// Dump writes a human-readable rendering of prog to w. It is wired to
// the CLI's explicit --ast flag (see cmd/brewin) rather than run
// automatically, so an AST dump is opt-in rather than a side effect of
// every run.
func Dump(w io.Writer, prog *Program) {
	fmt.Fprintf(w, "%# v\n", pretty.Formatter(prog))
}
