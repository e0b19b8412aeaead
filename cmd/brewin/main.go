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

// Command brewin runs a parsed Brewin program.
package main

import (
	"fmt"
	"os"

	"brewin.dev/interp/debug"
)

func main() {
	os.Exit(Main())
}

// Main runs the brewin tool and returns the code for passing to
// os.Exit. Exported (rather than inlined into main) so the testscript
// suite can register it as a subprocess command, the same shape
// cmd/cue's Main serves for TestMain/testscript.RunMain.
func Main() int {
	if err := debug.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := newRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}
