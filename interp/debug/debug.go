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

// Package debug parses BREWIN_DEBUG into a set of boolean flags, the
// same way cuelang.org/go/internal/cueexperiment parses CUE_EXPERIMENT:
// a comma-separated list of lowercase field names turned on by
// reflection. It exists so that ad hoc tracing doesn't need a
// dedicated flag on every command that might want it.
package debug

import (
	"fmt"
	"os"
	"reflect"
	"strings"
)

// Flags holds the set of BREWIN_DEBUG flags. Populated by Init.
var Flags struct {
	// Trace logs every statement executed and every function call
	// dispatched.
	Trace bool
	// ASTTrace logs the AST dump of the program before running it, in
	// addition to what --ast on the CLI already prints.
	ASTTrace bool
}

// Init parses the BREWIN_DEBUG environment variable into Flags. It is
// not a package init func so that its failure mode is a returned
// error rather than a panic.
func Init() error {
	return initFrom(os.Getenv("BREWIN_DEBUG"))
}

func initFrom(raw string) error {
	if raw == "" {
		return nil
	}
	names := make(map[string]int)
	fv := reflect.ValueOf(&Flags).Elem()
	ft := fv.Type()
	for i := 0; i < ft.NumField(); i++ {
		names[strings.ToLower(ft.Field(i).Name)] = i
	}
	for _, name := range strings.Split(raw, ",") {
		idx, ok := names[name]
		if !ok {
			return fmt.Errorf("unknown BREWIN_DEBUG flag %q", name)
		}
		fv.Field(idx).SetBool(true)
	}
	return nil
}
