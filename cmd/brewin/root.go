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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"brewin.dev/interp/ast"
	"brewin.dev/interp/debug"
	"brewin.dev/interp/eval"
	"brewin.dev/interp/host"
)

// newRootCmd builds the brewin command tree. Like cmd/cue's New, it
// silences cobra's own error/usage printing so the single place that
// formats a failure is run's own handling of the host's error(kind,
// msg) channel.
func newRootCmd() *cobra.Command {
	var (
		dumpAST bool
		trace   bool
	)

	cmd := &cobra.Command{
		Use:           "brewin <program.json>",
		Short:         "brewin runs a parsed Brewin program",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if trace {
				debug.Flags.Trace = true
			}
			return runProgram(args[0], dumpAST)
		},
	}
	cmd.Flags().BoolVar(&dumpAST, "ast", false, "dump the parsed AST before running")
	cmd.Flags().BoolVar(&trace, "trace", false, "trace every statement executed and call dispatched")
	return cmd
}

func runProgram(path string, dumpAST bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	prog, err := ast.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %s\n", err)
		return err
	}
	if dumpAST {
		ast.Dump(os.Stdout, prog)
	}
	if debug.Flags.ASTTrace {
		ast.Dump(os.Stderr, prog)
	}

	h := host.NewStdio(os.Stdin, os.Stdout)
	runErr := eval.Run(prog, h)
	if runErr == nil {
		return nil
	}

	fmt.Fprintln(os.Stderr, runErr)
	return runErr
}
