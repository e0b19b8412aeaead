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

package host

import (
	"bufio"
	"fmt"
	"io"
)

// Stdio is the default Host, reading from an io.Reader and writing to
// an io.Writer — normally os.Stdin/os.Stdout, wired up in cmd/brewin.
type Stdio struct {
	Out io.Writer
	In  *bufio.Reader
}

// NewStdio wraps r/w as a Host.
func NewStdio(r io.Reader, w io.Writer) *Stdio {
	return &Stdio{Out: w, In: bufio.NewReader(r)}
}

func (s *Stdio) Output(line string) {
	fmt.Fprintln(s.Out, line)
}

func (s *Stdio) GetInput() (string, error) {
	line, err := s.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}
