// Copyright 2025 go-tricolor Authors
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

package harness

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ajroetker/go-tricolor/tricolor"
)

// Report is the outcome of one Runner.Run.
type Report struct {
	Algorithm string
	Total     int
	Passed    int
	Failed    int
	Failures  []Failure
}

// Failure records a vector whose result differed from its expected output.
// Index is 1-based.
type Failure struct {
	Index int
	Name  string
	Input tricolor.Sequence
	Want  tricolor.Sequence
	Got   tricolor.Sequence
	Diff  string
}

// OK reports whether every vector passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// WriteTo dumps every failure (input, expected, result) followed by the
// pass/fail tally.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	fmt.Fprintf(cw, "=== %s: %d vectors\n", r.Algorithm, r.Total)
	for _, f := range r.Failures {
		fmt.Fprintf(cw, "Test case %d (%s): failed\n", f.Index, f.Name)
		fmt.Fprintf(cw, "    initial:  %v\n", f.Input)
		fmt.Fprintf(cw, "    expected: %v\n", f.Want)
		fmt.Fprintf(cw, "    result:   %v\n", f.Got)
	}
	fmt.Fprintf(cw, "%d tests passed, %d failed\n", r.Passed, r.Failed)

	if err := cw.w.Flush(); err != nil && cw.err == nil {
		cw.err = err
	}
	return cw.n, cw.err
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
