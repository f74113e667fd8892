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

package partition

import "github.com/ajroetker/go-tricolor/tricolor"

// Result is the outcome of Sort. When Sorted is false, Sequence is an
// unmodified copy of the input and Reason says why.
type Result struct {
	Sequence tricolor.Sequence
	Sorted   bool
	Reason   tricolor.Reason
}

// Sort runs alg on colors and reports whether it partitioned anything.
func Sort(alg Algorithm, colors tricolor.Sequence) Result {
	reason := tricolor.Classify(colors)
	if reason != tricolor.ReasonNone {
		return Result{Sequence: colors.Clone(), Reason: reason}
	}
	return Result{Sequence: alg.Func()(colors), Sorted: true}
}

// Strict runs alg on colors. A rejected sequence yields the unmodified
// copy together with a *tricolor.RejectError.
func Strict(alg Algorithm, colors tricolor.Sequence) (tricolor.Sequence, error) {
	if err := tricolor.Check(colors); err != nil {
		return colors.Clone(), err
	}
	return alg.Func()(colors), nil
}
