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

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-tricolor/tricolor"
)

// Func is the contract shared by OverrideColors and PointersSort.
type Func func(tricolor.Sequence) tricolor.Sequence

// Algorithm selects a partitioner.
type Algorithm int

const (
	// Counting selects OverrideColors.
	Counting Algorithm = iota

	// Pointers selects PointersSort.
	Pointers
)

var allAlgorithms = []Algorithm{Counting, Pointers}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), allAlgorithms...)
}

// AlgorithmNames returns the String of every algorithm.
func AlgorithmNames() []string {
	return lo.Map(allAlgorithms, func(a Algorithm, _ int) string {
		return a.String()
	})
}

// String returns the short name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Counting:
		return "counting"
	case Pointers:
		return "pointers"
	default:
		return "unknown"
	}
}

// Func returns the partition function for a. Unknown values fall back to
// OverrideColors.
func (a Algorithm) Func() Func {
	if a == Pointers {
		return PointersSort
	}
	return OverrideColors
}

// ParseAlgorithm accepts the short names and the function names,
// case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "counting", "overridecolors":
		return Counting, nil
	case "pointers", "pointerssort":
		return Pointers, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q (want one of %s)", name, strings.Join(AlgorithmNames(), ", "))
}
