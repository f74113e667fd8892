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

// Package tricolor defines the domain shared by the three-way partitioners
// in tricolor/contrib/partition.
//
// # Categories
//
// A token is a string. The tokens "red", "green" and "blue" map onto the
// closed Category enum, ordered Red < Green < Blue. Every other token is
// foreign and cannot take part in a sort.
//
// # Validation
//
// IsValidArray is the single definition of what can be sorted: a non-nil
// Sequence with at least two tokens, at least two distinct values, and no
// foreign tokens. Check reports why a Sequence was rejected.
//
// # Example Usage
//
//	seq := tricolor.Sequence{"blue", "red", "green"}
//	if tricolor.IsValidArray(seq) {
//	    counts := tricolor.Tally(seq)
//	    i, j := counts.Boundaries() // 1, 2
//	}
package tricolor
