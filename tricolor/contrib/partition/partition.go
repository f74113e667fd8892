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

// OverrideColors returns a copy of colors sorted red, green, blue by
// counting each category and overwriting the copy region by region.
//
// Rejected input (see tricolor.IsValidArray) is returned as an unmodified
// copy. The caller's sequence is never written.
func OverrideColors(colors tricolor.Sequence) tricolor.Sequence {
	out := colors.Clone()
	if !tricolor.IsValidArray(out) {
		return out
	}

	counts := tricolor.Tally(out)
	start := 0
	for _, cat := range tricolor.Categories {
		end := start + counts.Of(cat)
		fill(out[start:end], cat.String())
		start = end
	}
	return out
}

// PointersSort returns a copy of colors sorted red, green, blue in a
// single pass with three indices (Dutch National Flag).
//
// Rejected input (see tricolor.IsValidArray) is returned as an unmodified
// copy. The caller's sequence is never written.
func PointersSort(colors tricolor.Sequence) tricolor.Sequence {
	out := colors.Clone()
	if !tricolor.IsValidArray(out) {
		return out
	}

	ThreeWay([]string(out), tricolor.MustCategory)
	return out
}
