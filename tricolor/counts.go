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

package tricolor

// Counts holds the number of tokens per Category, indexed by Category.
type Counts [NumCategories]int

// Tally counts the valid tokens of seq. Foreign tokens are skipped, so
// Total equals len(seq) only for sequences without foreign tokens.
func Tally(seq Sequence) Counts {
	var c Counts
	for _, tok := range seq {
		if cat, ok := ParseCategory(tok); ok {
			c[cat]++
		}
	}
	return c
}

// Of returns the count for cat.
func (c Counts) Of(cat Category) int {
	return c[cat]
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Start returns the index at which the block of cat begins in a
// partitioned sequence with these counts.
func (c Counts) Start(cat Category) int {
	start := 0
	for _, prev := range Categories[:cat] {
		start += c[prev]
	}
	return start
}

// Boundaries returns the partition boundaries (i, j): the red block is
// [0, i), green is [i, j) and blue is [j, Total()).
func (c Counts) Boundaries() (i, j int) {
	return c.Start(Green), c.Start(Blue)
}
