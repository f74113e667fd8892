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

// Category is one of the three values a sortable token can take.
// The numeric order of the constants is the sort order.
type Category uint8

const (
	// Red sorts first.
	Red Category = iota

	// Green sorts between Red and Blue.
	Green

	// Blue sorts last.
	Blue
)

// NumCategories is the size of the closed category set.
const NumCategories = 3

// Categories lists every category in sort order.
var Categories = [NumCategories]Category{Red, Green, Blue}

// String returns the token spelling of the category.
func (c Category) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of Red, Green or Blue.
func (c Category) Valid() bool {
	return c < NumCategories
}

// ParseCategory classifies a token. Matching is exact: "Red" is foreign.
func ParseCategory(token string) (Category, bool) {
	switch token {
	case "red":
		return Red, true
	case "green":
		return Green, true
	case "blue":
		return Blue, true
	}
	return 0, false
}

// MustCategory is like ParseCategory but panics on a foreign token.
// Callers use it only on tokens that already passed IsValidArray.
func MustCategory(token string) Category {
	c, ok := ParseCategory(token)
	if !ok {
		panic("tricolor: foreign token " + token)
	}
	return c
}
