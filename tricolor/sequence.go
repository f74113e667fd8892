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

import (
	"slices"
	"strings"
	"unicode"
)

// Sequence is an ordered list of tokens. A token is either the spelling of
// a Category or a foreign symbol.
type Sequence []string

// Clone returns a freshly allocated copy that never aliases s.
// A nil Sequence clones to nil and an empty one to a non-nil empty one.
func (s Sequence) Clone() Sequence {
	return slices.Clone(s)
}

// Equal reports element-wise, order-sensitive equality.
// Nil and empty sequences are equal.
func (s Sequence) Equal(other Sequence) bool {
	return slices.Equal(s, other)
}

// String formats the sequence as "[red green blue]".
func (s Sequence) String() string {
	return "[" + strings.Join(s, " ") + "]"
}

// ParseSequence splits text on commas and whitespace into tokens.
// Empty fields are dropped, so "" parses to an empty, non-nil Sequence.
func ParseSequence(text string) Sequence {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if fields == nil {
		return Sequence{}
	}
	return Sequence(fields)
}
