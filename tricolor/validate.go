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

import "github.com/samber/lo"

// IsValidArray reports whether seq can be partitioned. It returns false
// for a nil sequence, a sequence of length <= 1, a sequence whose tokens
// are all identical, and a sequence holding a foreign token.
func IsValidArray(seq Sequence) bool {
	return Classify(seq) == ReasonNone
}

// Classify returns ReasonNone for a sortable sequence and otherwise the
// first rejection reason, checked in the order absent, too short,
// degenerate, foreign. ["yellow" "yellow"] is therefore degenerate.
func Classify(seq Sequence) Reason {
	reason, _ := classify(seq)
	return reason
}

// Check is Classify reported as an error: nil when seq is sortable,
// otherwise a *RejectError wrapping the sentinel for the reason.
func Check(seq Sequence) error {
	reason, at := classify(seq)
	if reason == ReasonNone {
		return nil
	}
	err := &RejectError{Reason: reason}
	if reason == ReasonForeignToken {
		err.Index = at
		err.Token = seq[at]
	}
	return err
}

// classify also returns the index of the first foreign token.
func classify(seq Sequence) (Reason, int) {
	if seq == nil {
		return ReasonAbsent, -1
	}
	if len(seq) <= 1 {
		return ReasonTooShort, -1
	}
	if allElementsEqual(seq) {
		return ReasonDegenerate, -1
	}
	_, at, found := lo.FindIndexOf([]string(seq), isForeign)
	if found {
		return ReasonForeignToken, at
	}
	return ReasonNone, -1
}

func allElementsEqual(seq Sequence) bool {
	first := seq[0]
	return lo.EveryBy([]string(seq[1:]), func(tok string) bool {
		return tok == first
	})
}

func isForeign(tok string) bool {
	_, ok := ParseCategory(tok)
	return !ok
}
