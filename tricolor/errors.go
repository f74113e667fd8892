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
	"errors"
	"fmt"
)

// ErrUnsortable is wrapped by every rejection sentinel.
var ErrUnsortable = errors.New("sequence is not sortable")

var (
	ErrAbsent       = fmt.Errorf("%w: absent", ErrUnsortable)
	ErrTooShort     = fmt.Errorf("%w: fewer than two tokens", ErrUnsortable)
	ErrDegenerate   = fmt.Errorf("%w: all tokens identical", ErrUnsortable)
	ErrForeignToken = fmt.Errorf("%w: foreign token", ErrUnsortable)
)

// Reason says why the validator rejected a Sequence.
type Reason int

const (
	// ReasonNone means the sequence is sortable.
	ReasonNone Reason = iota
	ReasonAbsent
	ReasonTooShort
	ReasonDegenerate
	ReasonForeignToken
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonAbsent:
		return "absent"
	case ReasonTooShort:
		return "too-short"
	case ReasonDegenerate:
		return "degenerate"
	case ReasonForeignToken:
		return "foreign-token"
	default:
		return "unknown"
	}
}

// Sentinel returns the sentinel error for r, or nil for ReasonNone.
func (r Reason) Sentinel() error {
	switch r {
	case ReasonAbsent:
		return ErrAbsent
	case ReasonTooShort:
		return ErrTooShort
	case ReasonDegenerate:
		return ErrDegenerate
	case ReasonForeignToken:
		return ErrForeignToken
	default:
		return nil
	}
}

// RejectError describes a rejected Sequence. Index and Token are set only
// for ReasonForeignToken and name the first foreign token.
type RejectError struct {
	Reason Reason
	Index  int
	Token  string
}

func (e *RejectError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason == ReasonForeignToken {
		return fmt.Sprintf("%s %q at index %d", ErrForeignToken.Error(), e.Token, e.Index)
	}
	if s := e.Reason.Sentinel(); s != nil {
		return s.Error()
	}
	return ErrUnsortable.Error()
}

func (e *RejectError) Unwrap() error {
	if s := e.Reason.Sentinel(); s != nil {
		return s
	}
	return ErrUnsortable
}
