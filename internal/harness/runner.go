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
	"context"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"

	"github.com/ajroetker/go-tricolor/tricolor"
	"github.com/ajroetker/go-tricolor/tricolor/contrib/batch"
)

// equateEmpty makes a nil result match an empty expected list.
var equateEmpty = cmpopts.EquateEmpty()

// Runner calls a partitioner once per vector and compares the results.
type Runner struct {
	// Logger receives a summary per run and a debug entry per mismatch.
	// Nil disables logging.
	Logger *zap.Logger

	// Workers bounds how many vectors run at once; <= 0 uses GOMAXPROCS.
	Workers int
}

// Run applies fn to every vector input and returns the tally. The error is
// non-nil only when ctx is cancelled; mismatches are reported in the
// Report.
func (r *Runner) Run(ctx context.Context, name string, fn func(tricolor.Sequence) tricolor.Sequence, vectors []Vector) (*Report, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	inputs := make([]tricolor.Sequence, len(vectors))
	for i, v := range vectors {
		inputs[i] = v.Input
	}

	got, err := batch.Apply(ctx, fn, inputs, batch.WithWorkers(r.Workers))
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", name, err)
	}

	rep := &Report{Algorithm: name, Total: len(vectors)}
	for i, v := range vectors {
		diff := cmp.Diff(v.Want, got[i], equateEmpty)
		if diff == "" {
			rep.Passed++
			continue
		}
		rep.Failed++
		rep.Failures = append(rep.Failures, Failure{
			Index: i + 1,
			Name:  v.Name,
			Input: v.Input,
			Want:  v.Want,
			Got:   got[i],
			Diff:  diff,
		})
		log.Debug("Vector mismatch",
			zap.String("algorithm", name),
			zap.Int("case", i+1),
			zap.String("vector", v.Name),
			zap.Stringer("want", v.Want),
			zap.Stringer("got", got[i]))
	}

	log.Info("Vectors checked",
		zap.String("algorithm", name),
		zap.Int("passed", rep.Passed),
		zap.Int("failed", rep.Failed))
	return rep, nil
}
