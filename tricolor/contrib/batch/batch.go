// Copyright 2025 The go-tricolor Authors. SPDX-License-Identifier: Apache-2.0

// Package batch applies a partitioner to many independent sequences in
// parallel. Each partition call owns its defensive copy, so calls share no
// state and need no locking.
//
// Usage:
//
//	out, err := batch.Apply(ctx, partition.PointersSort, inputs,
//	    batch.WithWorkers(runtime.GOMAXPROCS(0)))
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-tricolor/tricolor"
)

// Func is the per-sequence operation applied by Apply.
type Func func(tricolor.Sequence) tricolor.Sequence

type options struct {
	workers int
}

// Option configures Apply.
type Option func(*options)

// WithWorkers bounds the number of goroutines. n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Apply runs fn on every element of seqs and returns the results in input
// order. It blocks until all work completes. If ctx is cancelled first,
// items not yet started are skipped and ctx.Err() is returned.
func Apply(ctx context.Context, fn Func, seqs []tricolor.Sequence, opts ...Option) ([]tricolor.Sequence, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	out := make([]tricolor.Sequence, len(seqs))
	if len(seqs) == 0 {
		return out, ctx.Err()
	}

	// Don't use more workers than items
	workers := min(o.workers, len(seqs))
	if workers == 1 {
		for i, seq := range seqs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = fn(seq)
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seq := range seqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = fn(seq)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
