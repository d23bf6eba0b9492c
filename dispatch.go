package glyph

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/glyph/internal/parallel"
)

// Dispatcher applies a Stage to whole vertex batches, one independent
// invocation per vertex, spread over a worker pool.
//
// Dispatcher is safe for concurrent use. Call Close to stop its workers.
type Dispatcher struct {
	stage     *Stage
	pool      *parallel.Pool
	chunkSize int
	closed    atomic.Bool
}

// NewDispatcher creates a dispatcher for stage. A nil stage uses NewStage().
//
// Example:
//
//	d := glyph.NewDispatcher(nil, glyph.WithWorkers(4))
//	defer d.Close()
//	out := make([]glyph.Output, len(vertices))
//	err := d.Run(ctx, draw, vertices, out)
func NewDispatcher(stage *Stage, opts ...DispatchOption) *Dispatcher {
	if stage == nil {
		stage = NewStage()
	}
	o := defaultDispatchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Dispatcher{
		stage:     stage,
		pool:      parallel.NewPool(o.workers),
		chunkSize: o.chunkSize,
	}
}

// Stage returns the stage the dispatcher runs.
func (d *Dispatcher) Stage() *Stage {
	return d.stage
}

// Run computes out[i] from in[i] for every input vertex using transform t.
//
// t is copied before any invocation starts, so every vertex of the batch
// sees the same transform. If ctx is canceled the batch is abandoned as a
// whole: Run returns ctx.Err() and the content of out is unspecified.
func (d *Dispatcher) Run(ctx context.Context, t Transform, in []Vertex, out []Output) error {
	if d.closed.Load() {
		return ErrDispatcherClosed
	}
	if len(out) < len(in) {
		return fmt.Errorf("%w: %d inputs, %d outputs", ErrOutputTooSmall, len(in), len(out))
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(in) == 0 {
		return nil
	}

	tint := d.stage.tint

	if len(in) <= d.chunkSize {
		for i := range in {
			out[i] = run(&t, in[i], tint)
		}
		return nil
	}

	tasks := make([]func(), 0, (len(in)+d.chunkSize-1)/d.chunkSize)
	for start := 0; start < len(in); start += d.chunkSize {
		end := min(start+d.chunkSize, len(in))
		src, dst := in[start:end], out[start:end]
		tasks = append(tasks, func() {
			if ctx.Err() != nil {
				return
			}
			for i := range src {
				dst[i] = run(&t, src[i], tint)
			}
		})
	}

	Logger().Debug("glyph: dispatch",
		"vertices", len(in), "chunks", len(tasks), "workers", d.pool.Workers())

	if err := d.pool.Execute(tasks); err != nil {
		if errors.Is(err, parallel.ErrPoolClosed) {
			return ErrDispatcherClosed
		}
		return err
	}
	return ctx.Err()
}

// Close stops the worker pool. Close is safe to call multiple times.
func (d *Dispatcher) Close() {
	if d.closed.CompareAndSwap(false, true) {
		d.pool.Close()
	}
}
