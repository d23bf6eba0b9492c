package glyph

import "runtime"

// StageOption configures a Stage during creation.
type StageOption func(*stageOptions)

type stageOptions struct {
	tint RGB
}

func defaultStageOptions() stageOptions {
	return stageOptions{tint: DefaultTint()}
}

// WithTint sets the color emitted for every vertex.
//
// Example:
//
//	white := glyph.NewStage(glyph.WithTint(glyph.RGB{R: 1, G: 1, B: 1}))
func WithTint(c RGB) StageOption {
	return func(o *stageOptions) {
		o.tint = c
	}
}

// DispatchOption configures a Dispatcher during creation.
type DispatchOption func(*dispatchOptions)

// dispatchOptions holds optional configuration for Dispatcher creation.
type dispatchOptions struct {
	workers   int
	chunkSize int
}

// DefaultChunkSize is the number of vertices processed per pool task.
const DefaultChunkSize = 1024

func defaultDispatchOptions() dispatchOptions {
	return dispatchOptions{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
	}
}

// WithWorkers sets the number of pool workers.
// Values <= 0 keep the default (GOMAXPROCS).
func WithWorkers(n int) DispatchOption {
	return func(o *dispatchOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithChunkSize sets how many vertices one pool task processes.
// Inputs no longer than one chunk are processed on the calling goroutine.
// Values <= 0 keep [DefaultChunkSize].
func WithChunkSize(n int) DispatchOption {
	return func(o *dispatchOptions) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}
