// Package parallel provides the worker pool used to run the vertex stage
// over large vertex batches.
package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrPoolClosed is returned by Execute after Close.
var ErrPoolClosed = errors.New("parallel: pool is closed")

// Pool is a fixed set of goroutines that execute batch tasks.
//
// Each worker owns a queue. Tasks are spread round-robin across the queues;
// an idle worker steals from the other queues before blocking on its own.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()

	// mu is held for reading by Execute and for writing by Close, so Close
	// waits for in-flight batches.
	mu      sync.RWMutex
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case task := <-own:
			task()
			continue
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case task := <-own:
			task()
		}
	}
}

func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// Execute runs every task on the pool and waits for all of them.
// Tasks may run in any order and on any worker.
func (p *Pool) Execute(tasks []func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running.Load() {
		return ErrPoolClosed
	}
	if len(tasks) == 0 {
		return nil
	}

	var pending sync.WaitGroup
	pending.Add(len(tasks))

	for i, fn := range tasks {
		wrapped := func() {
			defer pending.Done()
			if fn != nil {
				fn()
			}
		}
		p.queues[i%p.workers] <- wrapped
	}

	pending.Wait()
	return nil
}

// Close waits for running batches, then stops the workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
