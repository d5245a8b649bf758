// Package worker runs move tree counts on a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// WorkItem is one root move whose subtree is to be counted.
type WorkItem struct {
	Move  chess.Move
	Depth int // Remaining depth below Move
	Index int // Position of Move in the root move list
}

// ProcessResult is the outcome of processing a WorkItem.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Err   error
}

// ProcessFunc counts one item. It runs on a worker goroutine and must not
// touch state shared with other items.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool counts work items on a fixed number of goroutines.
type Pool struct {
	workers int
	buffer  int
	process ProcessFunc
	stopped atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the work and result channel capacity. Values below
// 1 are ignored.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool running process. Default: 1 worker, buffer 10.
func NewPool(process ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		workers: 1,
		buffer:  10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Stop makes workers skip every item they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Run processes items and returns their results ordered by
// WorkItem.Index, which must lie in [0, len(items)). The first result
// carrying an error stops the pool; skipped items leave a zero result in
// their slot.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	work := make(chan WorkItem, p.buffer)
	done := make(chan ProcessResult, p.buffer)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				if p.IsStopped() {
					continue // Drain without processing
				}
				done <- p.process(item)
			}
		}()
	}

	go func() {
		for _, item := range items {
			work <- item
		}
		close(work)
		wg.Wait()
		close(done)
	}()

	results := make([]ProcessResult, len(items))
	for result := range done {
		if result.Err != nil {
			p.Stop()
		}
		results[result.Index] = result
	}
	return results
}
