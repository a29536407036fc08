// Package worker replays independent scripts in parallel.
package worker

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pawn-chess/pawn/internal/parser"
	"github.com/pawn-chess/pawn/internal/processing"
)

// WorkItem is one script queued for replay.
type WorkItem struct {
	Script *parser.Script
	Index  int // position in the input, used to restore order
}

// ProcessResult is the replay of one WorkItem.
type ProcessResult struct {
	Index  int
	Replay *processing.ReplayResult
	Error  error // first rejected move, copied from Replay.Err
}

// ProcessFunc turns a work item into its result.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed set of goroutines. Every item builds its
// own game, so workers share only the two channels.
type Pool struct {
	workers int
	buffer  int
	work    chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines; n <= 0 means one per CPU.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		p.workers = resolveWorkers(n)
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

func resolveWorkers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// NewPool creates a pool running process. Defaults: one worker per CPU and
// a buffer of 10.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: runtime.NumCPU(),
		buffer:  10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for item := range p.work {
				if p.IsStopped() {
					continue // drain without replaying
				}
				p.results <- p.process(item)
			}
		}()
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Stop makes workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop was called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and closes Results.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results delivers results in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.workers
}
