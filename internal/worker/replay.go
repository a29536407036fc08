package worker

import (
	"github.com/pawn-chess/pawn/internal/parser"
	"github.com/pawn-chess/pawn/internal/processing"
)

// ReplayFunc returns a ProcessFunc that replays each script on a fresh game.
func ReplayFunc(plyLimit int) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		replay := processing.ReplayScript(item.Script, plyLimit)
		return ProcessResult{Index: item.Index, Replay: replay, Error: replay.Err}
	}
}

// ReplayOptions controls ReplayAll.
type ReplayOptions struct {
	Workers     int // 0 means one per CPU
	PlyLimit    int
	StopOnError bool
}

// ReplayAll replays every script and returns the results in input order.
// With StopOnError, scripts not yet started when the first failure arrives
// are skipped and absent from the result.
//
// Concurrency model: workers replay in parallel, but all results are
// consumed by the calling goroutine, which alone writes the result slice.
func ReplayAll(scripts []*parser.Script, opts ReplayOptions) []ProcessResult {
	if len(scripts) == 0 {
		return nil
	}

	pool := NewPool(ReplayFunc(opts.PlyLimit),
		WithWorkers(min(resolveWorkers(opts.Workers), len(scripts))),
		WithBufferSize(min(len(scripts), 100)))
	pool.Start()

	go func() {
		for i, script := range scripts {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Script: script, Index: i})
		}
		pool.Close()
	}()

	slots := make([]*ProcessResult, len(scripts))
	for result := range pool.Results() {
		slots[result.Index] = &result
		if opts.StopOnError && result.Error != nil {
			pool.Stop()
		}
	}

	ordered := make([]ProcessResult, 0, len(scripts))
	for _, r := range slots {
		if r != nil {
			ordered = append(ordered, *r)
		}
	}
	return ordered
}
