// processor.go - Script loading, replay and result output
package main

import (
	"fmt"
	"io"

	"github.com/pawn-chess/pawn/internal/config"
	"github.com/pawn-chess/pawn/internal/hashing"
	"github.com/pawn-chess/pawn/internal/matching"
	"github.com/pawn-chess/pawn/internal/output"
	"github.com/pawn-chess/pawn/internal/parser"
	"github.com/pawn-chess/pawn/internal/processing"
	"github.com/pawn-chess/pawn/internal/worker"
)

// RunStats summarizes one run.
type RunStats struct {
	Replayed   int
	Matched    int
	Failed     int
	Duplicates int
}

// loadScripts parses every input. With no inputs the script is read from
// stdin. Scripts that fail to parse are logged and counted as failures.
func loadScripts(cfg *config.Config, inputs []string, stdin io.Reader) ([]*parser.Script, int) {
	if len(inputs) == 0 {
		script, err := parser.NewParser(stdin, "stdin").ParseScript()
		if err != nil {
			logError(cfg, err)
			return nil, 1
		}
		return []*parser.Script{script}, 0
	}

	var scripts []*parser.Script
	failed := 0
	for _, path := range inputs {
		script, err := parser.ParseFile(path)
		if err != nil {
			logError(cfg, err)
			failed++
			if cfg.StopOnError {
				break
			}
			continue
		}
		scripts = append(scripts, script)
	}
	return scripts, failed
}

// run replays the inputs and writes every failed or matching result.
func run(cfg *config.Config, inputs []string, stdin io.Reader) RunStats {
	scripts, parseFailures := loadScripts(cfg, inputs, stdin)
	stats := RunStats{Failed: parseFailures}
	if parseFailures > 0 && cfg.StopOnError {
		summarize(cfg, stats)
		return stats
	}

	filter, err := matching.NewGameFilter(cfg.Filter)
	if err != nil {
		logError(cfg, err)
		stats.Failed++
		summarize(cfg, stats)
		return stats
	}

	results := worker.ReplayAll(scripts, worker.ReplayOptions{
		Workers:     cfg.Workers,
		PlyLimit:    cfg.PlyLimit,
		StopOnError: cfg.StopOnError,
	})

	// Duplicates are decided here, in input order, not by the workers.
	var detector *hashing.DuplicateDetector
	if cfg.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(cfg.ExactDuplicates, 0)
	}

	w := output.NewWriter(cfg.OutputFile, cfg.Output)
	for _, result := range results {
		r := result.Replay
		stats.Replayed++
		if cfg.Verbosity >= 2 {
			commentary(cfg.LogFile, r)
		}

		switch {
		case result.Error != nil:
			stats.Failed++
			logError(cfg, result.Error)
		case !filter.Match(r):
			continue
		case detector != nil && detector.CheckAndAdd(r.Game):
			stats.Duplicates++
			continue
		default:
			stats.Matched++
		}

		if err := w.WriteResult(r); err != nil {
			logError(cfg, fmt.Errorf("writing %s: %w", r.Name, err))
		}
	}
	if err := w.Close(); err != nil {
		logError(cfg, fmt.Errorf("writing output: %w", err))
	}

	summarize(cfg, stats)
	return stats
}

// commentary writes the per-move journal of a replay to the log.
func commentary(w io.Writer, r *processing.ReplayResult) {
	fmt.Fprintf(w, "%s:\n", r.Name)
	for _, entry := range r.Game.Journal().Entries() {
		fmt.Fprintf(w, "  %v\n", entry)
	}
}

func logError(cfg *config.Config, err error) {
	if cfg.Verbosity >= 1 {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
	}
}

func summarize(cfg *config.Config, stats RunStats) {
	if cfg.Verbosity >= 1 {
		fmt.Fprintf(cfg.LogFile, "%d script(s) replayed, %d matched, %d failed.\n",
			stats.Replayed, stats.Matched, stats.Failed)
		if stats.Duplicates > 0 {
			fmt.Fprintf(cfg.LogFile, "%d duplicate(s) suppressed.\n", stats.Duplicates)
		}
	}
}
