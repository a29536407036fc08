package matching

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/processing"
)

// VariationMatcher matches games containing a run of consecutive moves.
type VariationMatcher struct {
	moveSequences [][]chess.Move
}

// NewVariationMatcher creates a new variation matcher.
func NewVariationMatcher() *VariationMatcher {
	return &VariationMatcher{}
}

// AddSequence adds a space-separated coordinate move sequence like
// "e2e4 e7e5 g1f3".
func (vm *VariationMatcher) AddSequence(line string) error {
	var seq []chess.Move
	for _, field := range strings.Fields(line) {
		m, err := chess.ParseMove(field)
		if err != nil {
			return fmt.Errorf("sequence %q: %w", line, err)
		}
		seq = append(seq, m)
	}
	if len(seq) > 0 {
		vm.moveSequences = append(vm.moveSequences, seq)
	}
	return nil
}

// LoadFromFile loads move sequences from a file, one per line.
// Blank lines and lines starting with '#' are skipped.
func (vm *VariationMatcher) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck // read-only file

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := vm.AddSequence(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// SequenceCount returns the number of sequences.
func (vm *VariationMatcher) SequenceCount() int {
	return len(vm.moveSequences)
}

// Match implements GameMatcher. Only moves actually played are considered.
func (vm *VariationMatcher) Match(r *processing.ReplayResult) bool {
	if len(vm.moveSequences) == 0 {
		return true
	}
	if r.Script == nil {
		return false
	}

	played := make([]chess.Move, 0, r.Plies())
	for i, sm := range r.Script.Moves {
		if i >= r.Plies() {
			break
		}
		played = append(played, sm.Move)
	}

	for _, seq := range vm.moveSequences {
		if containsRun(played, seq) {
			return true
		}
	}
	return false
}

// Name implements GameMatcher.
func (vm *VariationMatcher) Name() string {
	return "VariationMatcher"
}

func containsRun(played, seq []chess.Move) bool {
	for start := 0; start+len(seq) <= len(played); start++ {
		match := true
		for i, m := range seq {
			if played[start+i] != m {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
