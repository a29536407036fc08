// Package processing replays move scripts through the engine and analyzes
// the resulting journals.
package processing

import (
	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/journal"
)

// GameAnalysis summarizes a journal.
type GameAnalysis struct {
	Moves    int
	Captures int
	Checks   int // check entries, one per attacking piece
	Mated    bool

	// CapturesBy counts captures made by each team
	CapturesBy [2]int

	// DoubleChecks counts moves that left the king attacked by two pieces
	DoubleChecks int
}

// AnalyzeJournal walks the entries of j in order.
func AnalyzeJournal(j *journal.Journal) *GameAnalysis {
	analysis := &GameAnalysis{}
	checksThisMove := 0

	flush := func() {
		if checksThisMove > 1 {
			analysis.DoubleChecks++
		}
		checksThisMove = 0
	}

	for _, e := range j.Entries() {
		switch e := e.(type) {
		case journal.Move:
			flush()
			analysis.Moves++
		case journal.Capture:
			analysis.Captures++
			analysis.CapturesBy[e.By.Team()]++
		case journal.Check:
			analysis.Checks++
			checksThisMove++
		case journal.CheckMate:
			analysis.Checks++
			checksThisMove++
			analysis.Mated = true
		}
	}
	flush()

	return analysis
}

// CapturesByTeam returns how many pieces the team took.
func (ga *GameAnalysis) CapturesByTeam(t chess.Team) int {
	return ga.CapturesBy[t]
}
