package processing

import (
	"github.com/pawn-chess/pawn/internal/config"
	"github.com/pawn-chess/pawn/internal/engine"
	"github.com/pawn-chess/pawn/internal/errors"
	"github.com/pawn-chess/pawn/internal/parser"
)

// ReplayResult holds the outcome of replaying one script.
type ReplayResult struct {
	Name     string
	Script   *parser.Script
	Game     *engine.Game
	Analysis *GameAnalysis

	// Truncated is set when a ply limit stopped the replay early
	Truncated bool

	// Err is a *errors.MoveError for the first rejected move, if any
	Err error
}

// Status returns the status of the final position.
func (r *ReplayResult) Status() engine.Status {
	return r.Game.Status()
}

// Plies returns the number of moves actually played.
func (r *ReplayResult) Plies() int {
	return r.Game.Ply()
}

// Valid reports whether every played move was accepted.
func (r *ReplayResult) Valid() bool {
	return r.Err == nil
}

// ReplayScript plays the script from the initial position on a fresh game.
// Replay stops at the first rejected move or after plyLimit moves when
// plyLimit is positive. The game is returned in whatever state it reached.
func ReplayScript(script *parser.Script, plyLimit int) *ReplayResult {
	game := engine.NewGame()
	result := &ReplayResult{Name: script.Name, Script: script, Game: game}

	for i, sm := range script.Moves {
		if plyLimit > 0 && i >= plyLimit {
			result.Truncated = true
			break
		}
		if _, err := game.PlayMove(sm.Move); err != nil {
			result.Err = &errors.MoveError{
				Err:  err,
				File: script.Name,
				Line: sm.Line,
				Ply:  i + 1,
				Move: sm.Text,
			}
			break
		}
	}

	result.Analysis = AnalyzeJournal(game.Journal())
	return result
}

// Matches reports whether a successful replay passes the filter's ending
// and ply criteria. Failed replays never match. Positional criteria are
// evaluated by the matching package.
func Matches(r *ReplayResult, f *config.FilterConfig) bool {
	if !r.Valid() {
		return false
	}
	if f == nil || !f.Active() {
		return true
	}
	return MatchesCriteria(r, f) != f.Negate
}

// MatchesCriteria evaluates the ending and ply criteria without negation.
func MatchesCriteria(r *ReplayResult, f *config.FilterConfig) bool {
	if f.MatchCheckmate || f.MatchStalemate {
		status := r.Status()
		mated := f.MatchCheckmate && status == engine.Checkmate
		stalemated := f.MatchStalemate && status == engine.Stalemate
		if !mated && !stalemated {
			return false
		}
	}
	if f.MatchCheck && r.Analysis.Checks == 0 {
		return false
	}
	if f.CheckPlyBounds {
		plies := r.Plies()
		if plies < f.MinPly || (f.MaxPly > 0 && plies > f.MaxPly) {
			return false
		}
	}
	return true
}
