package processing

import (
	stderrors "errors"
	"testing"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/config"
	"github.com/pawn-chess/pawn/internal/engine"
	"github.com/pawn-chess/pawn/internal/errors"
	"github.com/pawn-chess/pawn/internal/journal"
	"github.com/pawn-chess/pawn/internal/parser"
	"github.com/pawn-chess/pawn/internal/testutil"
)

const foolsMate = "f2f3\ne7e5\ng2g4\nd8h4\n"

func mustScript(t *testing.T, text string) *parser.Script {
	t.Helper()
	script, err := parser.ParseString("test.txt", text)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return script
}

// TestReplayScript_Checkmate verifies a script ending in mate
func TestReplayScript_Checkmate(t *testing.T) {
	result := ReplayScript(mustScript(t, foolsMate), 0)

	testutil.AssertTrue(t, result.Valid(), "replay failed: %v", result.Err)
	testutil.AssertEqual(t, result.Name, "test.txt")
	testutil.AssertEqual(t, result.Status(), engine.Checkmate)
	testutil.AssertEqual(t, result.Plies(), 4)
	testutil.AssertFalse(t, result.Truncated)
	testutil.AssertEqual(t, *result.Analysis, GameAnalysis{Moves: 4, Checks: 1, Mated: true})
}

// TestReplayScript_Captures verifies capture counting per team
func TestReplayScript_Captures(t *testing.T) {
	result := ReplayScript(mustScript(t, "e2e4\nd7d5\ne4d5\nd8d5\n"), 0)

	testutil.AssertTrue(t, result.Valid())
	testutil.AssertEqual(t, result.Analysis.Moves, 4)
	testutil.AssertEqual(t, result.Analysis.Captures, 2)
	testutil.AssertEqual(t, result.Analysis.CapturesByTeam(chess.White), 1)
	testutil.AssertEqual(t, result.Analysis.CapturesByTeam(chess.Black), 1)
	testutil.AssertEqual(t, result.Game.Board().CapturedPieces(), []chess.Piece{chess.B(chess.Pawn), chess.W(chess.Pawn)})
}

// TestReplayScript_Rejected verifies the first rejected move stops the replay
func TestReplayScript_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantErr   error
		wantLine  int
		wantPly   int
		wantMove  string
		wantPlies int
	}{
		{"blocked", "e2e4\n# reply\ne7e5\ne1e3\ng1f3\n", errors.ErrBlocked, 4, 3, "e1e3", 2},
		{"out of turn", "e7e5\n", errors.ErrOutOfTurn, 1, 1, "e7e5", 0},
		{"after mate", foolsMate + "e1f2\n", errors.ErrGameOver, 5, 5, "e1f2", 4},
		{"pinned bishop", "e2e4\nd7d5\nf1b5\nc8d7\na2a3\nd7e6\n", errors.ErrSelfCheck, 6, 6, "d7e6", 5},
		{"empty source", "e2-e4\ne5-e4\n", errors.ErrEmptySource, 2, 2, "e5-e4", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReplayScript(mustScript(t, tt.text), 0)

			testutil.AssertFalse(t, result.Valid())
			testutil.AssertErrorIs(t, result.Err, tt.wantErr)

			var moveErr *errors.MoveError
			if !stderrors.As(result.Err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", result.Err)
			}
			testutil.AssertEqual(t, moveErr.File, "test.txt")
			testutil.AssertEqual(t, moveErr.Line, tt.wantLine)
			testutil.AssertEqual(t, moveErr.Ply, tt.wantPly)
			testutil.AssertEqual(t, moveErr.Move, tt.wantMove)
			testutil.AssertEqual(t, result.Plies(), tt.wantPlies)
			testutil.AssertEqual(t, result.Analysis.Moves, tt.wantPlies)
		})
	}
}

// TestReplayScript_PlyLimit verifies truncation
func TestReplayScript_PlyLimit(t *testing.T) {
	result := ReplayScript(mustScript(t, foolsMate), 2)
	testutil.AssertTrue(t, result.Truncated)
	testutil.AssertEqual(t, result.Plies(), 2)
	testutil.AssertEqual(t, result.Status(), engine.Ongoing)

	result = ReplayScript(mustScript(t, foolsMate), 4)
	testutil.AssertFalse(t, result.Truncated)
	testutil.AssertEqual(t, result.Status(), engine.Checkmate)
}

// TestAnalyzeJournal_DoubleCheck verifies checks are grouped by move
func TestAnalyzeJournal_DoubleCheck(t *testing.T) {
	j := journal.New()
	knight, rook := chess.W(chess.Knight), chess.W(chess.Rook)
	j.Append(journal.Move{Piece: knight, From: testutil.Sq("e4"), To: testutil.Sq("d6")})
	j.Append(journal.Check{Attacker: rook, AttackerAt: testutil.Sq("e1"), King: testutil.Sq("e8")})
	j.Append(journal.Check{Attacker: knight, AttackerAt: testutil.Sq("d6"), King: testutil.Sq("e8")})
	j.Append(journal.Move{Piece: chess.B(chess.King), From: testutil.Sq("e8"), To: testutil.Sq("d7")})

	analysis := AnalyzeJournal(j)
	testutil.AssertEqual(t, analysis.Moves, 2)
	testutil.AssertEqual(t, analysis.Checks, 2)
	testutil.AssertEqual(t, analysis.DoubleChecks, 1)
	testutil.AssertFalse(t, analysis.Mated)
}

// TestMatches verifies filter evaluation
func TestMatches(t *testing.T) {
	mate := ReplayScript(mustScript(t, foolsMate), 0)
	quiet := ReplayScript(mustScript(t, "e2e4\ne7e5\n"), 0)
	check := ReplayScript(mustScript(t, "e2e4\nd7d5\nf1b5\nc7c6\n"), 0)
	failed := ReplayScript(mustScript(t, "e7e5\n"), 0)

	tests := []struct {
		name   string
		filter *config.FilterConfig
		result *ReplayResult
		want   bool
	}{
		{"nil filter", nil, quiet, true},
		{"inactive filter", &config.FilterConfig{}, quiet, true},
		{"failed never matches", &config.FilterConfig{}, failed, false},
		{"failed never matches negated", &config.FilterConfig{Negate: true}, failed, false},
		{"checkmate wanted", &config.FilterConfig{MatchCheckmate: true}, mate, true},
		{"checkmate missing", &config.FilterConfig{MatchCheckmate: true}, quiet, false},
		{"checkmate or stalemate", &config.FilterConfig{MatchCheckmate: true, MatchStalemate: true}, mate, true},
		{"stalemate missing", &config.FilterConfig{MatchStalemate: true}, mate, false},
		{"any check", &config.FilterConfig{MatchCheck: true}, check, true},
		{"mate counts as check", &config.FilterConfig{MatchCheck: true}, mate, true},
		{"no check", &config.FilterConfig{MatchCheck: true}, quiet, false},
		{"negated", &config.FilterConfig{MatchCheckmate: true, Negate: true}, quiet, true},
		{"within ply bounds", &config.FilterConfig{CheckPlyBounds: true, MinPly: 2, MaxPly: 4}, mate, true},
		{"below min ply", &config.FilterConfig{CheckPlyBounds: true, MinPly: 3}, quiet, false},
		{"above max ply", &config.FilterConfig{CheckPlyBounds: true, MaxPly: 3}, mate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Matches(tt.result, tt.filter), tt.want)
		})
	}
}
