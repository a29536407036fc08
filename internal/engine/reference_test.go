package engine

import (
	"sort"
	"testing"

	oracle "github.com/corentings/chess/v2"
	refchess "github.com/notnil/chess"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/testutil"
)

// A line of play without castling, en passant or promotion, so that every
// position along it is fully covered by our move rules.
var referenceLine = []string{
	"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "f3g5", "d7d5",
	"e4d5", "f6d5", "g5f7", "e8f7", "d1f3", "f7e6", "b1c3", "c6b4",
}

// unsupported reports moves our rules deliberately leave out: castling and
// en passant. Both are recognised from our own board before the move.
func unsupported(board *chess.Board, from, to chess.Position) bool {
	piece := board.PieceAt(from)
	switch piece.Kind() {
	case chess.King:
		return abs(int(to.File)-int(from.File)) == 2
	case chess.Pawn:
		return from.File != to.File && board.PieceAt(to).IsEmpty()
	}
	return false
}

func ourMoveSet(board *chess.Board, team chess.Team) []string {
	var out []string
	for _, m := range LegalMoves(board, team) {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func oracleMoveSet(t *testing.T, pos *oracle.Position, board *chess.Board) []string {
	t.Helper()
	seen := make(map[string]bool)
	for _, m := range pos.ValidMoves() {
		from := chess.MustParsePosition(m.S1().String())
		to := chess.MustParsePosition(m.S2().String())
		if unsupported(board, from, to) {
			continue
		}
		// Promotions appear once per piece; the squares are what we compare.
		seen[from.String()+to.String()] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func TestLegalMoves_MatchesReferenceLibrary(t *testing.T) {
	ref := oracle.NewGame()
	g := NewGame()

	for ply, s := range referenceLine {
		want := oracleMoveSet(t, ref.Position(), g.Board())
		got := ourMoveSet(g.Board(), g.ToMove())
		testutil.AssertEqual(t, got, want, "legal moves before ply %d (%s)", ply+1, s)

		move, err := oracle.UCINotation{}.Decode(ref.Position(), s)
		if err != nil {
			t.Fatalf("reference rejected %s at ply %d: %v", s, ply+1, err)
		}
		if err := ref.Move(move, nil); err != nil {
			t.Fatalf("reference Move(%s): %v", s, err)
		}
		playAll(t, g, s)
	}

	want := oracleMoveSet(t, ref.Position(), g.Board())
	testutil.AssertEqual(t, ourMoveSet(g.Board(), g.ToMove()), want, "legal moves at the end of the line")
}

func TestPositionStatus_MatchesReferenceLibrary(t *testing.T) {
	t.Run("fool's mate", func(t *testing.T) {
		ref := refchess.NewGame(refchess.UseNotation(refchess.UCINotation{}))
		g := NewGame()
		for _, s := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
			if err := ref.MoveStr(s); err != nil {
				t.Fatalf("reference MoveStr(%s): %v", s, err)
			}
			playAll(t, g, s)
		}
		testutil.AssertEqual(t, ref.Position().Status(), refchess.Checkmate)
		testutil.AssertEqual(t, g.Status(), Checkmate)
	})

	positions := []struct {
		name      string
		fen       string
		placement string
		team      chess.Team
		wantRef   refchess.Method
		want      Status
	}{
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "7k/5Q2/6K1/8/8/8/8/8", chess.Black, refchess.Stalemate, Stalemate},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", "R5k1/5ppp/8/8/8/8/8/6K1", chess.Black, refchess.Checkmate, Checkmate},
		{"check only", "4r2k/8/8/8/8/8/8/4K3 w - - 0 1", "4r2k/8/8/8/8/8/8/4K3", chess.White, refchess.NoMethod, Check},
	}

	for _, tt := range positions {
		t.Run(tt.name, func(t *testing.T) {
			fen, err := refchess.FEN(tt.fen)
			testutil.AssertNoError(t, err, "reference FEN")
			ref := refchess.NewGame(fen)
			testutil.AssertEqual(t, ref.Position().Status(), tt.wantRef)

			board := testutil.MustPlacement(t, tt.placement)
			testutil.AssertEqual(t, PositionStatus(board, tt.team), tt.want)
		})
	}
}
