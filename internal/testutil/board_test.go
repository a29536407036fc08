package testutil

import (
	"testing"

	"github.com/pawn-chess/pawn/internal/chess"
)

func TestParsePlacement(t *testing.T) {
	t.Run("initial position", func(t *testing.T) {
		board := MustPlacement(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
		if !board.Equal(chess.NewBoard()) {
			t.Errorf("placement differs from the initial board:\n%s", board)
		}
	})

	t.Run("sparse position", func(t *testing.T) {
		board := MustPlacement(t, "4k3/8/8/3q4/8/8/8/R3K3")
		AssertEqual(t, board.Occupied(), 4)
		AssertEqual(t, board.PieceAt(Sq("e8")), chess.B(chess.King))
		AssertEqual(t, board.PieceAt(Sq("d5")), chess.B(chess.Queen))
		AssertEqual(t, board.PieceAt(Sq("a1")), chess.W(chess.Rook))
		AssertEqual(t, board.PieceAt(Sq("e1")), chess.W(chess.King))
	})

	t.Run("invalid placements", func(t *testing.T) {
		invalid := []string{
			"",
			"8/8/8/8/8/8/8",
			"8/8/8/8/8/8/8/7",
			"8/8/8/8/8/8/8/9",
			"8/8/8/8/8/8/8/4X3",
			"8/8/8/8/8/8/8/RNBQKBNRR",
		}
		for _, p := range invalid {
			if _, err := ParsePlacement(p); err == nil {
				t.Errorf("ParsePlacement(%q) = nil error, want error", p)
			}
		}
	})
}

func TestPieceFromLetter(t *testing.T) {
	AssertEqual(t, PieceFromLetter('N'), chess.W(chess.Knight))
	AssertEqual(t, PieceFromLetter('p'), chess.B(chess.Pawn))
	AssertEqual(t, PieceFromLetter('x'), chess.Empty)
}
