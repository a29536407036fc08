package testutil

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/pawn-chess/pawn/internal/chess"
)

// Sq parses a square literal such as "e4". It panics on malformed input.
func Sq(s string) chess.Position {
	return chess.MustParsePosition(s)
}

// PieceFromLetter converts a diagram letter to a piece: uppercase is White,
// lowercase Black. Unknown letters yield Empty.
func PieceFromLetter(c rune) chess.Piece {
	kinds := map[rune]chess.Kind{
		'k': chess.King,
		'q': chess.Queen,
		'r': chess.Rook,
		'b': chess.Bishop,
		'n': chess.Knight,
		'p': chess.Pawn,
	}
	kind, ok := kinds[unicode.ToLower(c)]
	if !ok {
		return chess.Empty
	}
	if unicode.IsLower(c) {
		return chess.B(kind)
	}
	return chess.W(kind)
}

// ParsePlacement builds a board from a piece placement diagram in the
// style of a FEN board field: ranks 8 to 1 separated by '/', digits for
// runs of empty squares. For example "4k3/8/8/8/8/8/8/4K3".
func ParsePlacement(placement string) (*chess.Board, error) {
	board := chess.NewEmptyBoard()
	rows := strings.Split(strings.TrimSpace(placement), "/")
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("placement %q has %d ranks, want %d", placement, len(rows), chess.BoardSize)
	}

	for i, row := range rows {
		rank := chess.LastRank - chess.Rank(i)
		file := chess.FirstFile
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += chess.File(c - '0')
			default:
				piece := PieceFromLetter(c)
				if piece == chess.Empty {
					return nil, fmt.Errorf("placement %q: invalid piece character %c", placement, c)
				}
				if file > chess.LastFile {
					return nil, fmt.Errorf("placement %q: rank %d overflows", placement, rank)
				}
				board.Put(chess.NewPosition(file, rank), piece)
				file++
			}
		}
		if file != chess.LastFile+1 {
			return nil, fmt.Errorf("placement %q: rank %d has %d files", placement, rank, file-chess.FirstFile)
		}
	}
	return board, nil
}

// MustPlacement is ParsePlacement that fails the test on error.
func MustPlacement(t *testing.T, placement string) *chess.Board {
	t.Helper()
	board, err := ParsePlacement(placement)
	if err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	return board
}
