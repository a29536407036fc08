package matching

import (
	"strings"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/processing"
)

type materialCounts [2][chess.NumKinds]int

// MaterialMatcher matches games by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	want       materialCounts
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
// Unknown letters are ignored.
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{pattern: pattern, exactMatch: exact}
	white, black, _ := strings.Cut(pattern, ":")
	mm.parsePieces(white, chess.White)
	mm.parsePieces(black, chess.Black)
	return mm
}

func (mm *MaterialMatcher) parsePieces(s string, team chess.Team) {
	for _, c := range s {
		for _, kind := range chess.Kinds {
			if byte(c) == chess.NewPiece(kind, team).Letter() {
				mm.want[team][kind]++
			}
		}
	}
}

// Match implements GameMatcher. Any position reached may match.
func (mm *MaterialMatcher) Match(r *processing.ReplayResult) bool {
	return anyPosition(r, mm.matchBoard)
}

// Name implements GameMatcher.
func (mm *MaterialMatcher) Name() string {
	return "MaterialMatcher(" + mm.pattern + ")"
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

func (mm *MaterialMatcher) matchBoard(board *chess.Board) bool {
	var have materialCounts
	for i := 0; i < 64; i++ {
		piece := board.PieceAt(chess.FromIndex(i))
		if !piece.IsEmpty() {
			have[piece.Team()][piece.Kind()]++
		}
	}

	for _, team := range []chess.Team{chess.White, chess.Black} {
		for _, kind := range chess.Kinds {
			want, got := mm.want[team][kind], have[team][kind]
			if got < want || (mm.exactMatch && got != want) {
				return false
			}
		}
	}
	return true
}
