package hashing

import (
	"testing"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/engine"
)

func BenchmarkGenerateZobristHash(b *testing.B) {
	board := chess.NewBoard()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		GenerateZobristHash(board)
	}
}

func BenchmarkCheckAndAdd(b *testing.B) {
	d := NewDuplicateDetector(false, 0)
	g := engine.NewGame()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.CheckAndAdd(g)
	}
}
