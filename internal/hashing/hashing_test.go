package hashing

import (
	"testing"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/engine"
	"github.com/pawn-chess/pawn/internal/testutil"
)

func playedGame(t *testing.T, moves ...string) *engine.Game {
	t.Helper()
	g := engine.NewGame()
	for _, m := range moves {
		mv, err := chess.ParseMove(m)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", m, err)
		}
		if _, err := g.PlayMove(mv); err != nil {
			t.Fatalf("PlayMove(%q): %v", m, err)
		}
	}
	return g
}

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(chess.NewBoard())
	hash2 := GenerateZobristHash(chess.NewBoard())

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
	if GenerateZobristHash(chess.NewEmptyBoard()) != 0 {
		t.Error("empty board should hash to zero")
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewBoard()
	board2 := chess.NewBoard()
	if _, err := board2.MovePiece(testutil.Sq("e2"), testutil.Sq("e4")); err != nil {
		t.Fatal(err)
	}

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
	if WeakHash(board1) == WeakHash(board2) {
		t.Error("Different positions produced the same weak hash")
	}
}

func TestPositionHash_SideToMove(t *testing.T) {
	board := chess.NewBoard()
	if PositionHash(board, chess.White) == PositionHash(board, chess.Black) {
		t.Error("side to move should change the position hash")
	}
	testutil.AssertEqual(t, PositionHash(board, chess.White), GenerateZobristHash(board))
}

func TestDuplicateDetector(t *testing.T) {
	tests := []struct {
		name       string
		exact      bool
		first      []string
		second     []string
		wantRepeat bool
	}{
		{"same moves", false, []string{"e2e4", "e7e5"}, []string{"e2e4", "e7e5"}, true},
		{"transposition", false, []string{"e2e3", "e7e6", "d2d3"}, []string{"d2d3", "e7e6", "e2e3"}, true},
		{"different replies", false, []string{"g1f3", "g8f6"}, []string{"g1f3", "b8c6"}, false},
		{"side to move differs", false, []string{"g1f3"}, []string{"g1f3", "g8f6", "f3g1"}, false},
		{"knights return", false, nil, []string{"g1f3", "g8f6", "f3g1", "f6g8"}, true},
		{"knights return exact", true, nil, []string{"g1f3", "g8f6", "f3g1", "f6g8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDuplicateDetector(tt.exact, 0)
			testutil.AssertFalse(t, d.CheckAndAdd(playedGame(t, tt.first...)))
			testutil.AssertEqual(t, d.CheckAndAdd(playedGame(t, tt.second...)), tt.wantRepeat)

			wantDup, wantUnique := 0, 2
			if tt.wantRepeat {
				wantDup, wantUnique = 1, 1
			}
			testutil.AssertEqual(t, d.DuplicateCount(), wantDup)
			testutil.AssertEqual(t, d.UniqueCount(), wantUnique)
		})
	}
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	d := NewDuplicateDetector(false, 1)
	testutil.AssertFalse(t, d.CheckAndAdd(playedGame(t, "e2e4")))
	testutil.AssertTrue(t, d.IsFull())

	// Not stored once full, so it is never reported as a duplicate
	testutil.AssertFalse(t, d.CheckAndAdd(playedGame(t, "d2d4")))
	testutil.AssertFalse(t, d.CheckAndAdd(playedGame(t, "d2d4")))
	testutil.AssertTrue(t, d.CheckAndAdd(playedGame(t, "e2e4")))
	testutil.AssertEqual(t, d.UniqueCount(), 1)
}

func TestDuplicateDetector_Reset(t *testing.T) {
	d := NewDuplicateDetector(false, 0)
	d.CheckAndAdd(playedGame(t))
	d.CheckAndAdd(playedGame(t))
	testutil.AssertEqual(t, d.DuplicateCount(), 1)

	d.Reset()
	testutil.AssertEqual(t, d.DuplicateCount(), 0)
	testutil.AssertEqual(t, d.UniqueCount(), 0)
	testutil.AssertFalse(t, d.CheckAndAdd(nil))
}
