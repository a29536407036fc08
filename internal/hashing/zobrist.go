package hashing

import (
	"math/rand/v2"

	"github.com/pawn-chess/pawn/internal/chess"
)

const numPieces = 1 << 4

// Zobrist keys are fixed for the life of the process; the seed is constant
// so hashes are stable across runs.
var (
	pieceKeys   [numPieces][64]uint64
	blackToMove uint64
)

func init() {
	rng := rand.New(rand.NewPCG(0x5A0B_2157, 0x70A3_C0DE))
	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = rng.Uint64()
		}
	}
	blackToMove = rng.Uint64()
}

// GenerateZobristHash hashes the placement of every piece on the board.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for i := 0; i < 64; i++ {
		piece := board.PieceAt(chess.FromIndex(i))
		if piece.IsEmpty() {
			continue
		}
		hash ^= pieceKeys[piece][i]
	}
	return hash
}

// PositionHash hashes the board together with the side to move.
func PositionHash(board *chess.Board, toMove chess.Team) uint64 {
	hash := GenerateZobristHash(board)
	if toMove == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// WeakHash is a cheap secondary check: the sum of piece codes weighted by
// square index.
func WeakHash(board *chess.Board) uint32 {
	var sum uint32
	for i := 0; i < 64; i++ {
		piece := board.PieceAt(chess.FromIndex(i))
		sum += uint32(piece) * uint32(i+1)
	}
	return sum
}
