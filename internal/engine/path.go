package engine

import (
	"sort"

	"github.com/pawn-chess/pawn/internal/chess"
)

// Direction offsets as (file, rank) deltas.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	kingOffsets  = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightJumps  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// canPieceMove checks the movement geometry of piece from one square to another.
// Destination ownership is not considered, except that pawns need an enemy
// to move diagonally and an empty square to move straight.
// In attack mode pawns only strike diagonally, whatever stands on the target.
func canPieceMove(board *chess.Board, piece chess.Piece, from, to chess.Position, attack bool) bool {
	if from == to {
		return false
	}

	fileDiff := abs(int(to.File) - int(from.File))
	rankDiff := abs(int(to.Rank) - int(from.Rank))

	switch piece.Kind() {
	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if fileDiff != rankDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if fileDiff != rankDiff && fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.King:
		return fileDiff <= 1 && rankDiff <= 1

	case chess.Pawn:
		return canPawnMove(board, piece.Team(), from, to, attack)
	}

	return false
}

// canPawnMove checks pawn geometry for the given team.
func canPawnMove(board *chess.Board, team chess.Team, from, to chess.Position, attack bool) bool {
	dir := team.PawnDirection()
	fileDiff := int(to.File) - int(from.File)
	rankDiff := int(to.Rank) - int(from.Rank)

	// Diagonal: attack mode or capture of an enemy.
	if abs(fileDiff) == 1 && rankDiff == dir {
		return attack || board.PieceAt(to).IsEnemyOf(team)
	}
	if attack || fileDiff != 0 {
		return false
	}

	// Straight pushes never capture.
	switch rankDiff {
	case dir:
		return board.PieceAt(to).IsEmpty()
	case 2 * dir:
		return from.Rank == team.PawnRank() &&
			board.PieceAt(from.Offset(0, dir)).IsEmpty() &&
			board.PieceAt(to).IsEmpty()
	}
	return false
}

// isPathClear checks that every square strictly between from and to is empty.
// The squares must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Position) bool {
	fileDir := sign(int(to.File) - int(from.File))
	rankDir := sign(int(to.Rank) - int(from.Rank))

	for p := from.Offset(fileDir, rankDir); p != to; p = p.Offset(fileDir, rankDir) {
		if !p.Valid() {
			return false
		}
		if !board.PieceAt(p).IsEmpty() {
			return false
		}
	}
	return true
}

// Attacks reports whether the piece on from attacks the square to.
// Turn and the occupant of to are ignored; pawns attack diagonally only.
func Attacks(board *chess.Board, from, to chess.Position) bool {
	piece := board.PieceAt(from)
	if piece.IsEmpty() || !to.Valid() {
		return false
	}
	return canPieceMove(board, piece, from, to, true)
}

// Targets returns every on-board square the piece on from could move to by
// geometry alone, ignoring friendly occupancy and self-check, in index order.
func Targets(board *chess.Board, from chess.Position) []chess.Position {
	piece := board.PieceAt(from)
	if piece.IsEmpty() {
		return nil
	}

	var targets []chess.Position
	for _, to := range candidateSquares(piece, from) {
		if canPieceMove(board, piece, from, to, false) {
			targets = append(targets, to)
		}
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Index() < targets[j].Index()
	})
	return targets
}

// candidateSquares lists the on-board squares a piece's pattern could reach
// from an otherwise empty board.
func candidateSquares(piece chess.Piece, from chess.Position) []chess.Position {
	var offsets [][2]int
	var rays [][2]int

	switch piece.Kind() {
	case chess.Knight:
		offsets = knightJumps
	case chess.King:
		offsets = kingOffsets
	case chess.Bishop:
		rays = diagonalDirs
	case chess.Rook:
		rays = straightDirs
	case chess.Queen:
		rays = append(append(rays, diagonalDirs...), straightDirs...)
	case chess.Pawn:
		dir := piece.Team().PawnDirection()
		offsets = [][2]int{{0, dir}, {0, 2 * dir}, {-1, dir}, {1, dir}}
	}

	var squares []chess.Position
	for _, o := range offsets {
		if to := from.Offset(o[0], o[1]); to.Valid() {
			squares = append(squares, to)
		}
	}
	for _, r := range rays {
		for to := from.Offset(r[0], r[1]); to.Valid(); to = to.Offset(r[0], r[1]) {
			squares = append(squares, to)
		}
	}
	return squares
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign maps x to -1, 0 or 1, the unit step along one axis.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
