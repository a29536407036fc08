// Package engine provides chess move validation and game arbitration.
package engine

import (
	"fmt"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/errors"
)

// IsLegalMove validates moving the piece on from to to without changing the board.
// Turn order is not considered; Game enforces it.
//
// It fails with ErrInvalidPosition for off-board squares, ErrEmptySource when
// from is empty, ErrFriendlyCapture when to holds the mover's own team,
// ErrBlocked when the piece's geometry does not reach to or the path is
// obstructed, and ErrSelfCheck when the mover's king would be left attacked.
func IsLegalMove(board *chess.Board, from, to chess.Position) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%v to %v: %w", from, to, errors.ErrInvalidPosition)
	}

	piece := board.PieceAt(from)
	if piece.IsEmpty() {
		return fmt.Errorf("%v: %w", from, errors.ErrEmptySource)
	}
	team := piece.Team()

	if from == to {
		return fmt.Errorf("%v on %v: %w", piece, from, errors.ErrBlocked)
	}

	if board.PieceAt(to).IsTeam(team) {
		return fmt.Errorf("%v from %v to %v: %w", piece, from, to, errors.ErrFriendlyCapture)
	}

	if !canPieceMove(board, piece, from, to, false) {
		return fmt.Errorf("%v from %v to %v: %w", piece, from, to, errors.ErrBlocked)
	}

	if leavesKingInCheck(board, from, to, team) {
		return fmt.Errorf("%v from %v to %v: %w", piece, from, to, errors.ErrSelfCheck)
	}

	return nil
}

// leavesKingInCheck plays the move on a copy and reports whether the
// team's king is then attacked.
func leavesKingInCheck(board *chess.Board, from, to chess.Position, team chess.Team) bool {
	testBoard := board.Copy()
	if _, err := testBoard.MovePiece(from, to); err != nil {
		return false
	}
	return IsInCheck(testBoard, team)
}
