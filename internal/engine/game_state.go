package engine

import "github.com/pawn-chess/pawn/internal/chess"

// Status describes the position from the point of view of the team to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsOver returns true for checkmate and stalemate.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// IsCheckmate returns true if the team is in check with no legal move.
func IsCheckmate(board *chess.Board, team chess.Team) bool {
	return IsInCheck(board, team) && !HasLegalMoves(board, team)
}

// IsStalemate returns true if the team is not in check but has no legal move.
func IsStalemate(board *chess.Board, team chess.Team) bool {
	return !IsInCheck(board, team) && !HasLegalMoves(board, team)
}

// PositionStatus classifies the position for the team about to move.
func PositionStatus(board *chess.Board, team chess.Team) Status {
	inCheck := IsInCheck(board, team)
	hasMoves := HasLegalMoves(board, team)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case inCheck:
		return Check
	case !hasMoves:
		return Stalemate
	default:
		return Ongoing
	}
}
