package engine

import "github.com/pawn-chess/pawn/internal/chess"

// IsInCheck returns true if the given team's king is attacked.
// A team without a king on the board is never in check.
func IsInCheck(board *chess.Board, team chess.Team) bool {
	king, ok := board.FindPosition(chess.NewPiece(chess.King, team))
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, team.Opposite())
}

// IsSquareAttacked returns true if any piece of team by attacks the square.
func IsSquareAttacked(board *chess.Board, sq chess.Position, by chess.Team) bool {
	for i := 0; i < chess.NumSquares; i++ {
		from := chess.FromIndex(i)
		if board.PieceAt(from).IsTeam(by) && Attacks(board, from, sq) {
			return true
		}
	}
	return false
}

// Attackers returns the squares of every piece of team by attacking sq, in index order.
func Attackers(board *chess.Board, sq chess.Position, by chess.Team) []chess.Position {
	var attackers []chess.Position
	for i := 0; i < chess.NumSquares; i++ {
		from := chess.FromIndex(i)
		if board.PieceAt(from).IsTeam(by) && Attacks(board, from, sq) {
			attackers = append(attackers, from)
		}
	}
	return attackers
}
