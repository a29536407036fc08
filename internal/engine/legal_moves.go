package engine

import "github.com/pawn-chess/pawn/internal/chess"

// LegalMoves returns every legal move of the team, ordered by source square
// then destination square index.
func LegalMoves(board *chess.Board, team chess.Team) []chess.Move {
	var moves []chess.Move
	for i := 0; i < chess.NumSquares; i++ {
		from := chess.FromIndex(i)
		if !board.PieceAt(from).IsTeam(team) {
			continue
		}
		for _, to := range Targets(board, from) {
			if IsLegalMove(board, from, to) == nil {
				moves = append(moves, chess.NewMove(from, to))
			}
		}
	}
	return moves
}

// LegalMovesFrom returns the legal destinations of the piece on from, in index order.
func LegalMovesFrom(board *chess.Board, from chess.Position) []chess.Position {
	var dests []chess.Position
	for _, to := range Targets(board, from) {
		if IsLegalMove(board, from, to) == nil {
			dests = append(dests, to)
		}
	}
	return dests
}

// HasLegalMoves returns true if the given team has at least one legal move.
func HasLegalMoves(board *chess.Board, team chess.Team) bool {
	for i := 0; i < chess.NumSquares; i++ {
		from := chess.FromIndex(i)
		if !board.PieceAt(from).IsTeam(team) {
			continue
		}
		for _, to := range Targets(board, from) {
			if IsLegalMove(board, from, to) == nil {
				return true
			}
		}
	}
	return false
}
