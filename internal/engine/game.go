package engine

import (
	"fmt"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/errors"
	"github.com/pawn-chess/pawn/internal/journal"
)

// Game sequences turns over a single board and journals what happens.
// It is the only component that mutates its board; a Game is not safe
// for concurrent use, but independent games share nothing.
type Game struct {
	board   *chess.Board
	journal *journal.Journal
	toMove  chess.Team
	status  Status
	ply     int
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithBoard starts the game from an existing position instead of the initial one.
func WithBoard(b *chess.Board) GameOption {
	return func(g *Game) {
		if b != nil {
			g.board = b
		}
	}
}

// WithJournal records events in j instead of a fresh journal.
func WithJournal(j *journal.Journal) GameOption {
	return func(g *Game) {
		if j != nil {
			g.journal = j
		}
	}
}

// WithToMove sets the team to move first. Default: White.
func WithToMove(t chess.Team) GameOption {
	return func(g *Game) {
		g.toMove = t
	}
}

// NewGame creates a game using functional options.
// Default: the standard starting position with White to move.
func NewGame(opts ...GameOption) *Game {
	g := &Game{toMove: chess.White}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = chess.NewBoard()
	}
	if g.journal == nil {
		g.journal = journal.New()
	}
	g.status = PositionStatus(g.board, g.toMove)
	return g
}

// Play validates and applies a move for the team to move, journals the
// move and any capture, then checks the opponent's king. A check or mate
// is journaled once per attacking piece.
//
// The returned status describes the position for the team now to move.
// On error the board, journal and turn are unchanged.
func (g *Game) Play(from, to chess.Position) (Status, error) {
	if g.status.IsOver() {
		return g.status, fmt.Errorf("%v after %v: %w", chess.NewMove(from, to), g.status, errors.ErrGameOver)
	}

	piece := g.board.PieceAt(from)
	if piece.IsEnemyOf(g.toMove) {
		return g.status, fmt.Errorf("%v on %v with %v to move: %w", piece, from, g.toMove, errors.ErrOutOfTurn)
	}

	if err := IsLegalMove(g.board, from, to); err != nil {
		return g.status, err
	}

	captured, err := g.board.MovePiece(from, to)
	if err != nil {
		return g.status, err
	}

	g.journal.Append(journal.Move{Piece: piece, From: from, To: to})
	if !captured.IsEmpty() {
		g.journal.Append(journal.Capture{By: piece, Captured: captured})
	}

	mover := g.toMove
	g.toMove = mover.Opposite()
	g.ply++
	g.status = PositionStatus(g.board, g.toMove)

	if g.status == Check || g.status == Checkmate {
		g.journalCheck(mover)
	}

	return g.status, nil
}

// PlayMove is Play for a coordinate pair.
func (g *Game) PlayMove(m chess.Move) (Status, error) {
	return g.Play(m.From, m.To)
}

// journalCheck records every piece of mover attacking the opposing king.
func (g *Game) journalCheck(mover chess.Team) {
	king, ok := g.board.FindPosition(chess.NewPiece(chess.King, mover.Opposite()))
	if !ok {
		return
	}

	for _, at := range Attackers(g.board, king, mover) {
		attacker := g.board.PieceAt(at)
		if g.status == Checkmate {
			g.journal.Append(journal.CheckMate{Attacker: attacker, AttackerAt: at, King: king})
		} else {
			g.journal.Append(journal.Check{Attacker: attacker, AttackerAt: at, King: king})
		}
	}
}

// Reset restores the initial position with White to move.
// The journal is kept; the caller decides whether to start a new one.
func (g *Game) Reset() {
	g.board.Reset()
	g.toMove = chess.White
	g.ply = 0
	g.status = Ongoing
}

// Board returns the game's board.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Journal returns the game's journal.
func (g *Game) Journal() *journal.Journal {
	return g.journal
}

// ToMove returns the team to move.
func (g *Game) ToMove() chess.Team {
	return g.toMove
}

// Status returns the status of the position for the team to move.
func (g *Game) Status() Status {
	return g.status
}

// Ply returns the number of moves played since the game started or was reset.
func (g *Game) Ply() int {
	return g.ply
}
