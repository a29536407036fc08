package chess

import (
	"fmt"
	"strings"

	"github.com/pawn-chess/pawn/internal/errors"
)

// Board holds the 64 squares of a game and the pieces captured so far.
// A Board is not safe for concurrent use; each game owns its own.
type Board struct {
	// The board squares, indexed by Position.Index.
	squares [NumSquares]Piece

	// Captured pieces in capture order.
	captured []Piece
}

// NewBoard creates a board set up in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// NewEmptyBoard creates a board with no pieces on it.
func NewEmptyBoard() *Board {
	return &Board{}
}

// Reset sets up the standard starting position and forgets all captures.
func (b *Board) Reset() {
	b.Clear()
	for _, team := range []Team{White, Black} {
		for _, kind := range Kinds {
			squares, _ := kind.InitialSquares(team)
			for _, sq := range squares {
				b.squares[sq.Index()] = NewPiece(kind, team)
			}
		}
	}
}

// Clear removes every piece and forgets all captures.
func (b *Board) Clear() {
	b.squares = [NumSquares]Piece{}
	b.captured = nil
}

// PieceAt returns the piece on the given square, or Empty.
// Off-board positions are reported as Empty.
func (b *Board) PieceAt(p Position) Piece {
	i := p.Index()
	if i < 0 {
		return Empty
	}
	return b.squares[i]
}

// Put places a piece on a square, replacing whatever was there.
// Putting onto an off-board position is a no-op.
func (b *Board) Put(p Position, piece Piece) {
	if i := p.Index(); i >= 0 {
		b.squares[i] = piece
	}
}

// FindPosition returns the first square, in index order, holding the piece.
// The second result is false when no such piece is on the board.
func (b *Board) FindPosition(piece Piece) (Position, bool) {
	if piece == Empty {
		return Position{}, false
	}
	for i, sq := range b.squares {
		if sq == piece {
			return FromIndex(i), true
		}
	}
	return Position{}, false
}

// FindAll returns every square holding the piece, in index order.
func (b *Board) FindAll(piece Piece) []Position {
	var found []Position
	if piece == Empty {
		return found
	}
	for i, sq := range b.squares {
		if sq == piece {
			found = append(found, FromIndex(i))
		}
	}
	return found
}

// MovePiece relocates whatever stands on from to to, without checking legality.
// A piece standing on to is recorded as captured and returned; otherwise the
// returned piece is Empty.
func (b *Board) MovePiece(from, to Position) (Piece, error) {
	if !from.Valid() || !to.Valid() {
		return Empty, fmt.Errorf("%v to %v: %w", from, to, errors.ErrInvalidPosition)
	}

	piece := b.squares[from.Index()]
	if piece == Empty {
		return Empty, fmt.Errorf("%v: %w", from, errors.ErrEmptySource)
	}

	captured := b.squares[to.Index()]
	if captured != Empty {
		b.captured = append(b.captured, captured)
	}
	b.squares[to.Index()] = piece
	b.squares[from.Index()] = Empty
	return captured, nil
}

// CapturedPieces returns the captured pieces in capture order.
func (b *Board) CapturedPieces() []Piece {
	out := make([]Piece, len(b.captured))
	copy(out, b.captured)
	return out
}

// Occupied returns the number of non-empty squares.
func (b *Board) Occupied() int {
	n := 0
	for _, sq := range b.squares {
		if sq != Empty {
			n++
		}
	}
	return n
}

// Count returns the number of pieces the team has on the board.
func (b *Board) Count(team Team) int {
	n := 0
	for _, sq := range b.squares {
		if sq.IsTeam(team) {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{squares: b.squares}
	if b.captured != nil {
		newBoard.captured = append([]Piece(nil), b.captured...)
	}
	return newBoard
}

// Equal reports whether both boards hold the same squares and captures.
func (b *Board) Equal(other *Board) bool {
	if b.squares != other.squares || len(b.captured) != len(other.captured) {
		return false
	}
	for i := range b.captured {
		if b.captured[i] != other.captured[i] {
			return false
		}
	}
	return true
}

// String draws the board from White's side, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := LastRank; rank >= FirstRank; rank-- {
		fmt.Fprintf(&sb, "%d ", rank)
		for file := FirstFile; file <= LastFile; file++ {
			sb.WriteByte(b.PieceAt(NewPosition(file, rank)).Letter())
			if file != LastFile {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
