package chess

import (
	"fmt"

	"github.com/pawn-chess/pawn/internal/errors"
)

// Team represents the side a piece belongs to.
type Team uint8

const (
	White Team = iota
	Black
)

// String returns the string representation of a team.
func (t Team) String() string {
	if t == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite team.
func (t Team) Opposite() Team {
	if t == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black.
func (t Team) PawnDirection() int {
	if t == White {
		return 1
	}
	return -1
}

// BackRank returns the rank the team's major pieces start on.
func (t Team) BackRank() Rank {
	if t == White {
		return FirstRank
	}
	return LastRank
}

// PawnRank returns the rank the team's pawns start on.
func (t Team) PawnRank() Rank {
	return t.BackRank() + Rank(t.PawnDirection())
}

// Kind represents a piece type independent of team.
type Kind uint8

const (
	None Kind = iota // Empty square
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumKinds
)

// Kinds lists the real piece kinds in the order they are placed on the board.
var Kinds = []Kind{King, Queen, Rook, Bishop, Knight, Pawn}

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'K', 'Q', 'R', 'B', 'N', 'P'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsSlider reports whether the kind moves any distance along a line.
func (k Kind) IsSlider() bool {
	return k == Queen || k == Rook || k == Bishop
}

// initialFiles holds the starting files of each kind, queen side first.
var initialFiles = [NumKinds][]File{
	King:   {'e'},
	Queen:  {'d'},
	Rook:   {'a', 'h'},
	Bishop: {'c', 'f'},
	Knight: {'b', 'g'},
	Pawn:   {'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'},
}

// InitialSquares returns the starting squares of this kind for the team.
func (k Kind) InitialSquares(team Team) ([]Position, error) {
	if k == None || k >= NumKinds {
		return nil, fmt.Errorf("initial squares of %v: %w", k, errors.ErrInvalidOperation)
	}

	rank := team.BackRank()
	if k == Pawn {
		rank = team.PawnRank()
	}

	files := initialFiles[k]
	squares := make([]Position, len(files))
	for i, f := range files {
		squares[i] = NewPosition(f, rank)
	}
	return squares, nil
}

// Piece is a kind together with its team, packed into a byte.
// The zero value is Empty, which carries no team.
type Piece uint8

// Empty denotes an unoccupied square.
const Empty Piece = 0

// pieceShift leaves the low bit for the team.
const pieceShift = 1

// NewPiece creates a piece of the given kind and team.
// A None kind always yields Empty, whatever the team.
func NewPiece(kind Kind, team Team) Piece {
	if kind == None {
		return Empty
	}
	return Piece(uint8(kind)<<pieceShift | uint8(team))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// Kind returns the piece's kind; None for Empty.
func (p Piece) Kind() Kind {
	return Kind(p >> pieceShift)
}

// Team returns the piece's team. It is meaningless for Empty; use
// IsTeam or IsEnemyOf when the square may be unoccupied.
func (p Piece) Team() Team {
	return Team(p & 0x01)
}

// IsEmpty returns true for an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// IsTeam returns true if p is a real piece of team t.
func (p Piece) IsTeam(t Team) bool {
	return p != Empty && p.Team() == t
}

// IsEnemyOf returns true if p is a real piece of the team opposing t.
func (p Piece) IsEnemyOf(t Team) bool {
	return p != Empty && p.Team() != t
}

// InitialSquares returns the starting squares of this piece.
// It fails with ErrInvalidOperation for Empty.
func (p Piece) InitialSquares() ([]Position, error) {
	if p == Empty {
		return nil, fmt.Errorf("initial squares of empty square: %w", errors.ErrInvalidOperation)
	}
	return p.Kind().InitialSquares(p.Team())
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind().Letter()
	if p.IsTeam(Black) {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Queen", or "Empty".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Team().String() + " " + p.Kind().String()
}
