// Package chess provides core chess types: coordinates, pieces and the board.
package chess

import (
	"fmt"

	"github.com/pawn-chess/pawn/internal/errors"
)

// File represents a chess file (column) - 'a' to 'h'.
type File byte

// Rank represents a chess rank (row) - 1 to 8.
type Rank int

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FirstFile File = 'a'
	LastFile  File = FirstFile + BoardSize - 1
	FirstRank Rank = 1
	LastRank  Rank = BoardSize
)

// Position is a board coordinate. Positions are not validated on
// construction: intermediate off-board candidates are useful when
// walking rays or neighbourhoods, and must be checked with Valid before use.
type Position struct {
	File File
	Rank Rank
}

// NewPosition creates a position without range checking.
func NewPosition(file File, rank Rank) Position {
	return Position{File: file, Rank: rank}
}

// FromIndex converts a linear square index in [0,64) to a position.
// Out-of-range indices return the zero Position, which is not Valid.
func FromIndex(i int) Position {
	if i < 0 || i >= NumSquares {
		return Position{}
	}
	return Position{
		File: FirstFile + File(i%BoardSize),
		Rank: FirstRank + Rank(i/BoardSize),
	}
}

// ParsePosition parses the "<file><rank>" form, e.g. "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidPosition)
	}
	p := Position{File: File(s[0]), Rank: Rank(int(s[1]) - '0')}
	if !p.Valid() {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidPosition)
	}
	return p, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
// It is intended for literals.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.File >= FirstFile && p.File <= LastFile &&
		p.Rank >= FirstRank && p.Rank <= LastRank
}

// Index returns the linear square index (rank-1)*8 + file offset,
// or -1 if the position is off the board.
func (p Position) Index() int {
	if !p.Valid() {
		return -1
	}
	return int(p.Rank-FirstRank)*BoardSize + int(p.File-FirstFile)
}

// Offset returns the position df files and dr ranks away. The result may be off the board.
func (p Position) Offset(df, dr int) Position {
	return Position{File: File(int(p.File) + df), Rank: p.Rank + Rank(dr)}
}

// Adjacent returns the on-board neighbours of p, ordered by rank then file.
func (p Position) Adjacent() []Position {
	neighbours := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			if df == 0 && dr == 0 {
				continue
			}
			if n := p.Offset(df, dr); n.Valid() {
				neighbours = append(neighbours, n)
			}
		}
	}
	return neighbours
}

// IsLight returns true if the position is a light square.
func (p Position) IsLight() bool {
	return (int(p.File-FirstFile)+int(p.Rank-FirstRank))%2 == 1
}

// String returns the "<file><rank>" form, e.g. "e4".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", int(p.File)-int(FirstFile), p.Rank)
	}
	return fmt.Sprintf("%c%d", p.File, p.Rank)
}
