package chess

import (
	"fmt"
	"strings"

	"github.com/pawn-chess/pawn/internal/errors"
)

// Move is a source-destination square pair as submitted by a caller.
type Move struct {
	From Position
	To   Position
}

// NewMove creates a move between two positions.
func NewMove(from, to Position) Move {
	return Move{From: from, To: to}
}

const moveSeparators = "- \t"

// ParseMove parses coordinate notation: "e2e4", "e2-e4" or "e2 e4".
// At most one separator ('-', space or tab) may stand between the squares.
func ParseMove(s string) (Move, error) {
	text := strings.TrimSpace(s)
	switch {
	case len(text) == 4:
	case len(text) == 5 && strings.IndexByte(moveSeparators, text[2]) >= 0:
		text = text[:2] + text[3:]
	default:
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidPosition)
	}

	from, err := ParsePosition(text[:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	to, err := ParsePosition(text[2:])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	return Move{From: from, To: to}, nil
}

// String returns the long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
