// Package journal records the semantic events of a game in the order they happen.
//
// A Journal knows nothing about boards: whichever component observes an
// event appends the matching entry. Entries are values and never change
// once appended.
package journal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pawn-chess/pawn/internal/chess"
)

// Entry is one journal event. The set of entry types is closed.
type Entry interface {
	fmt.Stringer
	entry()
}

// Move records a piece moving between two squares.
type Move struct {
	Piece chess.Piece
	From  chess.Position
	To    chess.Position
}

func (Move) entry() {}

func (e Move) String() string {
	return fmt.Sprintf("Move of %v from %v to %v", e.Piece, e.From, e.To)
}

// Capture records a piece taking another.
type Capture struct {
	By       chess.Piece
	Captured chess.Piece
}

func (Capture) entry() {}

func (e Capture) String() string {
	return fmt.Sprintf("Capture of %v by %v", e.Captured, e.By)
}

// Check records a king coming under attack.
type Check struct {
	Attacker   chess.Piece
	AttackerAt chess.Position
	King       chess.Position
}

func (Check) entry() {}

func (e Check) String() string {
	return fmt.Sprintf("Check on %v by %v from %v", e.King, e.Attacker, e.AttackerAt)
}

// CheckMate records a check the defending team cannot escape.
type CheckMate struct {
	Attacker   chess.Piece
	AttackerAt chess.Position
	King       chess.Position
}

func (CheckMate) entry() {}

func (e CheckMate) String() string {
	return fmt.Sprintf("Checkmate on %v by %v from %v", e.King, e.Attacker, e.AttackerAt)
}

// Journal is an append-only, ordered log of entries.
// The zero value is an empty journal ready to use.
type Journal struct {
	entries []Entry
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{}
}

// Append adds an entry at the end of the journal.
func (j *Journal) Append(e Entry) {
	j.entries = append(j.entries, e)
}

// Entries returns the entries in insertion order.
// The returned slice is a copy.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// String renders every entry on its own line.
func (j *Journal) String() string {
	var sb strings.Builder
	for _, e := range j.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the rendered journal to w.
func (j *Journal) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, j.String())
	return int64(n), err
}
