// Package output writes replay results as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pawn-chess/pawn/internal/chess"
	"github.com/pawn-chess/pawn/internal/config"
	"github.com/pawn-chess/pawn/internal/processing"
)

// WriteText writes one result in the text layout:
//
//	[script name]
//	journal entries, one per line
//	Result: <status>, <team> to move after <n> plies
//	Error: <first rejected move>          (failed scripts only)
//	Captured: <pieces>                    (optional)
//	<board diagram>                       (optional)
//
// followed by a blank line.
func WriteText(w io.Writer, r *processing.ReplayResult, oc *config.OutputConfig) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[script %s]\n", r.Name)

	if oc.KeepJournal {
		sb.WriteString(r.Game.Journal().String())
	}

	if oc.KeepStatus {
		sb.WriteString(StatusLine(r))
		sb.WriteByte('\n')
	}

	if r.Err != nil {
		fmt.Fprintf(&sb, "Error: %v\n", r.Err)
	}

	if oc.PrintCaptured {
		fmt.Fprintf(&sb, "Captured: %s\n", capturedList(r.Game.Board().CapturedPieces()))
	}

	if oc.PrintBoard {
		sb.WriteString(r.Game.Board().String())
	}

	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// StatusLine summarizes the final position of a replay.
func StatusLine(r *processing.ReplayResult) string {
	line := fmt.Sprintf("Result: %v, %v to move after %d %s",
		r.Status(), r.Game.ToMove(), r.Plies(), plural(r.Plies(), "ply", "plies"))
	if r.Truncated {
		line += " (ply limit reached)"
	}
	return line
}

func capturedList(pieces []chess.Piece) string {
	if len(pieces) == 0 {
		return "none"
	}
	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
