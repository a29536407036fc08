package output

import (
	"encoding/json"
	"io"

	"github.com/pawn-chess/pawn/internal/config"
	"github.com/pawn-chess/pawn/internal/journal"
	"github.com/pawn-chess/pawn/internal/processing"
)

// JSONResult represents a replay result in JSON format.
type JSONResult struct {
	Script    string      `json:"script"`
	Plies     int         `json:"plies"`
	Status    string      `json:"status"`
	ToMove    string      `json:"toMove"`
	Truncated bool        `json:"truncated,omitempty"`
	Error     string      `json:"error,omitempty"`
	Journal   []JSONEntry `json:"journal,omitempty"`
	Captured  []string    `json:"captured,omitempty"`
	Board     string      `json:"board,omitempty"`
}

// JSONEntry represents a journal entry in JSON format.
type JSONEntry struct {
	Kind     string `json:"kind"` // "move", "capture", "check" or "checkmate"
	Text     string `json:"text"`
	Piece    string `json:"piece,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Captured string `json:"captured,omitempty"`
	King     string `json:"king,omitempty"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a replay result to JSON format.
func ResultToJSON(r *processing.ReplayResult, oc *config.OutputConfig) *JSONResult {
	jr := &JSONResult{
		Script:    r.Name,
		Plies:     r.Plies(),
		Status:    r.Status().String(),
		ToMove:    r.Game.ToMove().String(),
		Truncated: r.Truncated,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}

	if oc.KeepJournal {
		for _, e := range r.Game.Journal().Entries() {
			jr.Journal = append(jr.Journal, entryToJSON(e))
		}
	}

	if oc.PrintCaptured {
		for _, p := range r.Game.Board().CapturedPieces() {
			jr.Captured = append(jr.Captured, p.String())
		}
	}

	if oc.PrintBoard {
		jr.Board = r.Game.Board().String()
	}

	return jr
}

func entryToJSON(e journal.Entry) JSONEntry {
	je := JSONEntry{Text: e.String()}
	switch e := e.(type) {
	case journal.Move:
		je.Kind = "move"
		je.Piece = e.Piece.String()
		je.From = e.From.String()
		je.To = e.To.String()
	case journal.Capture:
		je.Kind = "capture"
		je.Piece = e.By.String()
		je.Captured = e.Captured.String()
	case journal.Check:
		je.Kind = "check"
		je.Piece = e.Attacker.String()
		je.From = e.AttackerAt.String()
		je.King = e.King.String()
	case journal.CheckMate:
		je.Kind = "checkmate"
		je.Piece = e.Attacker.String()
		je.From = e.AttackerAt.String()
		je.King = e.King.String()
	}
	return je
}

// WriteResultsJSON writes results as a single JSON document.
func WriteResultsJSON(w io.Writer, results []*processing.ReplayResult, oc *config.OutputConfig) error {
	out := &JSONOutput{Results: make([]*JSONResult, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, ResultToJSON(r, oc))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
