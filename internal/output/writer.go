package output

import (
	"encoding/json"
	"io"

	"github.com/pawn-chess/pawn/internal/config"
	"github.com/pawn-chess/pawn/internal/processing"
)

// ResultWriter is the interface for writing replay results to output.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r *processing.ReplayResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close releases any resources. For batch writers (like JSON), this
	// also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by the output configuration.
func NewWriter(w io.Writer, oc *config.OutputConfig) ResultWriter {
	if oc.JSONFormat {
		return NewJSONWriter(w, oc)
	}
	return NewTextWriter(w, oc)
}

// TextWriter writes results in the text layout.
type TextWriter struct {
	w  io.Writer
	oc *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, oc *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, oc: oc}
}

// WriteResult writes a result immediately.
func (tw *TextWriter) WriteResult(r *processing.ReplayResult) error {
	return WriteText(tw.w, r, tw.oc)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as one document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	oc      *config.OutputConfig
	results []*processing.ReplayResult
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer, oc *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, oc: oc}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer, oc *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, oc: oc, single: true}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(r *processing.ReplayResult) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(ResultToJSON(r, jw.oc))
	}

	jw.results = append(jw.results, r)
	return nil
}

// Flush writes all buffered results as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	err := WriteResultsJSON(jw.w, jw.results, jw.oc)

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
