package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report.
	WriteReport(r *Report) error

	// Flush writes any buffered reports to the underlying writer.
	Flush() error

	// Close flushes and releases any resources.
	Close() error
}

// TextWriter writes reports as plain lines.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes the legal moves and perft counts if present,
// followed by the status and FEN.
func (tw *TextWriter) WriteReport(r *Report) error {
	ew := &errWriter{w: tw.w}

	if r.LegalMoves != nil {
		ew.printf("%d legal moves:", len(r.LegalMoves))
		for _, m := range r.LegalMoves {
			ew.printf(" %s", m)
		}
		ew.printf("\n")
	}

	if p := r.Perft; p != nil {
		for _, line := range p.Divide {
			ew.printf("%s: %d\n", line.Move, line.Nodes)
		}
		if p.Divide != nil {
			ew.printf("moves: %d\n", len(p.Divide))
		}
		ew.printf("perft %d: %d\n", p.Depth, p.Nodes)
	}

	ew.printf("status: %s\n", r.Status)
	ew.printf("fen: %s\n", r.FEN)
	return ew.err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*Report `json:"reports"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	err := jw.encode(&JSONOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
