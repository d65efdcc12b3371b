// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tsv renders assembled commits as delimited rows for spreadsheets.
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ChrisFewtrell/GitLogTransformer/internal/gitlog"
)

// Columns is the header row, in output order.
var Columns = []string{
	"Committish",
	"FilesChanged",
	"Insertions",
	"Deletions",
	"Sum changes",
	"Date",
	"Month",
	"Comment",
}

// LineNumberColumn heads the extra column Writer prepends to every row.
// Sorting in a spreadsheet loses log order; this column restores it.
const LineNumberColumn = "Line#"

// Formatter turns commit records into delimited rows.
type Formatter struct {
	Separator   string
	DateLayout  string
	MonthLayout string

	// TrailingSeparator appends Separator after the last field too, which is
	// how the reports have always been laid out.
	TrailingSeparator bool
}

// NewFormatter returns a Formatter producing tab separated rows with ISO
// dates and a trailing separator.
func NewFormatter() *Formatter {
	return &Formatter{
		Separator:         "\t",
		DateLayout:        "2006-01-02",
		MonthLayout:       "2006-01",
		TrailingSeparator: true,
	}
}

// Header returns the column names joined by the separator.
func (f *Formatter) Header() string {
	return f.join(Columns)
}

// Row renders one record. A record without stats renders zero in every
// numeric column.
func (f *Formatter) Row(rec gitlog.CommitRecord) string {
	var st gitlog.CommitStats
	if rec.Stats != nil {
		st = *rec.Stats
	}
	return f.join([]string{
		rec.CommitID,
		strconv.Itoa(st.FilesChanged),
		strconv.Itoa(st.Insertions),
		strconv.Itoa(st.Deletions),
		strconv.Itoa(st.Changes()),
		rec.Date.Format(f.DateLayout),
		rec.Date.Format(f.MonthLayout),
		`"` + rec.Message + `"`,
	})
}

func (f *Formatter) join(fields []string) string {
	var b strings.Builder
	for i, field := range fields {
		b.WriteString(field)
		if f.TrailingSeparator || i < len(fields)-1 {
			b.WriteString(f.Separator)
		}
	}
	return b.String()
}

// Writer writes a full report: a header, then one numbered row per record.
type Writer struct {
	f *Formatter
	w *bufio.Writer
	n int
}

// NewWriter returns a Writer that renders with f into w.
func NewWriter(w io.Writer, f *Formatter) *Writer {
	return &Writer{f: f, w: bufio.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	_, err := fmt.Fprintf(w.w, "%s%s%s\n", LineNumberColumn, w.f.Separator, w.f.Header())
	return err
}

// Write writes one record prefixed with its 1-based row number.
func (w *Writer) Write(rec gitlog.CommitRecord) error {
	w.n++
	_, err := fmt.Fprintf(w.w, "%d%s%s\n", w.n, w.f.Separator, w.f.Row(rec))
	return err
}

// Rows reports how many records have been written.
func (w *Writer) Rows() int {
	return w.n
}

// Flush pushes buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteAll writes the header, every record, and flushes.
func WriteAll(w io.Writer, f *Formatter, recs []gitlog.CommitRecord) error {
	tw := NewWriter(w, f)
	if err := tw.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range recs {
		if err := tw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", tw.Rows(), err)
		}
	}
	return tw.Flush()
}
