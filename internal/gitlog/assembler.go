// SPDX-License-Identifier: AGPL-3.0-or-later

package gitlog

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// maxLineSize lets the scanner cope with very long commit subjects.
const maxLineSize = 16 * 1024 * 1024

// Assembler rebuilds commit records from classified log lines.
//
// It holds at most one open record. A header opens a record (flushing any
// record that never got a stats line), a stats line closes the open record,
// and Finish flushes whatever is still open.
type Assembler struct {
	open    *CommitRecord
	records []CommitRecord
	line    int
}

// NewAssembler returns an Assembler in the idle state.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Feed processes the next input line. Any error is a *LineError and is fatal
// for the whole run.
func (a *Assembler) Feed(line string) error {
	a.line++

	switch Classify(line) {
	case LineCommitHeader:
		rec, err := NewCommitRecord(line, a.line)
		if err != nil {
			return &LineError{Line: a.line, Err: err}
		}
		if a.open != nil {
			a.emit()
		}
		a.open = rec

	case LineStats:
		if a.open == nil {
			return &LineError{Line: a.line, Err: ErrOrphanStats}
		}
		st := ParseStats(line)
		a.open.Stats = &st
		a.emit()

	case LineBlank, LineOther:
	}
	return nil
}

// Finish flushes the open record, if any, and returns every record in the
// order it was closed. The Assembler is idle afterwards.
func (a *Assembler) Finish() []CommitRecord {
	if a.open != nil {
		a.emit()
	}
	out := a.records
	a.records = nil
	return out
}

// Open reports whether a record is waiting for its stats line.
func (a *Assembler) Open() bool {
	return a.open != nil
}

func (a *Assembler) emit() {
	a.records = append(a.records, *a.open)
	a.open = nil
}

// Assemble runs a fresh Assembler over lines.
func Assemble(lines []string) ([]CommitRecord, error) {
	a := NewAssembler()
	for _, l := range lines {
		if err := a.Feed(l); err != nil {
			return nil, err
		}
	}
	return a.Finish(), nil
}

// Parse reads a whole git log from r and assembles it. ctx is checked
// between lines.
func Parse(ctx context.Context, r io.Reader) ([]CommitRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	a := NewAssembler()
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.Feed(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading git log: %w", err)
	}
	return a.Finish(), nil
}
