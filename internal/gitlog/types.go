// SPDX-License-Identifier: AGPL-3.0-or-later

package gitlog

import "time"

// Sentinel values stored in CommitStats fields.
const (
	// StatAbsent marks a clause that did not appear on the stats line.
	StatAbsent = 0
	// StatUnparsed marks a clause that appeared but whose digits did not parse.
	StatUnparsed = -1
)

// LineType classifies a single input line.
type LineType int

const (
	LineOther LineType = iota
	LineCommitHeader
	LineStats
	LineBlank
)

func (t LineType) String() string {
	switch t {
	case LineCommitHeader:
		return "commit"
	case LineStats:
		return "stats"
	case LineBlank:
		return "blank"
	default:
		return "other"
	}
}

// CommitStats is the parsed form of a line such as
// " 296 files changed, 120 insertions(+), 63188 deletions(-)".
type CommitStats struct {
	FilesChanged int
	Insertions   int
	Deletions    int

	// Line is the raw source line. Only useful when debugging.
	Line string
}

// Changes returns insertions plus deletions.
func (s CommitStats) Changes() int {
	return s.Insertions + s.Deletions
}

// CommitRecord is one commit reassembled from the log.
type CommitRecord struct {
	CommitID string
	RawDate  string
	Message  string
	Date     time.Time

	// Stats is nil until a stats line closes the record. Records superseded
	// by another header, or still open at end of input, keep a nil Stats.
	Stats *CommitStats

	// Line is the raw header line and LineNumber its 1-based position.
	Line       string
	LineNumber int
}

// HasStats reports whether a stats line was attached to the record.
func (r CommitRecord) HasStats() bool {
	return r.Stats != nil
}
