// SPDX-License-Identifier: AGPL-3.0-or-later

package gitlog

import (
	"fmt"
	"regexp"
	"strings"
)

// The header layout is fixed by the format string that produced the log:
//
//	git log --compact-summary --format="%H %ad %s"
//
// which yields lines such as
//
//	|               Committish               |          Date           |  sep |  Subject ...
//	da9a9075992d880705004aa40c819546fea4d9f2 Wed Nov 29 11:34:41 2017 +0000 Merge pull request #8787
//
// After the 40 character hash, the date field is the space plus the default
// %ad rendering without its zone ("Www Mmm D HH:MM:SS YYYY", 24 or 25
// characters) and the separator is the zone offset with its surrounding
// spaces. Changing the log format means changing these two widths.
const (
	CommitIDLength     = 40
	DateFieldWidth     = 25
	DateSeparatorWidth = 6
)

var commitRegex = regexp.MustCompile(fmt.Sprintf(`^\s*(\w{%d})(.{%d})(?:.{%d})(.*)$`,
	CommitIDLength, DateFieldWidth, DateSeparatorWidth))

// CommitLine holds the trimmed pieces of a commit header line.
type CommitLine struct {
	CommitID string
	RawDate  string
	Message  string
}

// MatchCommitLine reports whether line is a commit header and, if so,
// returns its pieces. Nothing is extracted from a line that does not match.
func MatchCommitLine(line string) (CommitLine, bool) {
	m := commitRegex.FindStringSubmatch(line)
	if m == nil {
		return CommitLine{}, false
	}
	return CommitLine{
		CommitID: strings.TrimSpace(m[1]),
		RawDate:  strings.TrimSpace(m[2]),
		Message:  strings.TrimSpace(m[3]),
	}, true
}

// NewCommitRecord builds an open record from a header line. lineNumber is
// only carried for diagnostics.
func NewCommitRecord(line string, lineNumber int) (*CommitRecord, error) {
	cl, ok := MatchCommitLine(line)
	if !ok {
		return nil, fmt.Errorf("not a commit header: %q", line)
	}
	date, err := ParseDate(cl.RawDate)
	if err != nil {
		return nil, err
	}
	return &CommitRecord{
		CommitID:   cl.CommitID,
		RawDate:    cl.RawDate,
		Message:    cl.Message,
		Date:       date,
		Line:       line,
		LineNumber: lineNumber,
	}, nil
}
