// SPDX-License-Identifier: AGPL-3.0-or-later

package gitlog

import (
	"regexp"
	"strconv"
	"strings"
)

// statsRegex matches the summary git prints after each commit, e.g.
//
//	" 296 files changed, 12 insertions(+), 63188 deletions(-)"
//	" 1 file changed, 1 insertion(+)"
//	" 3 files changed, 10 deletions(-)"
//
// Each clause is optional but the order is fixed. An empty digit group
// still counts as a present clause, so leading whitespace lives inside each
// group.
var statsRegex = regexp.MustCompile(`^` +
	`(?:\s*(\d*)\s+files?\s+changed?,?)?` +
	`(?:\s*(\d*)\s+insertions?\(\+\),?)?` +
	`(?:\s*(\d*)\s+deletions?\(-\))?`)

// ParseStats extracts the counts from a stats line. Clauses that are missing
// yield StatAbsent and clauses whose digits do not parse yield StatUnparsed.
// It never fails: a line that only looks like a stats line gets zeros.
func ParseStats(line string) CommitStats {
	st := CommitStats{Line: line}
	idx := statsRegex.FindStringSubmatchIndex(line)
	if idx == nil {
		return st
	}
	st.FilesChanged = statGroup(line, idx, 1)
	st.Insertions = statGroup(line, idx, 2)
	st.Deletions = statGroup(line, idx, 3)
	return st
}

func statGroup(line string, idx []int, group int) int {
	start, end := idx[2*group], idx[2*group+1]
	if start < 0 {
		return StatAbsent
	}
	n, err := strconv.Atoi(strings.TrimSpace(line[start:end]))
	if err != nil {
		return StatUnparsed
	}
	return n
}
