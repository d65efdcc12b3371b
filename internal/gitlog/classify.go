// SPDX-License-Identifier: AGPL-3.0-or-later

package gitlog

import "strings"

// Classify decides what kind of line this is. The first rule that applies
// wins: commit header, blank, stats, other.
//
// The stats rule is a substring check for "(+)" or "(-)", not a full match;
// anything it lets through is handed to ParseStats as is.
func Classify(line string) LineType {
	switch {
	case commitRegex.MatchString(line):
		return LineCommitHeader
	case strings.TrimSpace(line) == "":
		return LineBlank
	case strings.Contains(line, "(+)") || strings.Contains(line, "(-)"):
		return LineStats
	default:
		return LineOther
	}
}
