// SPDX-License-Identifier: AGPL-3.0-or-later

package gitlog

import (
	"errors"
	"fmt"
)

// ErrOrphanStats is returned when a stats line appears while no commit
// record is open.
var ErrOrphanStats = errors.New("found a stats line but no commit is in progress")

// MalformedDateError reports a commit header whose date field cannot be
// turned into a calendar date.
type MalformedDateError struct {
	Text   string
	Reason string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed commit date %q: %s", e.Text, e.Reason)
}

// LineError attaches the 1-based input line number to a parse failure.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
