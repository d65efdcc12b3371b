// SPDX-License-Identifier: AGPL-3.0-or-later

package gitlog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateRegex splits "Wed Nov 29 11:34:41 2017" into weekday, month, day and
// year. The trailing four digits anchor the year.
var dateRegex = regexp.MustCompile(`(\w{3})\s(\w{3})\s(\d\d?).*(\d{4})$`)

var shortMonths = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// ParseDate converts the date field of a commit header into a calendar date
// at midnight UTC. The time of day and timezone are ignored.
func ParseDate(text string) (time.Time, error) {
	m := dateRegex.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, &MalformedDateError{Text: text, Reason: "expected \"Www Mmm D ... YYYY\""}
	}

	month, ok := shortMonths[m[2]]
	if !ok {
		return time.Time{}, &MalformedDateError{Text: text, Reason: fmt.Sprintf("unknown month %q", m[2])}
	}
	day := parseField(m[3])
	year := parseField(m[4])

	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises out-of-range values (Nov 31 -> Dec 1), so a
	// round trip that changes any part means the date does not exist.
	if day < 1 || year < 1 || d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, &MalformedDateError{Text: text, Reason: fmt.Sprintf("invalid calendar date %04d-%02d-%02d", year, int(month), day)}
	}
	return d, nil
}

func parseField(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return StatUnparsed
	}
	return n
}
