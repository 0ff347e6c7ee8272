package folio

import (
	"fmt"
	"time"
)

// DescribeRecency formats a publication date as a long-form absolute date
// with a relative suffix, e.g. "January 2, 2026 (1y ago)".
//
// The relative part uses calendar-field subtraction, first match wins:
// a year difference yields "Ny ago", else a month difference within the
// year yields "Nmo ago", else a day difference within the month yields
// "Nd ago", else "Today". This is field subtraction, not elapsed time:
// Jan 31 viewed on Feb 1 reads "1mo ago", not "1d ago".
func DescribeRecency(date, now time.Time) string {
	var rel string
	switch {
	case now.Year()-date.Year() > 0:
		rel = fmt.Sprintf("%dy ago", now.Year()-date.Year())
	case int(now.Month())-int(date.Month()) > 0:
		rel = fmt.Sprintf("%dmo ago", int(now.Month())-int(date.Month()))
	case now.Day()-date.Day() > 0:
		rel = fmt.Sprintf("%dd ago", now.Day()-date.Day())
	default:
		rel = "Today"
	}
	return date.Format("January 2, 2006") + " (" + rel + ")"
}
