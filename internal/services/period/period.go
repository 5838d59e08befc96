// Package period resolves named reporting periods to concrete date ranges.
package period

import "time"

// Name is a named reporting period.
type Name string

const (
	Today   Name = "today"
	Week    Name = "week"
	Month   Name = "month"
	Quarter Name = "quarter"
	Year    Name = "year"
)

// Range is an inclusive date range. End always equals the reference instant
// passed to Resolve.
type Range struct {
	Start time.Time
	End   time.Time
}

// Resolve maps a named period to the range it covers, ending at ref.
// Calendar-month arithmetic follows time.AddDate, so ranges starting on a
// short month normalize forward (Mar 31 minus one month is Mar 3).
// Unrecognized names collapse to the reference instant itself.
func Resolve(name Name, ref time.Time) Range {
	start := ref
	switch name {
	case Today:
		start = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	case Week:
		start = ref.AddDate(0, 0, -7)
	case Month:
		start = ref.AddDate(0, -1, 0)
	case Quarter:
		start = ref.AddDate(0, -3, 0)
	case Year:
		start = ref.AddDate(-1, 0, 0)
	}
	return Range{Start: start, End: ref}
}
