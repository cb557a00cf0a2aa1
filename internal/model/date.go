package model

import "time"

// DateLayout is the ISO calendar date format used everywhere dates are
// stored or compared. Lexicographic order on these strings matches
// chronological order, so range tests are plain string comparisons.
const DateLayout = "2006-01-02"

// Today returns the current local calendar date.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ParseDate parses an ISO calendar date. The boolean is false when the
// string is empty or malformed.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddDays shifts a date by n calendar days. It goes through time.AddDate
// rather than elapsed-hours arithmetic so DST transitions cannot skew the
// result. Malformed input is returned unchanged.
func AddDays(date string, n int) string {
	t, ok := ParseDate(date)
	if !ok {
		return date
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}

// DaysBetween returns the signed number of calendar days from a to b.
func DaysBetween(a, b string) int {
	ta, okA := ParseDate(a)
	tb, okB := ParseDate(b)
	if !okA || !okB {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// RangesOverlap reports whether two inclusive date intervals intersect.
func RangesOverlap(startA, endA, startB, endB string) bool {
	return startA <= endB && startB <= endA
}
