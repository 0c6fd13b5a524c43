package model

import "time"

// DateLayout is the wire format for booking dates.  Date ranges are
// half-open: [from, to) includes the first night and excludes the
// checkout date, so [a,b) and [b,c) do not overlap.
const DateLayout = "2006-01-02"

// ValidRange reports whether from/to form a non-empty stay.  An
// empty interval (from == to) is invalid.
func ValidRange(from, to time.Time) bool {
	return from.Before(to)
}

// Overlaps reports whether the half-open ranges [aFrom, aTo) and
// [bFrom, bTo) share at least one night.
func Overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && bFrom.Before(aTo)
}

// Nights returns the number of nights in [from, to).  Inputs are
// expected to be date-only values in UTC.
func Nights(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
