package overlap

import (
	"time"

	errs "github.com/southernMD/railway-reservation/internal/domain/error"
)

// Interval is a reserved time window. Boundaries are treated as closed:
// two intervals that merely touch at an endpoint are considered overlapping.
type Interval struct {
	Start time.Time
	End   time.Time
}

// HasOverlap reports whether the candidate window [targetStart, targetEnd]
// intersects any of the existing intervals. Two intervals are disjoint only
// when one ends strictly before the other begins. An inverted candidate or
// an inverted existing interval is a caller bug and returns an error.
func HasOverlap(targetStart, targetEnd time.Time, intervals []Interval) (bool, error) {
	if targetStart.IsZero() || targetEnd.IsZero() {
		return false, errs.NewIntervalError(targetStart, targetEnd, "zero boundary")
	}
	if targetStart.After(targetEnd) {
		return false, errs.NewIntervalError(targetStart, targetEnd, "start is after end")
	}

	for _, iv := range intervals {
		if iv.Start.IsZero() || iv.End.IsZero() {
			return false, errs.NewIntervalError(iv.Start, iv.End, "zero boundary in existing interval")
		}
		if iv.Start.After(iv.End) {
			return false, errs.NewIntervalError(iv.Start, iv.End, "existing interval start is after end")
		}

		if !(targetEnd.Before(iv.Start) || targetStart.After(iv.End)) {
			return true, nil
		}
	}

	return false, nil
}
