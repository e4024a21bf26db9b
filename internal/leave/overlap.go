package leave

import "time"

// overlapsAny reports whether the candidate [start,end] interval intersects
// any of the given requests. Both bounds are inclusive: a request ending on
// the candidate's start date already overlaps. Runs linear in len(open).
func overlapsAny(open []Leave, start, end time.Time) bool {
	for _, l := range open {
		if !l.StartDate.After(end) && !l.EndDate.Before(start) {
			return true
		}
	}
	return false
}

// inclusiveDays counts calendar days between two dates, both ends included.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
