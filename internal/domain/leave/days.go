package leave

import "math"

// TotalDays returns the inclusive calendar-day count between two dates:
// the same start and end date counts as one day. The difference is taken
// as an absolute value, so a reversed range yields the same count. No
// business-day or holiday logic applies.
func TotalDays(start, end Date) int {
	diff := end.Sub(start.Time).Hours() / 24
	return int(math.Ceil(math.Abs(diff))) + 1
}
