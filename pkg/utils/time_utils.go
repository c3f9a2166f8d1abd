package utils

import "time"

// Calendar dates in requests and responses use this layout.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// TotalDays is the inclusive day count between two calendar dates.
// Equal dates yield 1.
func TotalDays(start, end time.Time) int {
	s := start.Truncate(24 * time.Hour)
	e := end.Truncate(24 * time.Hour)
	return int(e.Sub(s).Hours()/24) + 1
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
