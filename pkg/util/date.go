package util

import "time"

// FormatDay renders a time as YYYY-MM-DD, the wire format for bar dates.
func FormatDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDay tries YYYY-MM-DD then RFC3339. Returns (t, true) if any worked.
func ParseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
