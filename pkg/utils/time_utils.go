package utils

import "time"

const ISODate = "2006-01-02"

// ParseISODate accepts the calendar-date strings the API exchanges
// (YYYY-MM-DD). The zero time signals an unparseable value; callers decide
// how to render it.
func ParseISODate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func FormatISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ISODate)
}

// DurationDays is the inclusive day count of a date range; a 1-day trip has
// equal start and end dates.
func DurationDays(startDate, endDate string) int {
	start := ParseISODate(startDate)
	end := ParseISODate(endDate)
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
