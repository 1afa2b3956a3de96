package utils

import "testing"

func TestDurationDaysInclusive(t *testing.T) {
	if got := DurationDays("2025-05-25", "2025-05-27"); got != 3 {
		t.Errorf("DurationDays = %d, want 3", got)
	}
	if got := DurationDays("2025-05-25", "2025-05-25"); got != 1 {
		t.Errorf("single-day DurationDays = %d, want 1", got)
	}
}

func TestDurationDaysBadInput(t *testing.T) {
	if got := DurationDays("not-a-date", "2025-05-27"); got != 0 {
		t.Errorf("DurationDays with bad start = %d, want 0", got)
	}
	if got := DurationDays("2025-05-27", ""); got != 0 {
		t.Errorf("DurationDays with empty end = %d, want 0", got)
	}
}

func TestParseISODateRoundTrip(t *testing.T) {
	parsed := ParseISODate("2025-12-31")
	if parsed.IsZero() {
		t.Fatal("valid date parsed as zero")
	}
	if got := FormatISODate(parsed); got != "2025-12-31" {
		t.Errorf("round trip = %q, want 2025-12-31", got)
	}
}
