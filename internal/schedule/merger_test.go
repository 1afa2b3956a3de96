package schedule

import "testing"

func TestExpandRangeCompleteness(t *testing.T) {
	days := ExpandRange("2025-05-25", "2025-05-27")
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	want := []string{"2025-05-25", "2025-05-26", "2025-05-27"}
	for i, date := range want {
		if days[i].Date != date {
			t.Fatalf("day %d: got %q, want %q", i, days[i].Date, date)
		}
		if days[i].Activities == nil || len(days[i].Activities) != 0 {
			t.Fatalf("day %d should start with an empty activity list", i)
		}
	}
	if days[0].DayOfWeek != "Sun" || days[1].DayOfWeek != "Mon" {
		t.Fatalf("weekday abbreviations wrong: %q %q", days[0].DayOfWeek, days[1].DayOfWeek)
	}
}

func TestExpandRangeSingleDay(t *testing.T) {
	days := ExpandRange("2025-05-25", "2025-05-25")
	if len(days) != 1 || days[0].Date != "2025-05-25" {
		t.Fatalf("zero-length range should yield exactly one day: %+v", days)
	}
}

func TestExpandRangeMissingBound(t *testing.T) {
	if days := ExpandRange("", "2025-05-27"); len(days) != 0 {
		t.Fatalf("missing start should yield empty sequence, got %+v", days)
	}
	if days := ExpandRange("2025-05-25", ""); len(days) != 0 {
		t.Fatalf("missing end should yield empty sequence, got %+v", days)
	}
}

func TestExpandRangeMalformedDate(t *testing.T) {
	if days := ExpandRange("not-a-date", "2025-05-27"); len(days) != 0 {
		t.Fatalf("malformed date should yield empty sequence, got %+v", days)
	}
}

func TestMergeDaysOverlay(t *testing.T) {
	overlay := []Day{{
		Date: "2025-05-26",
		Activities: []Activity{
			{Title: "Temple visit", TimeStart: "09:00", TimeEnd: "11:00"},
			{Title: "Street food", TimeStart: "18:00", TimeEnd: "20:00"},
		},
	}}

	merged := MergeDays("2025-05-25", "2025-05-27", overlay)
	if len(merged) != 3 {
		t.Fatalf("expected 3 days, got %d", len(merged))
	}
	if len(merged[0].Activities) != 0 || len(merged[2].Activities) != 0 {
		t.Fatalf("days without overlay data should stay empty")
	}
	got := merged[1].Activities
	if len(got) != 2 || got[0].Title != "Temple visit" || got[1].Title != "Street food" {
		t.Fatalf("overlay activities wrong or reordered: %+v", got)
	}
}

func TestMergeDaysDropsOutOfRange(t *testing.T) {
	overlay := []Day{{Date: "2025-06-01", Activities: []Activity{{Title: "Stray"}}}}
	merged := MergeDays("2025-05-25", "2025-05-27", overlay)
	if len(merged) != 3 {
		t.Fatalf("expected 3 days, got %d", len(merged))
	}
	for _, day := range merged {
		if len(day.Activities) != 0 {
			t.Fatalf("out-of-range day leaked into %s: %+v", day.Date, day.Activities)
		}
	}
}
