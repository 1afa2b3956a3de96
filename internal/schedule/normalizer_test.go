package schedule

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func mustJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestParseDailyPlansKeyedMap(t *testing.T) {
	plans := map[string]interface{}{
		"day2": map[string]interface{}{
			"date": "2025-05-26",
			"activities": []map[string]string{
				{"title": "Museum", "timeStart": "09:00", "timeEnd": "11:00"},
			},
		},
		"day1": map[string]interface{}{
			"date":       "2025-05-25",
			"activities": []map[string]string{},
		},
	}
	encoded, _ := json.Marshal(plans)
	raw := mustJSON(t, string(encoded)) // stored as a JSON string column

	days, err := ParseDailyPlans(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2025-05-25" || days[1].Date != "2025-05-26" {
		t.Fatalf("days not sorted by date: %v, %v", days[0].Date, days[1].Date)
	}
	if len(days[1].Activities) != 1 || days[1].Activities[0].Title != "Museum" {
		t.Fatalf("activities not carried over: %+v", days[1].Activities)
	}
}

func TestParseDailyPlansArrayPassthrough(t *testing.T) {
	raw := json.RawMessage(`[{"date":"2025-05-25","activities":[]},{"date":"2025-05-26","activities":[]}]`)
	days, err := ParseDailyPlans(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 2 || days[0].Date != "2025-05-25" {
		t.Fatalf("array form not used directly: %+v", days)
	}
}

func TestParseDailyPlansDoubleEncoding(t *testing.T) {
	inner := `{"day1":{"date":"2025-05-25","activities":[{"title":"Walk"}]}}`
	once, _ := json.Marshal(inner) // string containing JSON
	twice, _ := json.Marshal(string(once))

	days, err := ParseDailyPlans(twice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2025-05-25" {
		t.Fatalf("double-encoded map not recovered: %+v", days)
	}
	if days[0].Activities[0].Title != "Walk" {
		t.Fatalf("activity lost through double decoding: %+v", days[0].Activities)
	}
}

func TestParseDailyPlansTripleEncodingIsPlainString(t *testing.T) {
	inner := `{"day1":{"date":"2025-05-25","activities":[]}}`
	once, _ := json.Marshal(inner)
	twice, _ := json.Marshal(string(once))
	thrice, _ := json.Marshal(string(twice))

	days, err := ParseDailyPlans(thrice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("third encoding level should not be re-parsed, got %+v", days)
	}
}

func TestParseDailyPlansEscapedRetry(t *testing.T) {
	// Stray escapes around every quote, as some legacy rows carry.
	raw := mustJSON(t, `{\"day1\":{\"date\":\"2025-05-25\",\"activities\":[]}}`)
	days, err := ParseDailyPlans(raw)
	if err != nil {
		t.Fatalf("de-escaping retry failed: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2025-05-25" {
		t.Fatalf("unexpected days: %+v", days)
	}
}

func TestParseDailyPlansMalformed(t *testing.T) {
	raw := mustJSON(t, "{not valid json")
	_, err := ParseDailyPlans(raw)
	if !errors.Is(err, ErrScheduleParse) {
		t.Fatalf("expected ErrScheduleParse, got %v", err)
	}
}

func TestNormalizeMalformedFallsBackToEmpty(t *testing.T) {
	days := Normalize(nil, mustJSON(t, "{not valid json"))
	if days == nil || len(days) != 0 {
		t.Fatalf("expected empty day list, got %#v", days)
	}
}

func TestNormalizePrefersItineraryDays(t *testing.T) {
	canonical := []Day{{Date: "2025-05-25", Activities: []Activity{{Title: "Tour", TimeStart: "10:00", TimeEnd: "12:00"}}}}
	days := Normalize(canonical, json.RawMessage(`{"day1":{"date":"1999-01-01","activities":[]}}`))
	if len(days) != 1 || days[0].Date != "2025-05-25" {
		t.Fatalf("itineraryDays should be authoritative: %+v", days)
	}
}

func TestNormalizeDaysIdempotent(t *testing.T) {
	canonical := []Day{
		{Date: "2025-05-25", Activities: []Activity{
			{ID: "a1", Title: "City Tour", TimeStart: "09:00", TimeEnd: "12:00", Location: "Old town", Description: "Walking tour"},
		}},
		{Date: "2025-05-26", Activities: []Activity{}},
	}
	once := NormalizeDays(canonical)
	twice := NormalizeDays(once)
	if !reflect.DeepEqual(canonical, once) || !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalization of canonical input changed it:\n%+v\n%+v", canonical, once)
	}
}

func TestNormalizeActivityDefaults(t *testing.T) {
	got := NormalizeActivity(Activity{Title: "City Tour"})
	want := Activity{Title: "City Tour", TimeStart: "00:00", TimeEnd: "23:59"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	blank := NormalizeActivity(Activity{})
	if blank.Title != DefaultActivityTitle {
		t.Fatalf("missing title should get placeholder, got %q", blank.Title)
	}
}

func TestNormalizeWrapsLoneActivityObject(t *testing.T) {
	raw := mustJSON(t, `{"day1":{"date":"2025-05-25","activities":{"title":"Solo"}}}`)
	days := Normalize(nil, raw)
	if len(days) != 1 || len(days[0].Activities) != 1 {
		t.Fatalf("single activity object should be wrapped: %+v", days)
	}
	if days[0].Activities[0].Title != "Solo" {
		t.Fatalf("unexpected activity: %+v", days[0].Activities[0])
	}
}

func TestParseDailyPlansDropsDatelessEntries(t *testing.T) {
	raw := mustJSON(t, `{"day1":{"date":"2025-05-25","activities":[]},"day2":{"activities":[]}}`)
	days, err := ParseDailyPlans(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("dateless entry should be dropped silently, got %+v", days)
	}
}

func TestEncodeDailyPlansRoundTrip(t *testing.T) {
	days := []Day{
		{Date: "2025-05-25", Activities: []Activity{{Title: "Breakfast", TimeStart: "08:00", TimeEnd: "09:00"}}},
		{Date: "2025-05-26", Activities: []Activity{}},
		{Date: "2025-05-27", Activities: []Activity{{Title: "Flight home"}}},
	}

	encoded, err := EncodeDailyPlans(days)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var keyed map[string]struct {
		Date       string     `json:"date"`
		Activities []Activity `json:"activities"`
	}
	if err := json.Unmarshal([]byte(encoded), &keyed); err != nil {
		t.Fatalf("encoded dailyPlans is not valid JSON: %v", err)
	}
	if keyed["day1"].Date != "2025-05-25" || keyed["day3"].Date != "2025-05-27" {
		t.Fatalf("positional keys wrong: %+v", keyed)
	}

	decoded, err := ParseDailyPlans(mustJSON(t, encoded))
	if err != nil {
		t.Fatalf("round-trip parse: %v", err)
	}
	if len(decoded) != len(days) {
		t.Fatalf("round trip lost days: %d != %d", len(decoded), len(days))
	}
	for i := range days {
		if decoded[i].Date != days[i].Date {
			t.Fatalf("day %d date %q != %q", i, decoded[i].Date, days[i].Date)
		}
	}
	// Encoding default-fills, so compare against the normalized source.
	if decoded[2].Activities[0].TimeEnd != "23:59" {
		t.Fatalf("defaults not applied on encode: %+v", decoded[2].Activities[0])
	}
}
