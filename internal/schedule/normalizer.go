// Package schedule reconciles the two wire shapes an itinerary's day-by-day
// plan can arrive in: a structured `itineraryDays` array, or a `dailyPlans`
// JSON string keyed day1..dayN (sometimes double-encoded). Reads normalize
// both into one ordered-by-date day list; saves re-derive the keyed string.
package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
)

// ErrScheduleParse marks a dailyPlans value that stays undecodable even
// after the de-escaping retry. Callers recover to an empty schedule; a
// malformed plan must never fail the whole itinerary fetch.
var ErrScheduleParse = errors.New("schedule: dailyPlans cannot be parsed")

const (
	DefaultActivityTitle = "Untitled activity"
	DefaultTimeStart     = "00:00"
	DefaultTimeEnd       = "23:59"
)

type Activity struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	TimeStart   string `json:"timeStart"`
	TimeEnd     string `json:"timeEnd"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type Day struct {
	Date       string     `json:"date"`
	DayOfWeek  string     `json:"dayOfWeek,omitempty"`
	Activities []Activity `json:"activities"`
}

// dayPayload defers activity decoding: legacy rows sometimes hold a single
// activity object where an array belongs.
type dayPayload struct {
	Date       string          `json:"date"`
	DayOfWeek  string          `json:"dayOfWeek"`
	Activities json.RawMessage `json:"activities"`
}

// Normalize resolves the authoritative day list for a raw itinerary record.
// A non-empty itineraryDays sequence wins; otherwise dailyPlans is parsed.
// Parse failures degrade to an empty list with a diagnostic log.
func Normalize(itineraryDays []Day, dailyPlans json.RawMessage) []Day {
	if len(itineraryDays) > 0 {
		return NormalizeDays(itineraryDays)
	}
	days, err := ParseDailyPlans(dailyPlans)
	if err != nil {
		log.Printf("schedule: falling back to empty day list: %v", err)
		return []Day{}
	}
	return NormalizeDays(days)
}

// ParseDailyPlans decodes a dailyPlans field in any of its known disguises:
// a keyed map, an array, either of those wrapped in one or two levels of
// JSON string encoding, or the same with stray backslash escapes.
func ParseDailyPlans(raw json.RawMessage) ([]Day, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	// Coerce to the string payload the legacy column stores. A record that
	// carries the structure inline is already its own payload.
	payload := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScheduleParse, err)
		}
		payload = s
	}

	payload, err := validatePayload(payload)
	if err != nil {
		return nil, err
	}

	// One extra decode level handles double encoding. A third level is not
	// supported: a string inside a string stays a plain string value.
	if first(payload) == '"' {
		var inner string
		if json.Unmarshal([]byte(payload), &inner) == nil && json.Valid([]byte(inner)) {
			payload = inner
		} else {
			return []Day{}, nil
		}
	}

	switch first(payload) {
	case '[':
		return decodeDayList([]byte(payload))
	case '{':
		return decodeDayMap([]byte(payload))
	default:
		// Scalar payloads (numbers, bools, bare strings) are not a schedule.
		return []Day{}, nil
	}
}

// validatePayload checks the payload parses as JSON, retrying once with
// backslashes stripped. The original error is the one reported.
func validatePayload(payload string) (string, error) {
	if json.Valid([]byte(payload)) {
		return payload, nil
	}
	stripped := strings.ReplaceAll(payload, `\`, "")
	if json.Valid([]byte(stripped)) {
		return stripped, nil
	}
	return "", fmt.Errorf("%w: invalid JSON %q", ErrScheduleParse, truncate(payload, 80))
}

func decodeDayList(data []byte) ([]Day, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScheduleParse, err)
	}
	days := make([]Day, 0, len(entries))
	for _, entry := range entries {
		day, ok := decodeDay(entry)
		if !ok {
			continue
		}
		days = append(days, day)
	}
	return days, nil
}

func decodeDayMap(data []byte) ([]Day, error) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScheduleParse, err)
	}
	days := make([]Day, 0, len(entries))
	for key, entry := range entries {
		day, ok := decodeDay(entry)
		if !ok || day.Date == "" {
			// Entries without a date cannot be placed on the calendar.
			log.Printf("schedule: dropping dailyPlans entry %q without a date", key)
			continue
		}
		days = append(days, Day{Date: day.Date, Activities: day.Activities})
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

func decodeDay(raw json.RawMessage) (Day, bool) {
	var p dayPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Day{}, false
	}
	return Day{
		Date:       p.Date,
		DayOfWeek:  p.DayOfWeek,
		Activities: decodeActivities(p.Activities),
	}, true
}

// decodeActivities tolerates a missing field, an array, or a lone activity
// object in place of an array.
func decodeActivities(raw json.RawMessage) []Activity {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var many []Activity
	if json.Unmarshal(raw, &many) == nil {
		return many
	}
	var one Activity
	if json.Unmarshal(raw, &one) == nil {
		return []Activity{one}
	}
	return nil
}

// NormalizeDays applies field defaults in place of blanks. Activities are
// never nil afterwards. Existing activity ids are preserved; ids are issued
// at creation time by the service layer, not here, so normalizing an
// already-canonical list is idempotent.
func NormalizeDays(days []Day) []Day {
	out := make([]Day, len(days))
	for i, day := range days {
		activities := make([]Activity, len(day.Activities))
		for j, act := range day.Activities {
			activities[j] = NormalizeActivity(act)
		}
		out[i] = Day{Date: day.Date, DayOfWeek: day.DayOfWeek, Activities: activities}
	}
	return out
}

func NormalizeActivity(act Activity) Activity {
	if act.Title == "" {
		act.Title = DefaultActivityTitle
	}
	if act.TimeStart == "" {
		act.TimeStart = DefaultTimeStart
	}
	if act.TimeEnd == "" {
		act.TimeEnd = DefaultTimeEnd
	}
	return act
}

// EncodeDailyPlans serializes an ordered day list back into the keyed-map
// string the backend column stores. The key for position i is "day<i+1>";
// it intentionally tracks array position, not the calendar day number, to
// stay byte-compatible with existing stored data. The association breaks
// when days are sparse or reordered, a latent quirk callers inherit.
func EncodeDailyPlans(days []Day) (string, error) {
	type planEntry struct {
		Date       string     `json:"date"`
		Activities []Activity `json:"activities"`
	}
	plans := make(map[string]planEntry, len(days))
	for i, day := range days {
		activities := make([]Activity, len(day.Activities))
		for j, act := range day.Activities {
			activities[j] = NormalizeActivity(act)
		}
		plans[fmt.Sprintf("day%d", i+1)] = planEntry{Date: day.Date, Activities: activities}
	}
	encoded, err := json.Marshal(plans)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func first(s string) byte {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return s[i]
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
