package schedule

import (
	"log"
	"time"
)

const dateLayout = "2006-01-02"

// ExpandRange emits one empty Day per calendar date from start to end
// inclusive, in order, each tagged with its English weekday abbreviation.
// A missing or malformed bound yields an empty sequence rather than an
// error; callers render whatever they get.
func ExpandRange(startDate, endDate string) []Day {
	if startDate == "" || endDate == "" {
		return nil
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		log.Printf("schedule: unparseable start date %q", startDate)
		return nil
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		log.Printf("schedule: unparseable end date %q", endDate)
		return nil
	}

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:       d.Format(dateLayout),
			DayOfWeek:  d.Weekday().String()[:3],
			Activities: []Activity{},
		})
	}
	return days
}

// MergeDays overlays normalized day data onto the full calendar span, so
// dates with no persisted activities still appear as empty entries. Days
// outside the range are dropped with a diagnostic log only.
func MergeDays(startDate, endDate string, days []Day) []Day {
	calendar := ExpandRange(startDate, endDate)
	if len(calendar) == 0 {
		return calendar
	}

	byDate := make(map[string]int, len(calendar))
	for i, day := range calendar {
		byDate[day.Date] = i
	}

	for _, day := range days {
		i, ok := byDate[day.Date]
		if !ok {
			log.Printf("schedule: day %s outside itinerary range %s..%s, skipping", day.Date, startDate, endDate)
			continue
		}
		if day.Activities != nil {
			calendar[i].Activities = day.Activities
		}
	}
	return calendar
}
