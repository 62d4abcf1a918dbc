package care

import "time"

// DayGroup is one calendar day's events for the monthly log view.
type DayGroup struct {
	Date   time.Time // local midnight of the day
	Events []Event
}

// GroupByMonth partitions a month's events into day groups, last day of the
// month first. Days with no events are omitted; within a day events keep
// their incoming relative order.
func GroupByMonth(events []Event, year int, month time.Month, loc *time.Location) []DayGroup {
	lastDay := time.Date(year, month+1, 1, 0, 0, 0, 0, loc).AddDate(0, 0, -1).Day()

	groups := make([]DayGroup, 0)
	for day := lastDay; day >= 1; day-- {
		dayStart := time.Date(year, month, day, 0, 0, 0, 0, loc)

		var bucket []Event
		for _, e := range events {
			if SameDay(e.OccurredAt.In(loc), dayStart) {
				bucket = append(bucket, e)
			}
		}
		if len(bucket) == 0 {
			continue
		}
		groups = append(groups, DayGroup{Date: dayStart, Events: bucket})
	}
	return groups
}

// Visible applies the display-depth policy over already-grouped days: with
// defaultDays == 0 or the expanded flag set, every group shows; otherwise
// only the defaultDays most recent. A slice over the computed sequence, never
// a recomputation.
func Visible(groups []DayGroup, defaultDays int, expanded bool) []DayGroup {
	if defaultDays <= 0 || expanded || len(groups) <= defaultDays {
		return groups
	}
	return groups[:defaultDays]
}
