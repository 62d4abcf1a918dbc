package care

import "time"

// Score weights per component. An event scores the sum of every matching row;
// deworming and bath contribute nothing.
const (
	pointsLitterDirty = 4
	pointsLitterClean = 1
	pointsFood        = 2
	pointsWater       = 2
	pointsGrooming    = 3
	pointsMedication  = 2
	pointsSupplements = 2
	pointsWeight      = 2
)

// EventScore returns the weighted care score of a single event.
func EventScore(e Event) int {
	score := 0
	if e.Actions.Litter {
		if e.LitterClean {
			score += pointsLitterClean
		} else {
			score += pointsLitterDirty
		}
	}
	if e.Actions.Food {
		score += pointsFood
	}
	if e.Actions.Water {
		score += pointsWater
	}
	if e.Actions.Grooming {
		score += pointsGrooming
	}
	if e.Actions.Medication {
		score += pointsMedication
	}
	if e.Actions.Supplements {
		score += pointsSupplements
	}
	if e.HasWeight() {
		score += pointsWeight
	}
	return score
}

// Window is a half-open time range [From, To). A nil From means unbounded
// (all-time); a nil To means up to now.
type Window struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && !t.Before(*w.To) {
		return false
	}
	return true
}

// AllTime is the unbounded window.
func AllTime() Window { return Window{} }

// WeekToDate returns the current ISO-style week: the most recent Monday 00:00
// in loc at or before now, through the following Monday, exclusive. Sunday
// counts as day 7 of the running week.
func WeekToDate(now time.Time, loc *time.Location) Window {
	day := StartOfDay(now, loc)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	from := day.AddDate(0, 0, -offset)
	to := from.AddDate(0, 0, 7)
	return Window{From: &from, To: &to}
}

// WindowedTotals sums event scores per caregiver over the window. Every known
// caregiver starts at zero so quiet caregivers still appear; events from
// authors not in the registry are skipped, not an error.
func WindowedTotals(events []Event, w Window, caregivers []string) map[string]int {
	totals := make(map[string]int, len(caregivers))
	for _, name := range caregivers {
		totals[name] = 0
	}
	for _, e := range events {
		if !w.Contains(e.OccurredAt) {
			continue
		}
		if _, known := totals[e.Author]; !known {
			continue
		}
		totals[e.Author] += EventScore(e)
	}
	return totals
}

// DayTotals is one calendar day's per-caregiver score, for charting.
type DayTotals struct {
	Date   time.Time // local midnight
	Totals map[string]int
}

// DailySeries buckets the trailing n calendar days (today first going back)
// into per-day score totals. Each day i in [0, n) is the local day now - i.
func DailySeries(events []Event, now time.Time, n int, loc *time.Location, caregivers []string) []DayTotals {
	series := make([]DayTotals, 0, n)
	for i := 0; i < n; i++ {
		from := StartOfDay(now, loc).AddDate(0, 0, -i)
		to := from.AddDate(0, 0, 1)
		w := Window{From: &from, To: &to}
		series = append(series, DayTotals{
			Date:   from,
			Totals: WindowedTotals(events, w, caregivers),
		})
	}
	return series
}
