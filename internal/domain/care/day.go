package care

import "time"

// Category identifies one kind of schedulable daily care.
type Category string

const (
	CategoryFood        Category = "food"
	CategoryWater       Category = "water"
	CategoryLitter      Category = "litter"
	CategoryGrooming    Category = "grooming"
	CategoryMedication  Category = "medication"
	CategorySupplements Category = "supplements"
	// CategoryWeight is the pseudo-category for weight measurements; an
	// event counts if it carries a weight, regardless of action flags.
	CategoryWeight Category = "weight"
)

// ScheduledCategories are the seven categories tracked as four-slot daily
// tasks. Deworming and bath are simple events, not expected several times a
// day, so they have no slots.
var ScheduledCategories = []Category{
	CategoryFood,
	CategoryWater,
	CategoryLitter,
	CategoryGrooming,
	CategoryMedication,
	CategorySupplements,
	CategoryWeight,
}

// TaskProgress is one category's four-slot completion state for a day.
type TaskProgress struct {
	Morning bool
	Noon    bool
	Evening bool
	Bedtime bool
}

// Complete reports whether all four periods have at least one event.
func (p TaskProgress) Complete() bool {
	return p.Morning && p.Noon && p.Evening && p.Bedtime
}

func (p *TaskProgress) mark(period Period) {
	switch period {
	case PeriodMorning:
		p.Morning = true
	case PeriodNoon:
		p.Noon = true
	case PeriodEvening:
		p.Evening = true
	case PeriodBedtime:
		p.Bedtime = true
	}
}

// DayStatus maps each scheduled category to its progress for one local day.
type DayStatus map[Category]TaskProgress

// covers reports whether the event counts toward the category.
func covers(e Event, c Category) bool {
	switch c {
	case CategoryFood:
		return e.Actions.Food
	case CategoryWater:
		return e.Actions.Water
	case CategoryLitter:
		return e.Actions.Litter
	case CategoryGrooming:
		return e.Actions.Grooming
	case CategoryMedication:
		return e.Actions.Medication
	case CategorySupplements:
		return e.Actions.Supplements
	case CategoryWeight:
		return e.HasWeight()
	default:
		return false
	}
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether the instant falls within the local day starting at
// dayStart.
func SameDay(t, dayStart time.Time) bool {
	end := dayStart.AddDate(0, 0, 1)
	return !t.Before(dayStart) && t.Before(end)
}

// AggregateDay folds the events that fall on ref's local day into a
// per-category four-slot record. Slots only move false -> true: adding more
// events never clears a slot. A single event touches exactly one period (its
// own) but may cover several categories.
func AggregateDay(events []Event, ref time.Time, loc *time.Location) DayStatus {
	dayStart := StartOfDay(ref, loc)

	status := make(DayStatus, len(ScheduledCategories))
	for _, c := range ScheduledCategories {
		status[c] = TaskProgress{}
	}

	for _, e := range events {
		if !SameDay(e.OccurredAt.In(loc), dayStart) {
			continue
		}
		period := PeriodOf(e.OccurredAt, loc)
		for _, c := range ScheduledCategories {
			if !covers(e, c) {
				continue
			}
			p := status[c]
			p.mark(period)
			status[c] = p
		}
	}

	return status
}
