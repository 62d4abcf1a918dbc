package care

import "time"

// Period is one of the four fixed daily time buckets.
type Period string

const (
	PeriodMorning Period = "morning"
	PeriodNoon    Period = "noon"
	PeriodEvening Period = "evening"
	PeriodBedtime Period = "bedtime"
)

// Periods lists the four buckets in chronological order (bedtime wraps midnight).
var Periods = []Period{PeriodMorning, PeriodNoon, PeriodEvening, PeriodBedtime}

// PeriodOf maps an instant to its daily bucket using the wall-clock hour in loc:
//
//	06-10 morning, 11-16 noon, 17-22 evening, 23-05 bedtime
//
// Every hour maps to exactly one bucket. Write-time and read-time classification
// must use the same location or the same event lands in different buckets.
func PeriodOf(t time.Time, loc *time.Location) Period {
	h := t.In(loc).Hour()
	switch {
	case h >= 6 && h <= 10:
		return PeriodMorning
	case h >= 11 && h <= 16:
		return PeriodNoon
	case h >= 17 && h <= 22:
		return PeriodEvening
	default:
		return PeriodBedtime
	}
}

// PeriodOfMillis classifies an epoch-millisecond timestamp, the form events
// carry on the wire.
func PeriodOfMillis(ms int64, loc *time.Location) Period {
	return PeriodOf(time.UnixMilli(ms), loc)
}
