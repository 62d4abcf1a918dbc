package pets

import "time"

// Age is a whole-year/whole-month age at some date.
type Age struct {
	Years  int
	Months int
}

// AgeAt computes the pet's age at the given date by plain date comparison: a
// month is complete only once the same day-of-month has been reached. For
// births on a day the current month does not have (e.g. the 31st), the month
// completes on the first day of the next month.
func AgeAt(birth, at time.Time) Age {
	if at.Before(birth) {
		return Age{}
	}

	months := (at.Year()-birth.Year())*12 + int(at.Month()) - int(birth.Month())
	if at.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}

	return Age{Years: months / 12, Months: months % 12}
}

// NextBirthday returns the next anniversary of birth at or after today, and
// how many days away it is. A Feb 29 birth celebrates on Mar 1 in common
// years.
func NextBirthday(birth, today time.Time) (time.Time, int) {
	loc := today.Location()
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	next := birthdayInYear(birth, day.Year(), loc)
	if next.Before(day) {
		next = birthdayInYear(birth, day.Year()+1, loc)
	}

	// Count calendar days in UTC so a DST transition in between cannot
	// shave the difference below a whole day.
	a := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
	return next, int(b.Sub(a).Hours() / 24)
}

func birthdayInYear(birth time.Time, year int, loc *time.Location) time.Time {
	d := time.Date(year, birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
	// time.Date normalizes Feb 29 to Mar 1 in common years, which is the
	// celebration policy we want.
	return d
}
