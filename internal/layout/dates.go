package layout

import "time"

// DateOf truncates an instant to midnight UTC. All layout math works on
// these normalized dates so equality checks are exact.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysFromMonday maps Go's Sunday-first weekday to a Monday-relative
// offset in [0,6].
func DaysFromMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfWeek returns the Monday of the week containing date.
func StartOfWeek(date time.Time) time.Time {
	return DateOf(date).AddDate(0, 0, -DaysFromMonday(date))
}

func FirstOfMonth(date time.Time) time.Time {
	d := DateOf(date)
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func LastOfMonth(date time.Time) time.Time {
	return FirstOfMonth(date).AddDate(0, 1, -1)
}

func DaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// AddMonths shifts a date by whole months, clamping the day-of-month to
// the last valid day of the target month. Jan 31 + 1 month is Feb 28
// (or 29), never a March spill-over.
func AddMonths(date time.Time, months int) time.Time {
	d := DateOf(date)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := d.Day()
	if limit := DaysInMonth(first.Year(), first.Month()); day > limit {
		day = limit
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// MinDate and MaxDate order two dates without caring which endpoint was
// entered first; visual date selection relies on this.
func MinDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func MaxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
