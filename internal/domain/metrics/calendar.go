package metrics

import "time"

func isBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// StartOfDay and EndOfDay bound the calendar day of t in loc (inclusive).
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// BusinessDaysInMonth counts Monday-Friday days of the month of now.
func BusinessDaysInMonth(now time.Time, loc *time.Location) int {
	first := StartOfDay(now, loc).AddDate(0, 0, 1-StartOfDay(now, loc).Day())
	n := 0
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			n++
		}
	}
	return n
}

// BusinessDaysElapsed counts business days from the 1st through today.
func BusinessDaysElapsed(now time.Time, loc *time.Location) int {
	today := StartOfDay(now, loc)
	n := 0
	for d := today.AddDate(0, 0, 1-today.Day()); !d.After(today); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			n++
		}
	}
	return n
}

// RemainingBusinessDays counts business days after today until month end.
func RemainingBusinessDays(now time.Time, loc *time.Location) int {
	return BusinessDaysInMonth(now, loc) - BusinessDaysElapsed(now, loc)
}
