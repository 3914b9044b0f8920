package clock

import "time"

// ToDate truncates an instant to its UTC calendar date (midnight UTC).
func ToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FirstOfNextMonth returns midnight UTC on the first day of the month after t.
func FirstOfNextMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}

// LastDayOfMonth returns midnight UTC on the last day of t's month, computed
// as day zero of the next month.
func LastDayOfMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	return LastDayOfMonth(t).Day()
}

// DaysRemainingInMonth counts the days from t to month end, today inclusive.
func DaysRemainingInMonth(t time.Time) int {
	u := t.UTC()
	return DaysInMonth(u) - u.Day() + 1
}

// SameDate reports whether a and b fall on the same UTC calendar date.
func SameDate(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month() && au.Day() == bu.Day()
}
