package tracker

import "time"

// All helpers compare calendar fields in now's location; t is converted first.

// StartOfDay returns midnight of t's calendar date in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday on or before t
func StartOfWeek(t time.Time) time.Time {
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -sinceMonday)
}

// FirstOfMonth returns midnight on day one of t's month
func FirstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// FirstOfLastMonth returns midnight on day one of the month before t's.
// January rolls back to December of the previous year.
func FirstOfLastMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, -1, 0)
}

// SameDay reports whether t falls on now's calendar date
func SameDay(t, now time.Time) bool {
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}

// IsYesterday reports whether t falls on the calendar date before now's
func IsYesterday(t, now time.Time) bool {
	return SameDay(t, StartOfDay(now).AddDate(0, 0, -1))
}

// SameISOWeek reports whether t and now share ISO year, ISO week and
// calendar year. The calendar-year term means the days of a week that
// straddles New Year are not treated as the same week.
func SameISOWeek(t, now time.Time) bool {
	t = t.In(now.Location())
	ty, tw := t.ISOWeek()
	ny, nw := now.ISOWeek()
	return ty == ny && tw == nw && t.Year() == now.Year()
}

// SameMonth reports whether t and now share calendar year and month
func SameMonth(t, now time.Time) bool {
	t = t.In(now.Location())
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// OlderThanLastFullWeek reports whether t is before the Monday of the week
// preceding now's week
func OlderThanLastFullWeek(t, now time.Time) bool {
	lastFullWeekStart := StartOfWeek(now).AddDate(0, 0, -7)
	return t.Before(lastFullWeekStart)
}

// OlderThanLastFullMonth reports whether t is before the first day of the
// month preceding now's month
func OlderThanLastFullMonth(t, now time.Time) bool {
	return t.Before(FirstOfLastMonth(now))
}
