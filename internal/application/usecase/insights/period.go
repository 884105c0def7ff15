// Package insights contains the statistics engine and its delivery
// use cases. The engine is a set of pure functions over in-memory
// sale and expense snapshots: it performs no I/O, holds no state, and
// never mutates its inputs.
package insights

import "time"

// Period boundaries are inclusive at both ends with millisecond
// precision: a transaction stamped exactly on a boundary belongs to
// exactly one period when filtered with >= start && <= end.

// StartOfDay returns midnight of the calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of the calendar day containing t.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// StartOfWeek returns midnight of the Monday of the week containing t.
// A Sunday belongs to the week that started six days earlier.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

// EndOfWeek returns 23:59:59.999 of the Sunday of the week containing t.
func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

// StartOfMonth returns midnight of the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns 23:59:59.999 of the last day of the month containing t.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}

// PreviousDayRange returns the full calendar day before the day
// containing t.
func PreviousDayRange(t time.Time) (start, end time.Time) {
	start = StartOfDay(t).AddDate(0, 0, -1)
	return start, EndOfDay(start)
}

// PreviousWeekRange returns the full Monday-to-Sunday week before the
// week containing t.
func PreviousWeekRange(t time.Time) (start, end time.Time) {
	start = StartOfWeek(t).AddDate(0, 0, -7)
	return start, EndOfDay(start.AddDate(0, 0, 6))
}

// PreviousMonthRange returns the full calendar month before the month
// containing t. It is computed from the current month's start, so the
// range always covers a whole month regardless of its length.
func PreviousMonthRange(t time.Time) (start, end time.Time) {
	start = StartOfMonth(t).AddDate(0, -1, 0)
	return start, EndOfDay(start.AddDate(0, 1, -1))
}

// dayKey returns the calendar-day bucket key for a timestamp.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
