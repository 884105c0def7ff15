package insights

import (
	"testing"
	"time"
)

func TestPeriodBoundaries(t *testing.T) {
	t.Run("day boundaries are inclusive at millisecond precision", func(t *testing.T) {
		start := StartOfDay(testNow)
		end := EndOfDay(testNow)

		if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
			t.Errorf("expected midnight start, got %s", start)
		}
		if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
			t.Errorf("expected 23:59:59 end, got %s", end)
		}
		if end.Nanosecond() != int(999*time.Millisecond) {
			t.Errorf("expected 999ms precision, got %dns", end.Nanosecond())
		}
	})

	t.Run("week starts on Monday", func(t *testing.T) {
		start := StartOfWeek(testNow)
		if start.Weekday() != time.Monday {
			t.Errorf("expected Monday, got %s", start.Weekday())
		}
		if got := start.Format("2006-01-02"); got != "2025-03-10" {
			t.Errorf("expected week start 2025-03-10, got %s", got)
		}
	})

	t.Run("Sunday belongs to the week that started six days earlier", func(t *testing.T) {
		sunday := time.Date(2025, time.March, 16, 12, 0, 0, 0, time.UTC)
		start := StartOfWeek(sunday)
		if got := start.Format("2006-01-02"); got != "2025-03-10" {
			t.Errorf("expected week start 2025-03-10, got %s", got)
		}
		end := EndOfWeek(sunday)
		if got := end.Format("2006-01-02"); got != "2025-03-16" {
			t.Errorf("expected week end 2025-03-16, got %s", got)
		}
	})

	t.Run("month boundaries cover the whole month", func(t *testing.T) {
		start := StartOfMonth(testNow)
		end := EndOfMonth(testNow)
		if got := start.Format("2006-01-02"); got != "2025-03-01" {
			t.Errorf("expected 2025-03-01, got %s", got)
		}
		if got := end.Format("2006-01-02"); got != "2025-03-31" {
			t.Errorf("expected 2025-03-31, got %s", got)
		}
	})

	t.Run("previous month spans the whole shorter month", func(t *testing.T) {
		march := time.Date(2025, time.March, 31, 10, 0, 0, 0, time.UTC)
		start, end := PreviousMonthRange(march)
		if got := start.Format("2006-01-02"); got != "2025-02-01" {
			t.Errorf("expected 2025-02-01, got %s", got)
		}
		if got := end.Format("2006-01-02"); got != "2025-02-28" {
			t.Errorf("expected 2025-02-28, got %s", got)
		}
	})

	t.Run("adjacent periods do not overlap", func(t *testing.T) {
		prevStart, prevEnd := PreviousDayRange(testNow)
		curStart := StartOfDay(testNow)
		if !prevEnd.Before(curStart) {
			t.Errorf("previous day end %s overlaps current day start %s", prevEnd, curStart)
		}
		if !prevStart.Before(prevEnd) {
			t.Error("previous day range is inverted")
		}
	})
}
