package insights

import (
	"testing"
	"time"

	"github.com/shopledger/backend/internal/domain/entity"
)

func TestAnalyzePeakTimes(t *testing.T) {
	at := func(day time.Time, hour int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, 30, 0, 0, time.UTC)
	}

	t.Run("busiest hour wins by revenue, not sale count", func(t *testing.T) {
		wednesday := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
		sales := []*entity.Sale{
			testSale(t, "A", 1, 200, at(wednesday, 9)),
			testSale(t, "B", 1, 200, at(wednesday, 9)),
			testSale(t, "C", 1, 100, at(wednesday, 9)), // 500 across three sales
			testSale(t, "D", 1, 150, at(wednesday, 14)),
			testSale(t, "E", 1, 150, at(wednesday, 14)), // 300 across two sales
		}

		peaks := AnalyzePeakTimes(sales)
		if peaks.BusiestHour != "9:00 - 10:00" {
			t.Errorf("expected 9:00 - 10:00, got %q", peaks.BusiestHour)
		}
	})

	t.Run("busiest and slowest day by weekday revenue", func(t *testing.T) {
		monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		sales := []*entity.Sale{
			testSale(t, "A", 1, 500, at(monday, 10)),
			testSale(t, "B", 1, 100, at(monday.AddDate(0, 0, 4), 10)), // Friday
			testSale(t, "C", 1, 300, at(monday.AddDate(0, 0, 5), 10)), // Saturday
		}

		peaks := AnalyzePeakTimes(sales)
		if peaks.BusiestDay != "Monday" {
			t.Errorf("expected Monday, got %q", peaks.BusiestDay)
		}
		// Sunday has zero revenue and the lowest index among the zeros.
		if peaks.SlowestDay != "Sunday" {
			t.Errorf("expected Sunday, got %q", peaks.SlowestDay)
		}
	})

	t.Run("hourly chart always has 24 buckets", func(t *testing.T) {
		peaks := AnalyzePeakTimes([]*entity.Sale{
			testSale(t, "A", 1, 50, at(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), 16)),
		})

		if len(peaks.HourlyChart) != 24 {
			t.Fatalf("expected 24 buckets, got %d", len(peaks.HourlyChart))
		}
		if peaks.HourlyChart[0].Hour != "0:00 - 1:00" {
			t.Errorf("unexpected first bucket label %q", peaks.HourlyChart[0].Hour)
		}
		assertDecimal(t, peaks.HourlyChart[16].Sales, 50)
		assertDecimal(t, peaks.HourlyChart[0].Sales, 0)
	})

	t.Run("no sales reports N/A everywhere", func(t *testing.T) {
		peaks := AnalyzePeakTimes(nil)
		if peaks.BusiestHour != "N/A" || peaks.BusiestDay != "N/A" || peaks.SlowestDay != "N/A" {
			t.Errorf("expected N/A labels, got %q / %q / %q",
				peaks.BusiestHour, peaks.BusiestDay, peaks.SlowestDay)
		}
		if len(peaks.HourlyChart) != 24 {
			t.Errorf("expected 24 buckets even with no sales, got %d", len(peaks.HourlyChart))
		}
	})

	t.Run("ties resolve to the earliest hour", func(t *testing.T) {
		day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
		sales := []*entity.Sale{
			testSale(t, "A", 1, 100, at(day, 15)),
			testSale(t, "B", 1, 100, at(day, 8)),
		}

		peaks := AnalyzePeakTimes(sales)
		if peaks.BusiestHour != "8:00 - 9:00" {
			t.Errorf("expected the earlier tied hour, got %q", peaks.BusiestHour)
		}
	})
}
