package insights

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// noDataLabel is reported when a peak cannot be determined.
const noDataLabel = "N/A"

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// HourlySales is one bucket of the hour-of-day chart.
type HourlySales struct {
	Hour  string          `json:"hour"`
	Sales decimal.Decimal `json:"sales"`
}

// PeakTimes reports when the shop does its business: the busiest hour
// of day, the busiest and slowest days of week, and the full 24-bucket
// hourly revenue series.
type PeakTimes struct {
	BusiestHour string        `json:"busiest_hour"`
	BusiestDay  string        `json:"busiest_day"`
	SlowestDay  string        `json:"slowest_day"`
	HourlyChart []HourlySales `json:"hourly_chart"`
}

// AnalyzePeakTimes buckets sales revenue into 24 hour-of-day buckets
// and 7 day-of-week buckets (Sunday first), both in local time. Ties
// resolve to the lowest index.
func AnalyzePeakTimes(sales []*entity.Sale) *PeakTimes {
	var hourly [24]decimal.Decimal
	var weekly [7]decimal.Decimal

	for _, s := range sales {
		hourly[s.Date.Hour()] = hourly[s.Date.Hour()].Add(s.Total)
		weekly[s.Date.Weekday()] = weekly[s.Date.Weekday()].Add(s.Total)
	}

	chart := make([]HourlySales, 24)
	for h := range hourly {
		chart[h] = HourlySales{Hour: hourLabel(h), Sales: hourly[h]}
	}

	result := &PeakTimes{
		BusiestHour: noDataLabel,
		BusiestDay:  noDataLabel,
		SlowestDay:  noDataLabel,
		HourlyChart: chart,
	}
	if len(sales) == 0 {
		return result
	}

	busiestHour := 0
	for h := 1; h < len(hourly); h++ {
		if hourly[h].GreaterThan(hourly[busiestHour]) {
			busiestHour = h
		}
	}
	result.BusiestHour = hourLabel(busiestHour)

	busiestDay, slowestDay := 0, 0
	for d := 1; d < len(weekly); d++ {
		if weekly[d].GreaterThan(weekly[busiestDay]) {
			busiestDay = d
		}
		if weekly[d].LessThan(weekly[slowestDay]) {
			slowestDay = d
		}
	}
	result.BusiestDay = weekdayNames[busiestDay]
	result.SlowestDay = weekdayNames[slowestDay]

	return result
}

// hourLabel renders an hour bucket as "9:00 - 10:00".
func hourLabel(hour int) string {
	return fmt.Sprintf("%d:00 - %d:00", hour, hour+1)
}
