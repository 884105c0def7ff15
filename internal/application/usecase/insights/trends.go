package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// trendChartDays is the fixed length of the daily chart series.
const trendChartDays = 30

// PeriodTrend compares a period's sales total against the immediately
// preceding period.
type PeriodTrend struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	Change   float64         `json:"change"`
}

// TrendChartPoint pairs one day's sales and expense totals for charting.
type TrendChartPoint struct {
	Date     string          `json:"date"`
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
}

// TrendSummary holds the day/week/month trends and the 30-day chart series.
type TrendSummary struct {
	Daily   PeriodTrend       `json:"daily"`
	Weekly  PeriodTrend       `json:"weekly"`
	Monthly PeriodTrend       `json:"monthly"`
	Chart   []TrendChartPoint `json:"trend_chart_data"`
}

// CalculateTrends computes current-vs-previous sales totals for the
// day, week and month containing now, plus a 30-point daily series of
// sales and expense totals ending today.
func CalculateTrends(now time.Time, sales []*entity.Sale, expenses []*entity.Expense) *TrendSummary {
	sp := salePoints(sales)

	prevDayStart, prevDayEnd := PreviousDayRange(now)
	prevWeekStart, prevWeekEnd := PreviousWeekRange(now)
	prevMonthStart, prevMonthEnd := PreviousMonthRange(now)

	summary := &TrendSummary{
		Daily:   periodTrend(sp, StartOfDay(now), EndOfDay(now), prevDayStart, prevDayEnd),
		Weekly:  periodTrend(sp, StartOfWeek(now), EndOfWeek(now), prevWeekStart, prevWeekEnd),
		Monthly: periodTrend(sp, StartOfMonth(now), EndOfMonth(now), prevMonthStart, prevMonthEnd),
	}

	salesByDay := totalsByDay(sp)
	expensesByDay := totalsByDay(expensePoints(expenses))

	chart := make([]TrendChartPoint, 0, trendChartDays)
	for i := trendChartDays - 1; i >= 0; i-- {
		day := dayKey(now.AddDate(0, 0, -i))
		chart = append(chart, TrendChartPoint{
			Date:     day,
			Sales:    salesByDay[day],
			Expenses: expensesByDay[day],
		})
	}
	summary.Chart = chart

	return summary
}

// periodTrend evaluates one current/previous period pair through the
// shared range primitive.
func periodTrend(points []point, curStart, curEnd time.Time, prevStart, prevEnd time.Time) PeriodTrend {
	current := totalInRange(points, curStart, curEnd)
	previous := totalInRange(points, prevStart, prevEnd)
	return PeriodTrend{
		Current:  current,
		Previous: previous,
		Change:   changePercent(current, previous),
	}
}

// changePercent returns the percent change from previous to current.
// A previous total of zero is treated as +100% when anything was sold
// and 0% when nothing was, so the value is always finite.
func changePercent(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.GreaterThan(decimal.Zero) {
			return 100
		}
		return 0
	}
	change, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return change
}
