package insights

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// minForecastDays is the minimum number of distinct sale-days required
// before a forecast is produced.
const minForecastDays = 7

// Forecast is a naive constant-rate projection: the average of the most
// recent seven daily totals, with no trend or seasonality adjustment.
type Forecast struct {
	NextDay  decimal.Decimal `json:"next_day"`
	NextWeek decimal.Decimal `json:"next_week"`
}

// ForecastSales projects the next day and week of sales using a simple
// moving average over the most recent seven distinct sale-days. With
// fewer than seven sale-days it returns a zero forecast; sparse history
// is a normal condition, not an error.
func ForecastSales(sales []*entity.Sale) Forecast {
	byDay := totalsByDay(salePoints(sales))
	if len(byDay) < minForecastDays {
		return Forecast{NextDay: decimal.Zero, NextWeek: decimal.Zero}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	sum := decimal.Zero
	for _, day := range days[:minForecastDays] {
		sum = sum.Add(byDay[day])
	}
	average := sum.Div(decimal.NewFromInt(minForecastDays))

	return Forecast{
		NextDay:  average,
		NextWeek: average.Mul(decimal.NewFromInt(7)),
	}
}
