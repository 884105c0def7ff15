package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// point is a timestamped monetary amount. Sales and expenses are
// reduced to points once per computation so that every trend, forecast
// and health metric shares the same range primitive and therefore the
// same boundary semantics.
type point struct {
	at     time.Time
	amount decimal.Decimal
}

// salePoints projects a sale snapshot onto points using the sale total.
func salePoints(sales []*entity.Sale) []point {
	points := make([]point, len(sales))
	for i, s := range sales {
		points[i] = point{at: s.Date, amount: s.Total}
	}
	return points
}

// expensePoints projects an expense snapshot onto points.
func expensePoints(expenses []*entity.Expense) []point {
	points := make([]point, len(expenses))
	for i, e := range expenses {
		points[i] = point{at: e.Date, amount: e.Amount}
	}
	return points
}

// totalInRange sums the amounts of all points whose timestamp falls
// within [start, end], both ends inclusive. Input order is irrelevant.
func totalInRange(points []point, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, p := range points {
		if !p.at.Before(start) && !p.at.After(end) {
			total = total.Add(p.amount)
		}
	}
	return total
}

// totalsByDay groups point amounts by calendar day.
func totalsByDay(points []point) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, p := range points {
		key := dayKey(p.at)
		totals[key] = totals[key].Add(p.amount)
	}
	return totals
}
