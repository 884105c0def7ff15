package insights

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// CategoryTotal is one slice of the expense distribution.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ExpenseBreakdown sums expense amounts by category and returns the
// distribution sorted by value descending. Percentages are left to the
// consumer rendering the proportional chart.
func ExpenseBreakdown(expenses []*entity.Expense) []CategoryTotal {
	index := make(map[entity.ExpenseCategory]int)
	totals := make([]CategoryTotal, 0)

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Name: string(e.Category)})
		}
		totals[i].Value = totals[i].Value.Add(e.Amount)
	}

	sort.SliceStable(totals, func(a, b int) bool {
		return totals[a].Value.GreaterThan(totals[b].Value)
	})
	return totals
}

// totalAmount sums a point projection outright; shared by the health
// score's lifetime figures.
func totalAmount(points []point) decimal.Decimal {
	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p.amount)
	}
	return total
}
