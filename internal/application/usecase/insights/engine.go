package insights

import (
	"time"

	"github.com/shopledger/backend/internal/domain/entity"
)

// Bundle is the full derived-insights payload. It is plain data with
// no behavior so callers can serialize it directly.
type Bundle struct {
	Trends           *TrendSummary   `json:"trends"`
	TopProducts      []ProductRank   `json:"top_products"`
	SlowMovers       []SlowMover     `json:"slow_movers"`
	PeakTimes        *PeakTimes      `json:"peak_times"`
	ExpenseBreakdown []CategoryTotal `json:"expense_breakdown"`
	Forecast         Forecast        `json:"forecast"`
	Health           Health          `json:"health"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// Compute derives the complete insights bundle from a consistent
// snapshot of the owner's sales and expenses. The snapshot order is
// irrelevant; nothing is mutated and no error paths exist — sparse
// data degrades to zeros and sentinel labels.
func Compute(now time.Time, sales []*entity.Sale, expenses []*entity.Expense) *Bundle {
	return &Bundle{
		Trends:           CalculateTrends(now, sales, expenses),
		TopProducts:      TopProducts(sales),
		SlowMovers:       SlowMovers(now, sales),
		PeakTimes:        AnalyzePeakTimes(sales),
		ExpenseBreakdown: ExpenseBreakdown(expenses),
		Forecast:         ForecastSales(sales),
		Health:           HealthScore(now, sales, expenses),
		GeneratedAt:      now,
	}
}
