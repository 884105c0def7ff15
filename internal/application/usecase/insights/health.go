package insights

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// Health score business constants. The weights and breakpoints are
// fixed; downstream consumers depend on the exact values.
const (
	growthWeight   = 0.3
	profitWeight   = 0.4
	activityWeight = 0.3

	activityWindowDays = 30

	statusExcellent = "Excellent & Growing"
	statusGood      = "Good & Healthy"
	statusAttention = "Needs Attention"
	statusCritical  = "Critical Condition"
	statusNoData    = "No Data"
)

// Health is the composite 0-100 shop health index.
type Health struct {
	Score         int     `json:"score"`
	Status        string  `json:"status"`
	GrowthScore   float64 `json:"growth_score"`
	ProfitScore   float64 `json:"profit_score"`
	ActivityScore float64 `json:"activity_score"`
}

// HealthScore combines week-over-week growth (30%), lifetime profit
// margin (40%) and trailing-30-day activity (30%) into a single score.
// With no sales at all the score is zero and the status is "No Data".
func HealthScore(now time.Time, sales []*entity.Sale, expenses []*entity.Expense) Health {
	if len(sales) == 0 {
		return Health{Status: statusNoData}
	}

	sp := salePoints(sales)

	// Growth: a flat week scores 50; ±50 points of weekly change
	// saturate the component.
	prevWeekStart, prevWeekEnd := PreviousWeekRange(now)
	weekly := periodTrend(sp, StartOfWeek(now), EndOfWeek(now), prevWeekStart, prevWeekEnd)
	growthScore := clamp(50 + weekly.Change)

	// Profitability: a 40% lifetime margin or better saturates.
	totalRevenue := totalAmount(sp)
	totalExpenses := totalAmount(expensePoints(expenses))
	margin := 0.0
	if totalRevenue.GreaterThan(decimal.Zero) {
		margin, _ = totalRevenue.Sub(totalExpenses).Div(totalRevenue).Mul(decimal.NewFromInt(100)).Float64()
	}
	profitScore := clamp(margin * 2.5)

	// Activity: 25 distinct sale-days in the trailing 30 saturate.
	cutoff := now.AddDate(0, 0, -activityWindowDays)
	activeDays := make(map[string]struct{})
	for _, s := range sales {
		if s.Date.After(cutoff) {
			activeDays[dayKey(s.Date)] = struct{}{}
		}
	}
	activityScore := clamp(float64(len(activeDays)) / activityWindowDays * 120)

	score := int(math.Round(growthScore*growthWeight + profitScore*profitWeight + activityScore*activityWeight))

	return Health{
		Score:         score,
		Status:        healthStatus(score),
		GrowthScore:   growthScore,
		ProfitScore:   profitScore,
		ActivityScore: activityScore,
	}
}

// healthStatus maps a score onto its stepped status label.
func healthStatus(score int) string {
	switch {
	case score >= 80:
		return statusExcellent
	case score >= 60:
		return statusGood
	case score >= 40:
		return statusAttention
	default:
		return statusCritical
	}
}

// clamp bounds a component score to [0, 100].
func clamp(value float64) float64 {
	return math.Max(0, math.Min(100, value))
}
