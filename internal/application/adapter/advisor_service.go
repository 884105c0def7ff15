package adapter

import "context"

// AdviceRequest carries a compact summary of the shop's computed
// insights for the advisor to reason about.
type AdviceRequest struct {
	ShopName        string
	Currency        string
	HealthScore     int
	HealthStatus    string
	WeeklySales     string
	WeeklyChange    float64
	MonthlySales    string
	MonthlyChange   float64
	ForecastNextDay string
	TopProducts     []string
	SlowMovers      []string
	BusiestDay      string
	SlowestDay      string
	TopExpense      string
}

// AdvisorService generates short plain-language business advice from
// computed insights.
type AdvisorService interface {
	// IsAvailable reports whether the advisor is configured.
	IsAvailable() bool

	// Advise returns a short piece of advice for the shop owner.
	Advise(ctx context.Context, request *AdviceRequest) (string, error)
}
