package dto

import (
	"time"

	"github.com/shopledger/backend/internal/application/usecase/insights"
)

// PeriodTrendResponse represents one current-vs-previous comparison.
type PeriodTrendResponse struct {
	Current  string  `json:"current"`
	Previous string  `json:"previous"`
	Change   float64 `json:"change"`
}

// TrendChartPointResponse represents one day of the trend chart.
type TrendChartPointResponse struct {
	Date     string `json:"date"`
	Sales    string `json:"sales"`
	Expenses string `json:"expenses"`
}

// TrendsResponse represents the sales trend block.
type TrendsResponse struct {
	Daily   PeriodTrendResponse       `json:"daily"`
	Weekly  PeriodTrendResponse       `json:"weekly"`
	Monthly PeriodTrendResponse       `json:"monthly"`
	Chart   []TrendChartPointResponse `json:"trend_chart_data"`
}

// ProductRankResponse represents one ranked product.
type ProductRankResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  string `json:"revenue"`
}

// SlowMoverResponse represents one neglected product.
type SlowMoverResponse struct {
	Name       string    `json:"name"`
	LastSoldAt time.Time `json:"last_sold_at"`
}

// HourlySalesResponse represents one hour bucket of the peak-time chart.
type HourlySalesResponse struct {
	Hour  string `json:"hour"`
	Sales string `json:"sales"`
}

// PeakTimesResponse represents the peak-time block.
type PeakTimesResponse struct {
	BusiestHour string                `json:"busiest_hour"`
	BusiestDay  string                `json:"busiest_day"`
	SlowestDay  string                `json:"slowest_day"`
	HourlyChart []HourlySalesResponse `json:"hourly_chart"`
}

// CategoryTotalResponse represents one slice of the expense distribution.
type CategoryTotalResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ForecastResponse represents the sales forecast block.
type ForecastResponse struct {
	NextDay  string `json:"next_day"`
	NextWeek string `json:"next_week"`
}

// HealthResponse represents the shop health block.
type HealthResponse struct {
	Score         int     `json:"score"`
	Status        string  `json:"status"`
	GrowthScore   float64 `json:"growth_score"`
	ProfitScore   float64 `json:"profit_score"`
	ActivityScore float64 `json:"activity_score"`
}

// InsightsResponse represents the full insights payload.
type InsightsResponse struct {
	Trends           TrendsResponse          `json:"trends"`
	TopProducts      []ProductRankResponse   `json:"top_products"`
	SlowMovers       []SlowMoverResponse     `json:"slow_movers"`
	PeakTimes        PeakTimesResponse       `json:"peak_times"`
	ExpenseBreakdown []CategoryTotalResponse `json:"expense_breakdown"`
	Forecast         ForecastResponse        `json:"forecast"`
	Health           HealthResponse          `json:"health"`
	GeneratedAt      time.Time               `json:"generated_at"`
	Cached           bool                    `json:"cached"`
}

// AdviceResponse represents the advisor output.
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// ToInsightsResponse converts an insights bundle to its API representation.
func ToInsightsResponse(bundle *insights.Bundle, cached bool) InsightsResponse {
	response := InsightsResponse{
		Trends: TrendsResponse{
			Daily:   toPeriodTrendResponse(bundle.Trends.Daily),
			Weekly:  toPeriodTrendResponse(bundle.Trends.Weekly),
			Monthly: toPeriodTrendResponse(bundle.Trends.Monthly),
			Chart:   make([]TrendChartPointResponse, len(bundle.Trends.Chart)),
		},
		TopProducts:      make([]ProductRankResponse, len(bundle.TopProducts)),
		SlowMovers:       make([]SlowMoverResponse, len(bundle.SlowMovers)),
		PeakTimes:        toPeakTimesResponse(bundle.PeakTimes),
		ExpenseBreakdown: make([]CategoryTotalResponse, len(bundle.ExpenseBreakdown)),
		Forecast: ForecastResponse{
			NextDay:  bundle.Forecast.NextDay.String(),
			NextWeek: bundle.Forecast.NextWeek.String(),
		},
		Health: HealthResponse{
			Score:         bundle.Health.Score,
			Status:        bundle.Health.Status,
			GrowthScore:   bundle.Health.GrowthScore,
			ProfitScore:   bundle.Health.ProfitScore,
			ActivityScore: bundle.Health.ActivityScore,
		},
		GeneratedAt: bundle.GeneratedAt,
		Cached:      cached,
	}

	for i, p := range bundle.Trends.Chart {
		response.Trends.Chart[i] = TrendChartPointResponse{
			Date:     p.Date,
			Sales:    p.Sales.String(),
			Expenses: p.Expenses.String(),
		}
	}
	for i, p := range bundle.TopProducts {
		response.TopProducts[i] = ProductRankResponse{
			Name:     p.Name,
			Quantity: p.Quantity,
			Revenue:  p.Revenue.String(),
		}
	}
	for i, m := range bundle.SlowMovers {
		response.SlowMovers[i] = SlowMoverResponse{
			Name:       m.Name,
			LastSoldAt: m.LastSoldAt,
		}
	}
	for i, c := range bundle.ExpenseBreakdown {
		response.ExpenseBreakdown[i] = CategoryTotalResponse{
			Name:  c.Name,
			Value: c.Value.String(),
		}
	}

	return response
}

func toPeriodTrendResponse(trend insights.PeriodTrend) PeriodTrendResponse {
	return PeriodTrendResponse{
		Current:  trend.Current.String(),
		Previous: trend.Previous.String(),
		Change:   trend.Change,
	}
}

func toPeakTimesResponse(peaks *insights.PeakTimes) PeakTimesResponse {
	response := PeakTimesResponse{
		BusiestHour: peaks.BusiestHour,
		BusiestDay:  peaks.BusiestDay,
		SlowestDay:  peaks.SlowestDay,
		HourlyChart: make([]HourlySalesResponse, len(peaks.HourlyChart)),
	}
	for i, h := range peaks.HourlyChart {
		response.HourlyChart[i] = HourlySalesResponse{
			Hour:  h.Hour,
			Sales: h.Sales.String(),
		}
	}
	return response
}
