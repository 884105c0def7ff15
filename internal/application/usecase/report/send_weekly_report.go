// Package report contains reporting use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/application/usecase/insights"
)

// SendWeeklyReportInput represents the input for weekly report delivery.
type SendWeeklyReportInput struct {
	UserID uuid.UUID
}

// SendWeeklyReportOutput represents the output of weekly report delivery.
type SendWeeklyReportOutput struct {
	ProviderID string
}

// SendWeeklyReportUseCase composes the owner's weekly digest from the
// insights bundle and delivers it by email.
type SendWeeklyReportUseCase struct {
	getInsights *insights.GetInsightsUseCase
	userRepo    adapter.UserRepository
	renderer    adapter.ReportRenderer
	sender      adapter.EmailSender
}

// NewSendWeeklyReportUseCase creates a new SendWeeklyReportUseCase instance.
func NewSendWeeklyReportUseCase(
	getInsights *insights.GetInsightsUseCase,
	userRepo adapter.UserRepository,
	renderer adapter.ReportRenderer,
	sender adapter.EmailSender,
) *SendWeeklyReportUseCase {
	return &SendWeeklyReportUseCase{
		getInsights: getInsights,
		userRepo:    userRepo,
		renderer:    renderer,
		sender:      sender,
	}
}

// Execute builds and sends the weekly report email.
func (uc *SendWeeklyReportUseCase) Execute(ctx context.Context, input SendWeeklyReportInput) (*SendWeeklyReportOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	output, err := uc.getInsights.Execute(ctx, insights.GetInsightsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	bundle := output.Insights

	data := adapter.WeeklyReportData{
		OwnerName:        user.Name,
		ShopName:         user.ShopName,
		Currency:         user.Currency,
		WeekStart:        insights.StartOfWeek(bundle.GeneratedAt).Format("Jan 2"),
		WeekEnd:          insights.EndOfWeek(bundle.GeneratedAt).Format("Jan 2, 2006"),
		WeeklySales:      bundle.Trends.Weekly.Current.StringFixed(2),
		WeeklyExpenses:   weeklyExpenses(bundle).StringFixed(2),
		WeeklyChange:     fmt.Sprintf("%+.1f%%", bundle.Trends.Weekly.Change),
		HealthScore:      bundle.Health.Score,
		HealthStatus:     bundle.Health.Status,
		BusiestDay:       bundle.PeakTimes.BusiestDay,
		SlowestDay:       bundle.PeakTimes.SlowestDay,
		ForecastNextWeek: bundle.Forecast.NextWeek.StringFixed(2),
	}
	for _, p := range bundle.TopProducts {
		data.TopProducts = append(data.TopProducts, adapter.ReportProduct{
			Name:     p.Name,
			Quantity: p.Quantity,
			Revenue:  p.Revenue.StringFixed(2),
		})
	}
	if len(bundle.ExpenseBreakdown) > 0 {
		data.TopExpense = bundle.ExpenseBreakdown[0].Name
		data.TopExpenseAmount = bundle.ExpenseBreakdown[0].Value.StringFixed(2)
	}

	html, text, err := uc.renderer.RenderWeeklyReport(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render weekly report: %w", err)
	}

	result, err := uc.sender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Subject: fmt.Sprintf("Your weekly report for %s", user.ShopName),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send weekly report: %w", err)
	}

	slog.Info("Weekly report sent", "userID", user.ID, "providerID", result.ProviderID)

	return &SendWeeklyReportOutput{ProviderID: result.ProviderID}, nil
}

// weeklyExpenses sums the chart's expense series over the current week.
// The chart covers 30 trailing days, so the week is always contained.
func weeklyExpenses(bundle *insights.Bundle) decimal.Decimal {
	weekStart := insights.StartOfWeek(bundle.GeneratedAt).Format("2006-01-02")
	total := decimal.Zero
	for _, p := range bundle.Trends.Chart {
		if p.Date >= weekStart {
			total = total.Add(p.Expenses)
		}
	}
	return total
}
