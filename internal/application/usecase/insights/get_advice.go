package insights

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// GetAdviceInput represents the input for advice generation.
type GetAdviceInput struct {
	UserID uuid.UUID
}

// GetAdviceOutput represents the output of advice generation.
type GetAdviceOutput struct {
	Advice string
}

// GetAdviceUseCase turns the computed insights bundle into a short
// plain-language piece of advice via the advisor service.
type GetAdviceUseCase struct {
	getInsights *GetInsightsUseCase
	userRepo    adapter.UserRepository
	advisor     adapter.AdvisorService
}

// NewGetAdviceUseCase creates a new GetAdviceUseCase instance.
func NewGetAdviceUseCase(
	getInsights *GetInsightsUseCase,
	userRepo adapter.UserRepository,
	advisor adapter.AdvisorService,
) *GetAdviceUseCase {
	return &GetAdviceUseCase{
		getInsights: getInsights,
		userRepo:    userRepo,
		advisor:     advisor,
	}
}

// Execute computes the owner's insights and asks the advisor for a
// recommendation based on them.
func (uc *GetAdviceUseCase) Execute(ctx context.Context, input GetAdviceInput) (*GetAdviceOutput, error) {
	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return nil, domainerror.NewInsightsError(
			domainerror.ErrCodeAdvisorUnavailable,
			"advisor service is not configured",
			domainerror.ErrAdvisorUnavailable,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	output, err := uc.getInsights.Execute(ctx, GetInsightsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	advice, err := uc.advisor.Advise(ctx, buildAdviceRequest(user.ShopName, user.Currency, output.Insights))
	if err != nil {
		return nil, domainerror.NewInsightsError(
			domainerror.ErrCodeAdvisorFailed,
			"failed to generate advice",
			err,
		)
	}

	return &GetAdviceOutput{Advice: advice}, nil
}

// buildAdviceRequest condenses a bundle into the flat summary the
// advisor adapter consumes.
func buildAdviceRequest(shopName, currency string, bundle *Bundle) *adapter.AdviceRequest {
	request := &adapter.AdviceRequest{
		ShopName:        shopName,
		Currency:        currency,
		HealthScore:     bundle.Health.Score,
		HealthStatus:    bundle.Health.Status,
		WeeklySales:     bundle.Trends.Weekly.Current.String(),
		WeeklyChange:    bundle.Trends.Weekly.Change,
		MonthlySales:    bundle.Trends.Monthly.Current.String(),
		MonthlyChange:   bundle.Trends.Monthly.Change,
		ForecastNextDay: bundle.Forecast.NextDay.String(),
		BusiestDay:      bundle.PeakTimes.BusiestDay,
		SlowestDay:      bundle.PeakTimes.SlowestDay,
	}
	for _, p := range bundle.TopProducts {
		request.TopProducts = append(request.TopProducts, p.Name)
	}
	for _, m := range bundle.SlowMovers {
		request.SlowMovers = append(request.SlowMovers, m.Name)
	}
	if len(bundle.ExpenseBreakdown) > 0 {
		request.TopExpense = bundle.ExpenseBreakdown[0].Name
	}
	return request
}
