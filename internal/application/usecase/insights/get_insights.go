package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
)

// GetInsightsInput represents the input for insights retrieval.
type GetInsightsInput struct {
	UserID uuid.UUID
}

// GetInsightsOutput represents the output of insights retrieval.
type GetInsightsOutput struct {
	Insights *Bundle
	Cached   bool
}

// GetInsightsUseCase loads a consistent snapshot of the owner's sales
// and expenses, runs the engine, and caches the serialized bundle.
// Cache problems degrade to a recompute, never to an error.
type GetInsightsUseCase struct {
	saleRepo    adapter.SaleRepository
	expenseRepo adapter.ExpenseRepository
	cache       adapter.InsightsCache
	cacheTTL    time.Duration
	nowFn       func() time.Time
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
// cache may be nil, in which case every call recomputes.
func NewGetInsightsUseCase(
	saleRepo adapter.SaleRepository,
	expenseRepo adapter.ExpenseRepository,
	cache adapter.InsightsCache,
	cacheTTL time.Duration,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		nowFn:       time.Now,
	}
}

// WithNowFunc overrides the clock; used by tests to pin "today".
func (uc *GetInsightsUseCase) WithNowFunc(nowFn func() time.Time) *GetInsightsUseCase {
	uc.nowFn = nowFn
	return uc
}

// Execute returns the insights bundle for the owner.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	if uc.cache != nil {
		payload, err := uc.cache.Get(ctx, input.UserID)
		if err != nil {
			slog.Debug("Insights cache read failed, recomputing", "userID", input.UserID, "error", err)
		} else if payload != nil {
			var bundle Bundle
			if err := json.Unmarshal(payload, &bundle); err == nil {
				return &GetInsightsOutput{Insights: &bundle, Cached: true}, nil
			}
			slog.Debug("Insights cache payload corrupt, recomputing", "userID", input.UserID)
		}
	}

	sales, err := uc.saleRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	bundle := Compute(uc.nowFn(), sales, expenses)

	if uc.cache != nil {
		if payload, err := json.Marshal(bundle); err == nil {
			if err := uc.cache.Set(ctx, input.UserID, payload, uc.cacheTTL); err != nil {
				slog.Debug("Insights cache write failed", "userID", input.UserID, "error", err)
			}
		}
	}

	return &GetInsightsOutput{Insights: bundle}, nil
}
