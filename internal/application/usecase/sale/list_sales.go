package sale

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
)

// ListSalesInput represents the input for sale listing.
type ListSalesInput struct {
	UserID uuid.UUID
}

// ListSalesOutput represents the output of sale listing.
type ListSalesOutput struct {
	Sales []*SaleOutput
}

// ListSalesUseCase handles sale listing logic.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute returns all of the owner's sales, newest first.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	sales, err := uc.saleRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	outputs := make([]*SaleOutput, len(sales))
	for i, s := range sales {
		outputs[i] = NewSaleOutput(s)
	}

	return &ListSalesOutput{Sales: outputs}, nil
}
