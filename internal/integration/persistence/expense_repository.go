package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	if result := r.db.WithContext(ctx).Create(expenseModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByUser retrieves all expenses for a given owner, newest first.
func (r *expenseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// Update replaces an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// Delete soft-deletes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// DeleteAllByUser soft-deletes every expense owned by the given user
// and returns the count of deleted expenses.
func (r *expenseRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
