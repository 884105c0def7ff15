// Package persistence implements repository interfaces for database operations.
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

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create creates a new sale in the database.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	if result := r.db.WithContext(ctx).Create(saleModel); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a sale by its ID.
func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// FindByUser retrieves all sales for a given owner, newest first.
func (r *saleRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.Sale, len(saleModels))
	for i, sm := range saleModels {
		sales[i] = sm.ToEntity()
	}
	return sales, nil
}

// Update replaces an existing sale in the database.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("id = ?", sale.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(saleModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSaleNotFound
	}
	return nil
}

// Delete soft-deletes a sale from the database.
func (r *saleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SaleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSaleNotFound
	}
	return nil
}

// DeleteAllByUser soft-deletes every sale owned by the given user and
// returns the count of deleted sales.
func (r *saleRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.SaleModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
