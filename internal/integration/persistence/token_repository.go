package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/integration/persistence/model"
)

// TokenRepository defines the interface for refresh token persistence.
type TokenRepository interface {
	// SaveRefreshToken saves a refresh token to the database.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsRefreshTokenValid checks if a refresh token exists, is not
	// invalidated and has not expired.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// InvalidateRefreshToken marks a refresh token as invalidated.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// InvalidateAllUserRefreshTokens invalidates all refresh tokens for a user.
	InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error
}

// tokenRepository implements the TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// SaveRefreshToken saves a refresh token to the database.
func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	refreshToken := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       token,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).Create(refreshToken)
	return result.Error
}

// IsRefreshTokenValid checks if a refresh token is valid.
func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	var refreshToken model.RefreshTokenModel
	result := r.db.WithContext(ctx).
		Where("token = ? AND invalidated = ? AND expires_at > ?", token, false, time.Now().UTC()).
		First(&refreshToken)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// InvalidateRefreshToken marks a refresh token as invalidated.
func (r *tokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("token = ?", token).
		Update("invalidated", true)
	return result.Error
}

// InvalidateAllUserRefreshTokens invalidates all refresh tokens for a user.
func (r *tokenRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ?", userID).
		Update("invalidated", true)
	return result.Error
}
