package auth

import (
	"context"
	"fmt"

	"github.com/shopledger/backend/internal/application/adapter"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of token refresh.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase handles token refresh logic. Refresh tokens are
// single-use: the presented token is revoked before a new pair is issued.
type RefreshTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the token refresh.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired refresh token",
			domainerror.ErrInvalidToken,
		)
	}

	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check token validity: %w", err)
	}
	if !valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"refresh token has been revoked",
			domainerror.ErrInvalidToken,
		)
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate old token: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, claims.UserID, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}
