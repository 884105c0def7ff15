// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/integration/persistence"
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	tokenIssuer = "shopledger"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret          []byte
	tokenRepository persistence.TokenRepository
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, tokenRepository persistence.TokenRepository) adapter.TokenService {
	return &tokenService{
		secret:          []byte(secret),
		tokenRepository: tokenRepository,
	}
}

// GenerateTokenPair generates a new access and refresh token pair. The
// refresh token is persisted so it can be revoked later.
func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	accessToken, err := s.generateJWT(userID, email, tokenTypeAccess, accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateJWT(userID, email, tokenTypeRefresh, refreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(refreshTokenDuration)
	if err := s.tokenRepository.SaveRefreshToken(ctx, refreshToken, userID, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validateToken(token, tokenTypeAccess)
}

// ValidateRefreshToken validates a refresh token and returns its claims.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validateToken(token, tokenTypeRefresh)
}

// InvalidateRefreshToken invalidates a refresh token.
func (s *tokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.tokenRepository.InvalidateRefreshToken(ctx, token)
}

// IsRefreshTokenValid checks if a refresh token is still valid (not invalidated).
func (s *tokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return s.tokenRepository.IsRefreshTokenValid(ctx, token)
}

// validateToken parses a JWT and checks it carries the expected type.
func (s *tokenService) validateToken(token, expectedType string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("invalid token type: expected %s token", expectedType)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// generateJWT creates a new JWT token with the given parameters.
func (s *tokenService) generateJWT(userID uuid.UUID, email, tokenType string, duration time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
