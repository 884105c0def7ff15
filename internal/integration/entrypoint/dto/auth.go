package dto

import "github.com/shopledger/backend/internal/domain/entity"

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	ShopName string `json:"shop_name" binding:"required,min=1,max=100"`
	Currency string `json:"currency,omitempty" binding:"omitempty,max=10"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	ShopName string `json:"shop_name"`
	Currency string `json:"currency"`
}

// AuthResponse represents the response for registration and login.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ToUserResponse converts a user entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Name:     user.Name,
		ShopName: user.ShopName,
		Currency: user.Currency,
	}
}
