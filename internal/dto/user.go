package dto

import (
	"github.com/pocketfin/pocketfin_backend/internal/core/domain"
)

// RegisterUserRequest defines the data needed to register a local user.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credentials for a local login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID   string              `json:"userID"`
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Provider domain.AuthProvider `json:"provider"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Provider: user.Provider,
	}
}
