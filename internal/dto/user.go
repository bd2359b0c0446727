package dto

import (
	"time"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Name     string `json:"name" binding:"required,max=255"`
	// Role is USER or ADMIN (optionally prefixed with ROLE_). Defaults to USER.
	Role       string `json:"role" binding:"omitempty,role"`
	CustomerID *int64 `json:"customerId" binding:"omitempty,gt=0"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID     string    `json:"userID"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	CustomerID *int64    `json:"customerId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Name:       user.Name,
		Role:       string(user.Role),
		CustomerID: user.CustomerID,
		CreatedAt:  user.CreatedAt,
	}
}
