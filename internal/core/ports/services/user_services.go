package services

import (
	"context"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	"github.com/SscSPs/transaction_insights_api/internal/dto"
)

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a new user; apperrors.ErrDuplicate when the username exists.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks a username/password pair; apperrors.ErrUnauthorized on mismatch.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserWriterSvc
	UserAuthSvc
}
