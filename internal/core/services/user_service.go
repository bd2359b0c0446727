package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/transaction_insights_api/internal/apperrors"
	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	portsrepo "github.com/SscSPs/transaction_insights_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/transaction_insights_api/internal/core/ports/services"
	"github.com/SscSPs/transaction_insights_api/internal/dto"
	"github.com/SscSPs/transaction_insights_api/internal/utils"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	customerRepo portsrepo.CustomerReader
	allowAdmin   bool
}

// UserServiceOption is a function that configures a userService
type UserServiceOption func(*userService)

// WithAdminRegistration controls whether self-registration may request the ADMIN role.
func WithAdminRegistration(allow bool) UserServiceOption {
	return func(s *userService) {
		s.allowAdmin = allow
	}
}

// NewUserService creates a new user service
func NewUserService(userRepo portsrepo.UserRepositoryFacade, customerRepo portsrepo.CustomerReader, options ...UserServiceOption) portssvc.UserSvcFacade {
	svc := &userService{
		BaseService:  newBaseService("user"),
		userRepo:     userRepo,
		customerRepo: customerRepo,
		allowAdmin:   true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user with a bcrypt-hashed password
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}

	role := domain.RoleUser
	if req.Role != "" {
		parsed, ok := domain.ParseRole(req.Role)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
		}
		role = parsed
	}
	if role == domain.RoleAdmin && !s.allowAdmin {
		return nil, fmt.Errorf("%w: admin registration is disabled", apperrors.ErrForbidden)
	}

	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: customer %d does not exist", apperrors.ErrValidation, *req.CustomerID)
			}
			return nil, fmt.Errorf("failed to verify customer link: %w", err)
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", slog.String("username", username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
		CustomerID:   req.CustomerID,
		AuditFields:  domain.NewAuditFields(time.Now()),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Username already taken", slog.String("username", username))
			return nil, fmt.Errorf("username %q: %w", username, apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

// AuthenticateUser checks a username/password pair
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
