package services

import (
	"context"
	"time"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
)

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT carrying the user's role and customer link.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
