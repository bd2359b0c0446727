package services

import (
	"context"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
)

// SpendingSummarySvc defines summary operations over stored transactions
type SpendingSummarySvc interface {
	// CustomerSummary summarises one customer's spending; apperrors.ErrNotFound for an unknown customer.
	CustomerSummary(ctx context.Context, customerID int64, rng domain.DateRange) (*domain.CustomerSummary, error)

	// OverallSummary summarises spending across all customers.
	OverallSummary(ctx context.Context, rng domain.DateRange) (*domain.OverallSummary, error)
}

// SpendingRankingSvc defines top-N ranking operations
type SpendingRankingSvc interface {
	// TopSpenders returns up to count customers ordered by total spend descending.
	TopSpenders(ctx context.Context, count int, rng domain.DateRange) ([]domain.TopSpender, error)

	// TopCategoriesForCustomer returns up to count categories of one customer by total descending.
	TopCategoriesForCustomer(ctx context.Context, customerID int64, count int, rng domain.DateRange) ([]domain.TopCategory, error)

	// TopCategoriesOverall returns up to count categories across all customers by total descending.
	TopCategoriesOverall(ctx context.Context, count int, rng domain.DateRange) ([]domain.TopCategory, error)
}

// SpendingTransactionSvc defines raw transaction listing
type SpendingTransactionSvc interface {
	// ListCustomerTransactions pages through a customer's transactions inside rng.
	// limit <= 0 returns everything; nextToken continues a previous page.
	ListCustomerTransactions(ctx context.Context, customerID int64, rng domain.DateRange, limit int, nextToken *string) (*domain.TransactionPage, error)
}

// SpendingSvcFacade combines all spending-related service interfaces
type SpendingSvcFacade interface {
	SpendingSummarySvc
	SpendingRankingSvc
	SpendingTransactionSvc
}
