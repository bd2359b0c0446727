package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/transaction_insights_api/internal/apperrors"
	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	portsrepo "github.com/SscSPs/transaction_insights_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/transaction_insights_api/internal/core/ports/services"
	"github.com/SscSPs/transaction_insights_api/internal/utils/pagination"
)

// spendingService implements the SpendingSvcFacade interface
type spendingService struct {
	BaseService
	customerRepo    portsrepo.CustomerReader
	transactionRepo portsrepo.TransactionReader
	spendingRepo    portsrepo.SpendingRepository
}

// NewSpendingService creates a new spending service
func NewSpendingService(customerRepo portsrepo.CustomerReader, transactionRepo portsrepo.TransactionReader, spendingRepo portsrepo.SpendingRepository) portssvc.SpendingSvcFacade {
	return &spendingService{
		BaseService:     newBaseService("spending"),
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		spendingRepo:    spendingRepo,
	}
}

// Ensure spendingService implements the SpendingSvcFacade interface
var _ portssvc.SpendingSvcFacade = (*spendingService)(nil)

func (s *spendingService) ensureCustomer(ctx context.Context, customerID int64) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return fmt.Errorf("failed to find customer %d: %w", customerID, err)
	}
	return nil
}

// CustomerSummary summarises one customer's spending inside rng
func (s *spendingService) CustomerSummary(ctx context.Context, customerID int64, rng domain.DateRange) (*domain.CustomerSummary, error) {
	if err := s.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	rows, err := s.spendingRepo.SumByCategory(ctx, &customerID, rng, portsrepo.OrderByCategory)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum spending by category",
			slog.Int64("customer_id", customerID),
			slog.String("period", rng.PeriodDescription()))
		return nil, fmt.Errorf("failed to retrieve category totals: %w", err)
	}

	summary := &domain.CustomerSummary{
		CustomerID:      customerID,
		SpendingSummary: domain.BuildSpendingSummary(rows, rng),
	}

	s.LogInfo(ctx, "Customer summary generated",
		slog.Int64("customer_id", customerID),
		slog.String("period", summary.PeriodDescription),
		slog.Int("category_count", len(summary.Breakdown)))
	return summary, nil
}

// OverallSummary summarises spending across all customers inside rng
func (s *spendingService) OverallSummary(ctx context.Context, rng domain.DateRange) (*domain.OverallSummary, error) {
	rows, err := s.spendingRepo.SumByCategory(ctx, nil, rng, portsrepo.OrderByCategory)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum overall spending by category",
			slog.String("period", rng.PeriodDescription()))
		return nil, fmt.Errorf("failed to retrieve category totals: %w", err)
	}

	summary := &domain.OverallSummary{SpendingSummary: domain.BuildSpendingSummary(rows, rng)}

	s.LogInfo(ctx, "Overall summary generated",
		slog.String("period", summary.PeriodDescription),
		slog.Int("category_count", len(summary.Breakdown)))
	return summary, nil
}

// TopSpenders ranks customers by total spend
func (s *spendingService) TopSpenders(ctx context.Context, count int, rng domain.DateRange) ([]domain.TopSpender, error) {
	rows, err := s.spendingRepo.SumByCustomer(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum spending by customer", slog.String("period", rng.PeriodDescription()))
		return nil, fmt.Errorf("failed to retrieve customer totals: %w", err)
	}

	rows = truncate(rows, count)
	spenders := make([]domain.TopSpender, len(rows))
	for i, row := range rows {
		spenders[i] = domain.TopSpender{CustomerID: row.CustomerID, TotalSpent: row.Total}
	}
	return spenders, nil
}

// TopCategoriesForCustomer ranks one customer's categories by total spend.
// A customer without transactions, known or not, yields an empty ranking.
func (s *spendingService) TopCategoriesForCustomer(ctx context.Context, customerID int64, count int, rng domain.DateRange) ([]domain.TopCategory, error) {
	return s.topCategories(ctx, &customerID, count, rng)
}

// TopCategoriesOverall ranks categories across all customers by total spend
func (s *spendingService) TopCategoriesOverall(ctx context.Context, count int, rng domain.DateRange) ([]domain.TopCategory, error) {
	return s.topCategories(ctx, nil, count, rng)
}

func (s *spendingService) topCategories(ctx context.Context, customerID *int64, count int, rng domain.DateRange) ([]domain.TopCategory, error) {
	rows, err := s.spendingRepo.SumByCategory(ctx, customerID, rng, portsrepo.OrderByTotalDesc)
	if err != nil {
		s.LogError(ctx, err, "Failed to rank categories", slog.String("period", rng.PeriodDescription()))
		return nil, fmt.Errorf("failed to retrieve category totals: %w", err)
	}

	rows = truncate(rows, count)
	categories := make([]domain.TopCategory, len(rows))
	for i, row := range rows {
		categories[i] = domain.TopCategory{Category: row.Category, TotalSpent: row.Total}
	}
	return categories, nil
}

// ListCustomerTransactions pages through a customer's raw transactions.
// An unknown customer yields an empty page.
func (s *spendingService) ListCustomerTransactions(ctx context.Context, customerID int64, rng domain.DateRange, limit int, nextToken *string) (*domain.TransactionPage, error) {
	var after *domain.TransactionCursor
	if nextToken != nil && *nextToken != "" {
		ts, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		after = &domain.TransactionCursor{Timestamp: ts, TransactionID: id}
	}

	// Fetch one extra row to learn whether another page exists.
	fetch := 0
	if limit > 0 {
		fetch = limit + 1
	}
	txns, err := s.transactionRepo.FindTransactionsByCustomer(ctx, customerID, rng, fetch, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int64("customer_id", customerID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	page := &domain.TransactionPage{Transactions: txns}
	if limit > 0 && len(txns) > limit {
		page.Transactions = txns[:limit]
		last := page.Transactions[limit-1]
		token := pagination.EncodeToken(last.Timestamp, last.TransactionID)
		page.NextToken = &token
	}
	if page.Transactions == nil {
		page.Transactions = []domain.Transaction{}
	}
	return page, nil
}

// truncate keeps at most n leading elements; n < 1 yields an empty slice.
func truncate[T any](rows []T, n int) []T {
	if n < 1 {
		return rows[:0]
	}
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
