package repositories

import (
	"context"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
)

// CategoryOrder selects the row order of a grouped category sum.
type CategoryOrder int

const (
	// OrderByCategory sorts rows by category name.
	OrderByCategory CategoryOrder = iota
	// OrderByTotalDesc sorts rows by total descending, then category name.
	OrderByTotalDesc
)

// SpendingRepository defines grouped-sum queries over transactions
type SpendingRepository interface {
	// SumByCategory sums amounts per category inside rng, restricted to customerID when
	// it is not nil.
	SumByCategory(ctx context.Context, customerID *int64, rng domain.DateRange, order CategoryOrder) ([]domain.CategoryTotal, error)

	// SumByCustomer sums amounts per customer inside rng, ordered by total descending
	// then customer id.
	SumByCustomer(ctx context.Context, rng domain.DateRange) ([]domain.CustomerTotal, error)
}
