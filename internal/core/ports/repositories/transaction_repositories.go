package repositories

import (
	"context"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
)

// TransactionReader defines read operations for raw transactions
type TransactionReader interface {
	// FindTransactionsByCustomer lists a customer's transactions inside rng ordered by
	// timestamp then id. limit <= 0 means no limit; after, when set, starts the listing
	// strictly after that cursor.
	FindTransactionsByCustomer(ctx context.Context, customerID int64, rng domain.DateRange, limit int, after *domain.TransactionCursor) ([]domain.Transaction, error)

	// CountTransactions returns the number of stored transactions.
	CountTransactions(ctx context.Context) (int64, error)
}

// TransactionWriter defines write operations for raw transactions
type TransactionWriter interface {
	// SaveTransaction inserts a transaction and sets its TransactionID.
	SaveTransaction(ctx context.Context, txn *domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
