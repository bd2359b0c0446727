package pgsql

import (
	portsrepo "github.com/SscSPs/transaction_insights_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		SpendingRepo:    newPgxSpendingRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
