package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	portsrepo "github.com/SscSPs/transaction_insights_api/internal/core/ports/repositories"
	"github.com/SscSPs/transaction_insights_api/internal/models"
	"github.com/SscSPs/transaction_insights_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.Transaction) error {
	m := mapping.ToModelTransaction(*txn)
	query := `
		INSERT INTO transactions (external_id, customer_id, occurred_at, description, merchant,
			merchant_category_code, amount, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING transaction_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.ExternalID,
		m.CustomerID,
		m.OccurredAt,
		m.Description,
		m.Merchant,
		m.MerchantCategoryCode,
		m.Amount,
		m.Category,
	).Scan(&txn.TransactionID)
	if err != nil {
		return storeError(fmt.Sprintf("failed to save transaction %s", m.ExternalID), err)
	}
	return nil
}

func (r *PgxTransactionRepository) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions;`).Scan(&count); err != nil {
		return 0, storeError("failed to count transactions", err)
	}
	return count, nil
}

func (r *PgxTransactionRepository) FindTransactionsByCustomer(ctx context.Context, customerID int64, rng domain.DateRange, limit int, after *domain.TransactionCursor) ([]domain.Transaction, error) {
	start, end := rangeBounds(rng)

	var afterTS *time.Time
	var afterID *int64
	if after != nil {
		afterTS = &after.Timestamp
		afterID = &after.TransactionID
	}
	// LIMIT NULL is LIMIT ALL.
	var limitArg *int
	if limit > 0 {
		limitArg = &limit
	}

	query := `
		SELECT transaction_id, external_id, customer_id, occurred_at, description, merchant,
			merchant_category_code, amount, category
		FROM transactions
		WHERE customer_id = $1
		  AND ($2::timestamp IS NULL OR occurred_at >= $2)
		  AND ($3::timestamp IS NULL OR occurred_at < $3)
		  AND ($4::timestamp IS NULL OR (occurred_at, transaction_id) > ($4, $5::bigint))
		ORDER BY occurred_at, transaction_id
		LIMIT $6;
	`
	rows, err := r.Pool.Query(ctx, query, customerID, start, end, afterTS, afterID, limitArg)
	if err != nil {
		return nil, storeError(fmt.Sprintf("failed to query transactions for customer %d", customerID), err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.ExternalID,
			&m.CustomerID,
			&m.OccurredAt,
			&m.Description,
			&m.Merchant,
			&m.MerchantCategoryCode,
			&m.Amount,
			&m.Category,
		); err != nil {
			return nil, storeError("failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, storeError("error iterating transaction rows", rows.Err())
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}
