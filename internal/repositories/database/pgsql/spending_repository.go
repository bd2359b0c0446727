package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	portsrepo "github.com/SscSPs/transaction_insights_api/internal/core/ports/repositories"
	"github.com/SscSPs/transaction_insights_api/internal/models"
	"github.com/SscSPs/transaction_insights_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSpendingRepository struct {
	BaseRepository
}

func newPgxSpendingRepository(db *pgxpool.Pool) portsrepo.SpendingRepository {
	return &PgxSpendingRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SpendingRepository = (*PgxSpendingRepository)(nil)

const sumByCategoryQuery = `
	SELECT category, SUM(amount) AS total
	FROM transactions
	WHERE ($1::bigint IS NULL OR customer_id = $1)
	  AND ($2::timestamp IS NULL OR occurred_at >= $2)
	  AND ($3::timestamp IS NULL OR occurred_at < $3)
	GROUP BY category
	ORDER BY %s;
`

func categoryOrderClause(order portsrepo.CategoryOrder) string {
	if order == portsrepo.OrderByTotalDesc {
		return "total DESC, category ASC"
	}
	return "category ASC"
}

func (r *PgxSpendingRepository) SumByCategory(ctx context.Context, customerID *int64, rng domain.DateRange, order portsrepo.CategoryOrder) ([]domain.CategoryTotal, error) {
	start, end := rangeBounds(rng)
	query := fmt.Sprintf(sumByCategoryQuery, categoryOrderClause(order))

	rows, err := r.Pool.Query(ctx, query, customerID, start, end)
	if err != nil {
		return nil, storeError("failed to query category totals", err)
	}
	defer rows.Close()

	totals := []models.CategoryTotal{}
	for rows.Next() {
		var m models.CategoryTotal
		if err := rows.Scan(&m.Category, &m.Total); err != nil {
			return nil, storeError("failed to scan category total row", err)
		}
		totals = append(totals, m)
	}
	if rows.Err() != nil {
		return nil, storeError("error iterating category total rows", rows.Err())
	}

	return mapping.ToDomainCategoryTotals(totals), nil
}

func (r *PgxSpendingRepository) SumByCustomer(ctx context.Context, rng domain.DateRange) ([]domain.CustomerTotal, error) {
	start, end := rangeBounds(rng)
	query := `
		SELECT customer_id, SUM(amount) AS total
		FROM transactions
		WHERE ($1::timestamp IS NULL OR occurred_at >= $1)
		  AND ($2::timestamp IS NULL OR occurred_at < $2)
		GROUP BY customer_id
		ORDER BY total DESC, customer_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, storeError("failed to query customer totals", err)
	}
	defer rows.Close()

	totals := []models.CustomerTotal{}
	for rows.Next() {
		var m models.CustomerTotal
		if err := rows.Scan(&m.CustomerID, &m.Total); err != nil {
			return nil, storeError("failed to scan customer total row", err)
		}
		totals = append(totals, m)
	}
	if rows.Err() != nil {
		return nil, storeError("error iterating customer total rows", rows.Err())
	}

	return mapping.ToDomainCustomerTotals(totals), nil
}
