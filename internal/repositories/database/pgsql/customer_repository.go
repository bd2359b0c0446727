package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/transaction_insights_api/internal/apperrors"
	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	portsrepo "github.com/SscSPs/transaction_insights_api/internal/core/ports/repositories"
	"github.com/SscSPs/transaction_insights_api/internal/models"
	"github.com/SscSPs/transaction_insights_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, created_at
		FROM customers
		WHERE customer_id = $1;
	`
	var m models.Customer
	err := r.Pool.QueryRow(ctx, query, customerID).Scan(&m.CustomerID, &m.Name, &m.Email, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError(fmt.Sprintf("failed to find customer by ID %d", customerID), err)
	}

	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

// FindOrCreateCustomerByEmail inserts the customer unless the email exists. The no-op
// update lets RETURNING yield the existing row; xmax = 0 only for a fresh insert.
func (r *PgxCustomerRepository) FindOrCreateCustomerByEmail(ctx context.Context, name, email string) (*domain.Customer, bool, error) {
	query := `
		INSERT INTO customers (name, email)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING customer_id, name, email, created_at, (xmax = 0) AS created;
	`
	var m models.Customer
	var created bool
	err := r.Pool.QueryRow(ctx, query, name, email).Scan(&m.CustomerID, &m.Name, &m.Email, &m.CreatedAt, &created)
	if err != nil {
		return nil, false, storeError(fmt.Sprintf("failed to find or create customer %s", email), err)
	}

	customer := mapping.ToDomainCustomer(m)
	return &customer, created, nil
}
