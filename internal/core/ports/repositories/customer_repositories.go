package repositories

import (
	"context"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
)

// CustomerReader defines read operations for customers
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by id; apperrors.ErrNotFound when absent.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
}

// CustomerWriter defines write operations for customers
type CustomerWriter interface {
	// FindOrCreateCustomerByEmail returns the customer with the given email, creating it
	// with the given name when it does not exist yet. created reports which happened.
	FindOrCreateCustomerByEmail(ctx context.Context, name, email string) (customer *domain.Customer, created bool, err error)
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
