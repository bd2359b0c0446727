package services_test

import (
	"context"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	portsrepo "github.com/SscSPs/transaction_insights_api/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindOrCreateCustomerByEmail(ctx context.Context, name, email string) (*domain.Customer, bool, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Customer), args.Bool(1), args.Error(2)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
	nextID int64
	Saved  []domain.Transaction
}

func (m *MockTransactionRepository) FindTransactionsByCustomer(ctx context.Context, customerID int64, rng domain.DateRange, limit int, after *domain.TransactionCursor) ([]domain.Transaction, error) {
	args := m.Called(ctx, customerID, rng, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// SaveTransaction assigns sequential ids and records what was stored when the
// configured call succeeds.
func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	if err := args.Error(0); err != nil {
		return err
	}
	m.nextID++
	txn.TransactionID = m.nextID
	m.Saved = append(m.Saved, *txn)
	return nil
}

// --- Mock SpendingRepository ---

type MockSpendingRepository struct {
	mock.Mock
}

func (m *MockSpendingRepository) SumByCategory(ctx context.Context, customerID *int64, rng domain.DateRange, order portsrepo.CategoryOrder) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, customerID, rng, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockSpendingRepository) SumByCustomer(ctx context.Context, rng domain.DateRange) ([]domain.CustomerTotal, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerTotal), args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var (
	_ portsrepo.CustomerRepositoryFacade    = (*MockCustomerRepository)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)
	_ portsrepo.SpendingRepository          = (*MockSpendingRepository)(nil)
	_ portsrepo.UserRepositoryFacade        = (*MockUserRepository)(nil)
)
