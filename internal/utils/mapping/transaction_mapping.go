package mapping

import (
	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	"github.com/SscSPs/transaction_insights_api/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		ExternalID:           d.ExternalID,
		CustomerID:           d.CustomerID,
		OccurredAt:           d.Timestamp,
		Description:          d.Description,
		Merchant:             d.Merchant,
		MerchantCategoryCode: d.MerchantCategoryCode,
		Amount:               d.Amount,
		Category:             string(d.Category),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		ExternalID:           m.ExternalID,
		CustomerID:           m.CustomerID,
		Timestamp:            m.OccurredAt.UTC(),
		Description:          m.Description,
		Merchant:             m.Merchant,
		MerchantCategoryCode: m.MerchantCategoryCode,
		Amount:               m.Amount,
		Category:             toDomainCategory(m.Category),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToDomainCategoryTotals converts grouped category rows
func ToDomainCategoryTotals(ms []models.CategoryTotal) []domain.CategoryTotal {
	ds := make([]domain.CategoryTotal, len(ms))
	for i, m := range ms {
		ds[i] = domain.CategoryTotal{Category: toDomainCategory(m.Category), Total: m.Total}
	}
	return ds
}

// ToDomainCustomerTotals converts grouped customer rows
func ToDomainCustomerTotals(ms []models.CustomerTotal) []domain.CustomerTotal {
	ds := make([]domain.CustomerTotal, len(ms))
	for i, m := range ms {
		ds[i] = domain.CustomerTotal{CustomerID: m.CustomerID, Total: m.Total}
	}
	return ds
}

// toDomainCategory trusts stored labels only when they name a known category.
func toDomainCategory(s string) domain.Category {
	if c := domain.Category(s); c.IsValid() {
		return c
	}
	return domain.CategoryOther
}
