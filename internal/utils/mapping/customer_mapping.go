package mapping

import (
	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	"github.com/SscSPs/transaction_insights_api/internal/models"
)

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Email:      m.Email,
		CreatedAt:  m.CreatedAt,
	}
}
