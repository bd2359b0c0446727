package mapping

import (
	"database/sql"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	"github.com/SscSPs/transaction_insights_api/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Role:         string(d.Role),
		AuditFields:  models.AuditFields(d.AuditFields), // same columns, tags differ
	}
	if d.CustomerID != nil {
		m.CustomerID = sql.NullInt64{Int64: *d.CustomerID, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User.
// An unrecognised stored role degrades to USER.
func ToDomainUser(m models.User) domain.User {
	role, ok := domain.ParseRole(m.Role)
	if !ok {
		role = domain.RoleUser
	}
	d := domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         role,
		AuditFields:  domain.AuditFields(m.AuditFields),
	}
	if m.CustomerID.Valid {
		id := m.CustomerID.Int64
		d.CustomerID = &id
	}
	return d
}
