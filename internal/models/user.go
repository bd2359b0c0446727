package models

import "database/sql"

// User represents a row of the users table.
type User struct {
	UserID       string        `db:"user_id"`
	Username     string        `db:"username"`
	PasswordHash string        `db:"password_hash"`
	Name         string        `db:"name"`
	Role         string        `db:"role"`
	CustomerID   sql.NullInt64 `db:"customer_id"`
	AuditFields
}
