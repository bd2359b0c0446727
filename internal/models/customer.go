package models

import "time"

// Customer mirrors a row of the customers table.
type Customer struct {
	CustomerID int64     `db:"customer_id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	CreatedAt  time.Time `db:"created_at"`
}
