package domain

import "time"

// Customer owns transactions. Email is the natural key used during ingestion.
type Customer struct {
	CustomerID int64     `json:"customerID"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
}
