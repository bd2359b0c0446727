package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table.
// Category is stored as plain text so unknown values survive a round trip.
type Transaction struct {
	TransactionID        int64           `db:"transaction_id"`
	ExternalID           string          `db:"external_id"`
	CustomerID           int64           `db:"customer_id"`
	OccurredAt           time.Time       `db:"occurred_at"`
	Description          string          `db:"description"`
	Merchant             string          `db:"merchant"`
	MerchantCategoryCode string          `db:"merchant_category_code"`
	Amount               decimal.Decimal `db:"amount"`
	Category             string          `db:"category"`
}

// CategoryTotal is one row of a grouped sum per category.
type CategoryTotal struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

// CustomerTotal is one row of a grouped sum per customer.
type CustomerTotal struct {
	CustomerID int64           `db:"customer_id"`
	Total      decimal.Decimal `db:"total"`
}
