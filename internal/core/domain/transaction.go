package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ingested spending record.
type Transaction struct {
	TransactionID        int64           `json:"transactionID"`
	ExternalID           string          `json:"externalID"` // Source id, not guaranteed unique
	CustomerID           int64           `json:"customerID"`
	Timestamp            time.Time       `json:"timestamp"`
	Description          string          `json:"description"`
	Merchant             string          `json:"merchant"`
	MerchantCategoryCode string          `json:"merchantCategoryCode"`
	Amount               decimal.Decimal `json:"amount"`
	Category             Category        `json:"category"`
}

// TransactionCursor marks the last transaction of a page in (timestamp, id) order.
type TransactionCursor struct {
	Timestamp     time.Time
	TransactionID int64
}

// TransactionPage is one page of a customer's transactions.
type TransactionPage struct {
	Transactions []Transaction
	NextToken    *string
}
