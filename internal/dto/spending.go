package dto

import (
	"time"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateRangeParams are the optional from/to query parameters shared by the summary endpoints.
type DateRangeParams struct {
	From string `form:"from" binding:"omitempty,dateonly"`
	To   string `form:"to" binding:"omitempty,dateonly"`
}

// Dates returns the embedded date range parameters.
func (p DateRangeParams) Dates() DateRangeParams {
	return p
}

// TopSpendersParams are the query parameters of the top-spenders endpoint.
type TopSpendersParams struct {
	DateRangeParams
	Count int `form:"count,default=5" binding:"min=1,max=1000"`
}

// TopCategoriesParams are the query parameters of the top-categories endpoint.
type TopCategoriesParams struct {
	DateRangeParams
	Count      int    `form:"count,default=5" binding:"min=1,max=1000"`
	CustomerID *int64 `form:"customerId" binding:"omitempty,gt=0"`
}

// ListTransactionsParams are the query parameters of the transaction listing endpoint.
type ListTransactionsParams struct {
	DateRangeParams
	Limit     int     `form:"limit,default=0" binding:"min=0,max=1000"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse is the public view of a stored transaction.
type TransactionResponse struct {
	TransactionID        int64           `json:"transactionId"`
	ExternalID           string          `json:"externalId"`
	CustomerID           int64           `json:"customerId"`
	Timestamp            time.Time       `json:"timestamp"`
	Description          string          `json:"description"`
	Merchant             string          `json:"merchant"`
	MerchantCategoryCode string          `json:"merchantCategoryCode"`
	Amount               decimal.Decimal `json:"amount"`
	Category             domain.Category `json:"category"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a domain.TransactionPage to its DTO.
func ToListTransactionsResponse(page *domain.TransactionPage) ListTransactionsResponse {
	resp := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(page.Transactions)),
		NextToken:    page.NextToken,
	}
	for i, t := range page.Transactions {
		resp.Transactions[i] = TransactionResponse{
			TransactionID:        t.TransactionID,
			ExternalID:           t.ExternalID,
			CustomerID:           t.CustomerID,
			Timestamp:            t.Timestamp,
			Description:          t.Description,
			Merchant:             t.Merchant,
			MerchantCategoryCode: t.MerchantCategoryCode,
			Amount:               t.Amount,
			Category:             t.Category,
		}
	}
	return resp
}

// ListCategoriesResponse lists every category name.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}
