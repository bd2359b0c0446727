package domain

// LoadResult reports what one ingestion run did.
type LoadResult struct {
	RowsRead            int `json:"rowsRead"`
	RowsSkipped         int `json:"rowsSkipped"`
	CustomersCreated    int `json:"customersCreated"`
	TransactionsCreated int `json:"transactionsCreated"`
}
