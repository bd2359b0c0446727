package services

import (
	"context"
	"io"

	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
)

// CategoryClassifier assigns a category from free-text transaction fields.
type CategoryClassifier interface {
	Classify(description, merchant, mcc string) domain.Category
}

// IngestionSvc loads transaction records into the store.
type IngestionSvc interface {
	// Load ingests already split rows (header excluded). Malformed rows are skipped
	// and logged; the returned error is reserved for a cancelled context.
	Load(ctx context.Context, rows [][]string) (*domain.LoadResult, error)

	// LoadCSV reads comma-separated records from r, discards the header line and loads the rest.
	LoadCSV(ctx context.Context, r io.Reader) (*domain.LoadResult, error)

	// LoadFile opens path and calls LoadCSV. When skipIfPopulated is set and the store
	// already holds transactions, nothing is loaded and the result is nil.
	LoadFile(ctx context.Context, path string, skipIfPopulated bool) (*domain.LoadResult, error)
}
