package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/transaction_insights_api/internal/apperrors"
	"github.com/SscSPs/transaction_insights_api/internal/core/domain"
	portsrepo "github.com/SscSPs/transaction_insights_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/transaction_insights_api/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// TimestampLayout is the layout of the timestamp column in ingestion files.
const TimestampLayout = "2006-01-02 15:04:05"

// minRecordFields is the number of mandatory columns; a ninth optional column carries the category.
const minRecordFields = 8

// maxLineBytes bounds a single CSV line.
const maxLineBytes = 1024 * 1024

// ingestionService loads transaction rows and resolves their customers.
type ingestionService struct {
	BaseService
	customerRepo    portsrepo.CustomerRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	classifier      portssvc.CategoryClassifier
}

// IngestionServiceOption is a functional option for configuring the ingestion service
type IngestionServiceOption func(*ingestionService)

// WithClassifier replaces the default keyword classifier.
func WithClassifier(c portssvc.CategoryClassifier) IngestionServiceOption {
	return func(s *ingestionService) {
		s.classifier = c
	}
}

// NewIngestionService creates a new ingestion service with the provided options
func NewIngestionService(customerRepo portsrepo.CustomerRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade, options ...IngestionServiceOption) portssvc.IngestionSvc {
	svc := &ingestionService{
		BaseService:     newBaseService("ingestion"),
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.classifier == nil {
		svc.classifier = NewKeywordClassifier()
	}
	return svc
}

var _ portssvc.IngestionSvc = (*ingestionService)(nil)

// ingestRecord is a validated row, ready to be attached to a customer.
type ingestRecord struct {
	externalID    string
	customerName  string
	customerEmail string
	timestamp     time.Time
	description   string
	merchant      string
	mcc           string
	amount        decimal.Decimal
	category      domain.Category
}

// parseRecord validates one row. Nothing is persisted here, so a rejected row
// leaves no customer or transaction behind.
func (s *ingestionService) parseRecord(row []string) (*ingestRecord, error) {
	if len(row) < minRecordFields {
		return nil, fmt.Errorf("%w: expected at least %d fields, got %d", apperrors.ErrValidation, minRecordFields, len(row))
	}
	fields := make([]string, len(row))
	for i, f := range row {
		fields[i] = strings.TrimSpace(f)
	}

	rec := &ingestRecord{
		externalID:    fields[0],
		customerName:  fields[1],
		customerEmail: fields[2],
		description:   fields[4],
		merchant:      fields[5],
		mcc:           fields[6],
	}
	if rec.customerEmail == "" {
		return nil, fmt.Errorf("%w: customer email is empty", apperrors.ErrValidation)
	}

	ts, err := time.ParseInLocation(TimestampLayout, fields[3], time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid timestamp '%s'", apperrors.ErrValidation, fields[3])
	}
	rec.timestamp = ts

	amount, err := decimal.NewFromString(fields[7])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount '%s'", apperrors.ErrValidation, fields[7])
	}
	rec.amount = amount

	label := ""
	if len(fields) > minRecordFields {
		label = fields[minRecordFields]
	}
	if category, ok := domain.ParseCategory(label); ok {
		rec.category = category
	} else {
		rec.category = s.classifier.Classify(rec.description, rec.merchant, rec.mcc)
	}
	return rec, nil
}

// Load ingests rows one by one. Each accepted row is written on its own, so a
// failing row never undoes the rows before it.
func (s *ingestionService) Load(ctx context.Context, rows [][]string) (*domain.LoadResult, error) {
	result := &domain.LoadResult{}
	customers := make(map[string]*domain.Customer) // email -> customer, scoped to this load

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.RowsRead++
		rowNum := i + 1

		rec, err := s.parseRecord(row)
		if err != nil {
			s.LogWarn(ctx, "Skipping invalid row", slog.Int("row", rowNum), slog.String("reason", err.Error()), slog.String("line", strings.Join(row, ",")))
			result.RowsSkipped++
			continue
		}

		customer, ok := customers[rec.customerEmail]
		if !ok {
			var created bool
			customer, created, err = s.customerRepo.FindOrCreateCustomerByEmail(ctx, rec.customerName, rec.customerEmail)
			if err != nil {
				s.LogError(ctx, err, "Failed to resolve customer, skipping row", slog.Int("row", rowNum), slog.String("email", rec.customerEmail))
				result.RowsSkipped++
				continue
			}
			if created {
				result.CustomersCreated++
			}
			customers[rec.customerEmail] = customer
		}

		txn := &domain.Transaction{
			ExternalID:           rec.externalID,
			CustomerID:           customer.CustomerID,
			Timestamp:            rec.timestamp,
			Description:          rec.description,
			Merchant:             rec.merchant,
			MerchantCategoryCode: rec.mcc,
			Amount:               rec.amount,
			Category:             rec.category,
		}
		if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
			s.LogError(ctx, err, "Failed to save transaction, skipping row", slog.Int("row", rowNum), slog.String("external_id", rec.externalID))
			result.RowsSkipped++
			continue
		}
		result.TransactionsCreated++
	}

	s.LogInfo(ctx, "Data loading complete",
		slog.Int("rows_read", result.RowsRead),
		slog.Int("rows_skipped", result.RowsSkipped),
		slog.Int("customers_created", result.CustomersCreated),
		slog.Int("transactions_created", result.TransactionsCreated))
	return result, nil
}

// LoadCSV splits r into rows on plain commas (no quoting), dropping the header and blank lines.
func (s *ingestionService) LoadCSV(ctx context.Context, r io.Reader) (*domain.LoadResult, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx, rows)
}

// LoadFile loads the CSV file at path.
func (s *ingestionService) LoadFile(ctx context.Context, path string, skipIfPopulated bool) (*domain.LoadResult, error) {
	if skipIfPopulated {
		count, err := s.transactionRepo.CountTransactions(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count existing transactions: %w", err)
		}
		if count > 0 {
			s.LogInfo(ctx, "Transactions already present, skipping data load", slog.Int64("existing_transactions", count))
			return nil, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions file %s: %w", path, err)
	}
	defer f.Close()

	s.LogInfo(ctx, "Loading transactions", slog.String("path", path))
	return s.LoadCSV(ctx, f)
}

func readRows(r io.Reader) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]string
	header := true
	for scanner.Scan() {
		line := scanner.Text()
		if header {
			header = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return rows, nil
}
