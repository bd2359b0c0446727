package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for query parameters and period labels.
const DateLayout = "2006-01-02"

// DateRange is an optional calendar-date window. A nil bound is unbounded on that side;
// To is inclusive through the end of its day.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// NewDateRange truncates the given bounds to calendar dates in UTC.
func NewDateRange(from, to *time.Time) DateRange {
	return DateRange{From: truncateDay(from), To: truncateDay(to)}
}

// Start returns the first instant covered by the range, or nil when unbounded.
func (r DateRange) Start() *time.Time {
	return truncateDay(r.From)
}

// EndExclusive returns the first instant after the range (start of the day after To),
// or nil when unbounded.
func (r DateRange) EndExclusive() *time.Time {
	if r.To == nil {
		return nil
	}
	end := truncateDay(r.To).AddDate(0, 0, 1)
	return &end
}

// Validate rejects ranges whose start lies after their end.
func (r DateRange) Validate() error {
	if r.From != nil && r.To != nil && truncateDay(r.From).After(*truncateDay(r.To)) {
		return fmt.Errorf("from date %s is after to date %s", r.From.Format(DateLayout), r.To.Format(DateLayout))
	}
	return nil
}

// PeriodDescription renders the range as a human-readable label.
func (r DateRange) PeriodDescription() string {
	switch {
	case r.From == nil && r.To == nil:
		return "All time"
	case r.From != nil && r.To != nil:
		return fmt.Sprintf("%s to %s", r.From.Format(DateLayout), r.To.Format(DateLayout))
	case r.From != nil:
		return fmt.Sprintf("From %s", r.From.Format(DateLayout))
	default:
		return fmt.Sprintf("Until %s", r.To.Format(DateLayout))
	}
}

func truncateDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// CategoryTotal is one row of a grouped sum by category.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
}

// CustomerTotal is one row of a grouped sum by customer.
type CustomerTotal struct {
	CustomerID int64
	Total      decimal.Decimal
}

// CategoryBreakdownEntry is the total spent in one category.
type CategoryBreakdownEntry struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// SpendingSummary is the shared shape of customer and overall summaries.
type SpendingSummary struct {
	PeriodDescription string                   `json:"periodDescription"`
	TotalSpent        decimal.Decimal          `json:"totalSpent"`
	Breakdown         []CategoryBreakdownEntry `json:"breakdown"`
	TopCategory       *Category                `json:"topCategory"` // nil when nothing was spent
}

// CustomerSummary is a spending summary restricted to one customer.
type CustomerSummary struct {
	CustomerID int64 `json:"customerId"`
	SpendingSummary
}

// OverallSummary is a spending summary across all customers.
type OverallSummary struct {
	SpendingSummary
}

// TopSpender is a customer ranked by total spend.
type TopSpender struct {
	CustomerID int64           `json:"customerId"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

// TopCategory is a category ranked by total spend.
type TopCategory struct {
	Category   Category        `json:"category"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

// BuildSpendingSummary folds grouped category sums into a summary, keeping row order.
// The top category is the strict maximum; on ties the first row seen wins.
func BuildSpendingSummary(rows []CategoryTotal, rng DateRange) SpendingSummary {
	summary := SpendingSummary{
		PeriodDescription: rng.PeriodDescription(),
		TotalSpent:        decimal.Zero,
		Breakdown:         make([]CategoryBreakdownEntry, 0, len(rows)),
	}
	topValue := decimal.Zero
	for _, row := range rows {
		summary.Breakdown = append(summary.Breakdown, CategoryBreakdownEntry{Category: row.Category, Total: row.Total})
		summary.TotalSpent = summary.TotalSpent.Add(row.Total)
		if row.Total.GreaterThan(topValue) {
			topValue = row.Total
			category := row.Category
			summary.TopCategory = &category
		}
	}
	return summary
}
