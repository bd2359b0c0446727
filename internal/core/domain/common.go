package domain

import "time"

// AuditFields are the row timestamps of mutable entities (users). Ingested
// customers and transactions are append-only and only carry a creation time.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// NewAuditFields stamps a freshly created entity with now in UTC.
func NewAuditFields(now time.Time) AuditFields {
	now = now.UTC()
	return AuditFields{CreatedAt: now, LastUpdatedAt: now}
}
