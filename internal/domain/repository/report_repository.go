package repository

import (
	"context"
	"time"
)

// MonthlyCollection is the donation total for one calendar month
type MonthlyCollection struct {
	Month time.Time
	Total int64
	Count int64
}

// ReportRepository defines aggregation queries over receipts
type ReportRepository interface {
	// TotalCollection returns the sum of all receipt amounts
	TotalCollection(ctx context.Context) (int64, error)

	// MonthlyCollections returns per-month totals for months starting at or
	// after since, oldest first. Months without receipts are omitted.
	MonthlyCollections(ctx context.Context, since time.Time) ([]MonthlyCollection, error)
}
