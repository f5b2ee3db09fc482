package service

import (
	"context"
	"time"

	"github.com/aakb/rasid-api/internal/domain/repository"
)

// MaxReportMonths bounds the monthly breakdown of the summary report
const MaxReportMonths = 24

// ReportService provides collection statistics
type ReportService struct {
	reportRepo repository.ReportRepository
	loc        *time.Location
	now        func() time.Time
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportService{
		reportRepo: reportRepo,
		loc:        loc,
		now:        time.Now,
	}
}

// MonthlyPoint is the collection for one month
type MonthlyPoint struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
	Count int64  `json:"count"`
}

// Summary represents the collection summary report
type Summary struct {
	TotalCollection int64          `json:"total_collection"`
	CurrentMonth    int64          `json:"current_month"`
	Monthly         []MonthlyPoint `json:"monthly"`
}

// GetSummary returns the total collection and the last months of per-month
// totals, oldest first. Months without receipts are reported as zero.
func (s *ReportService) GetSummary(ctx context.Context, months int) (*Summary, error) {
	if months < 1 {
		months = 6
	}
	if months > MaxReportMonths {
		months = MaxReportMonths
	}

	total, err := s.reportRepo.TotalCollection(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	since := first.AddDate(0, -(months - 1), 0)

	rows, err := s.reportRepo.MonthlyCollections(ctx, since)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[string]repository.MonthlyCollection, len(rows))
	for _, row := range rows {
		byMonth[row.Month.Format("2006-01")] = row
	}

	summary := &Summary{
		TotalCollection: total,
		Monthly:         make([]MonthlyPoint, 0, months),
	}
	for i := 0; i < months; i++ {
		key := since.AddDate(0, i, 0).Format("2006-01")
		row := byMonth[key]
		summary.Monthly = append(summary.Monthly, MonthlyPoint{Month: key, Total: row.Total, Count: row.Count})
	}
	summary.CurrentMonth = summary.Monthly[months-1].Total
	return summary, nil
}
