package repository

import (
	"context"
	"time"

	domainRepo "github.com/aakb/rasid-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) TotalCollection(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM receipts
	`).Scan(&total).Error
	return total, err
}

func (r *reportRepository) MonthlyCollections(ctx context.Context, since time.Time) ([]domainRepo.MonthlyCollection, error) {
	var results []domainRepo.MonthlyCollection

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('month', date) as month,
			COALESCE(SUM(amount), 0) as total,
			COUNT(*) as count
		FROM receipts
		WHERE date >= ?
		GROUP BY date_trunc('month', date)
		ORDER BY month ASC
	`, since).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}
