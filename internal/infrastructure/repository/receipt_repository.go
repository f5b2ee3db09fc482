package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/aakb/rasid-api/internal/domain/entity"
	domainRepo "github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/aakb/rasid-api/pkg/pagination"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Omit("Sadhak").Create(receipt).Error
}

func (r *receiptRepository) GetByNumber(ctx context.Context, receiptNo int64) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Sadhak", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		First(&receipt, "receipt_no = ?", receiptNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) Update(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Omit("Sadhak").Save(receipt).Error
}

func (r *receiptRepository) Delete(ctx context.Context, receiptNo int64) error {
	return r.db.WithContext(ctx).Delete(&entity.Receipt{}, "receipt_no = ?", receiptNo).Error
}

func (r *receiptRepository) List(ctx context.Context, params *pagination.PaginationParams, filter domainRepo.ReceiptFilter) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{})
	if !filter.From.IsZero() {
		query = query.Where("receipts.date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("receipts.date <= ?", filter.To)
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Joins("JOIN sadhaks ON sadhaks.id = receipts.sadhak_id").
			Where("sadhaks.name ILIKE ?", "%"+name+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Sadhak", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Order("receipts.receipt_no DESC").
		Find(&receipts).Error

	return receipts, total, err
}

func (r *receiptRepository) MaxNumber(ctx context.Context) (int64, error) {
	var maxNo int64
	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Select("COALESCE(MAX(receipt_no), 0)").
		Scan(&maxNo).Error
	return maxNo, err
}
