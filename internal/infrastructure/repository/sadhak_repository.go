package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/aakb/rasid-api/internal/domain/entity"
	domainRepo "github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/aakb/rasid-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sadhakRepository struct {
	db *gorm.DB
}

// NewSadhakRepository creates a new sadhak repository
func NewSadhakRepository(db *gorm.DB) domainRepo.SadhakRepository {
	return &sadhakRepository{db: db}
}

func (r *sadhakRepository) Create(ctx context.Context, sadhak *entity.Sadhak) error {
	return r.db.WithContext(ctx).Create(sadhak).Error
}

func (r *sadhakRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sadhak, error) {
	var sadhak entity.Sadhak
	err := r.db.WithContext(ctx).First(&sadhak, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sadhak, err
}

func (r *sadhakRepository) GetByName(ctx context.Context, name string) (*entity.Sadhak, error) {
	var sadhak entity.Sadhak
	err := r.db.WithContext(ctx).
		First(&sadhak, "LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sadhak, err
}

func (r *sadhakRepository) Update(ctx context.Context, sadhak *entity.Sadhak) error {
	return r.db.WithContext(ctx).Save(sadhak).Error
}

func (r *sadhakRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Sadhak{}, "id = ?", id).Error
}

func (r *sadhakRepository) Search(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Sadhak, int64, error) {
	var sadhaks []entity.Sadhak
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sadhak{})
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&sadhaks).Error

	return sadhaks, total, err
}

func (r *sadhakRepository) HasReceipts(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Where("sadhak_id = ?", id).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}
