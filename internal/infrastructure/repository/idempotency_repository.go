package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aakb/rasid-api/internal/domain/entity"
	domainRepo "github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) Find(ctx context.Context, userID uuid.UUID, key string) (*entity.IdempotencyKey, error) {
	var ikey entity.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ? AND expires_at > ?", userID, key, time.Now()).
		First(&ikey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ikey, nil
}

// Save inserts the record, taking over the (user_id, key) row only when the
// existing one has expired. A live duplicate from a concurrent retry is left
// alone and reported as gorm.ErrDuplicatedKey.
func (r *idempotencyRepository) Save(ctx context.Context, ikey *entity.IdempotencyKey) error {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"endpoint", "request_hash", "response_code", "response_body", "created_at", "expires_at",
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Lt{Column: clause.Column{Table: "idempotency_keys", Name: "expires_at"}, Value: time.Now()},
		}},
	}).Create(ikey)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

func (r *idempotencyRepository) Purge(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.IdempotencyKey{})
	return result.RowsAffected, result.Error
}
