package repository

import (
	"context"
	"errors"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the settings row
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settings entity.Settings
	err := r.db.WithContext(ctx).First(&settings, entity.SettingsID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Save creates or updates the settings row
func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	settings.ID = entity.SettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
