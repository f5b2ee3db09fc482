package repository

import (
	"context"

	"github.com/aakb/rasid-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the organization settings row
type SettingsRepository interface {
	// Get returns the settings row, or nil when it has not been seeded
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
}
