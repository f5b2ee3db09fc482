package repository

import (
	"context"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/pkg/pagination"
	"github.com/google/uuid"
)

// SadhakRepository defines the interface for donor data operations
type SadhakRepository interface {
	Create(ctx context.Context, sadhak *entity.Sadhak) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sadhak, error)
	// GetByName returns the sadhak whose name equals name ignoring case
	GetByName(ctx context.Context, name string) (*entity.Sadhak, error)
	Update(ctx context.Context, sadhak *entity.Sadhak) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Search lists sadhaks whose name contains search ignoring case, by name
	Search(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Sadhak, int64, error)
	HasReceipts(ctx context.Context, id uuid.UUID) (bool, error)
}
