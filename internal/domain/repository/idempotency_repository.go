package repository

import (
	"context"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/google/uuid"
)

// IdempotencyRepository stores replayable responses keyed by (user, key).
type IdempotencyRepository interface {
	// Find returns the live record for the user's key, or nil when there is
	// none or it has expired.
	Find(ctx context.Context, userID uuid.UUID, key string) (*entity.IdempotencyKey, error)
	// Save stores a response. An expired record under the same key is replaced.
	Save(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Purge deletes expired records and returns how many were removed.
	Purge(ctx context.Context) (int64, error)
}
