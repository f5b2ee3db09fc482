package repository

import (
	"context"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/pkg/pagination"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// GetByEmail matches the email ignoring case
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error)
}
