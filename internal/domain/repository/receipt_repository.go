package repository

import (
	"context"
	"time"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/pkg/pagination"
)

// ReceiptFilter narrows a receipt listing. Zero values match everything.
type ReceiptFilter struct {
	From time.Time
	To   time.Time
	Name string
}

// ReceiptRepository defines the interface for receipt data operations
type ReceiptRepository interface {
	// Create inserts the receipt and fills in its allocated ReceiptNo
	Create(ctx context.Context, receipt *entity.Receipt) error
	// GetByNumber returns the receipt with its sadhak, or nil
	GetByNumber(ctx context.Context, receiptNo int64) (*entity.Receipt, error)
	Update(ctx context.Context, receipt *entity.Receipt) error
	Delete(ctx context.Context, receiptNo int64) error
	// List returns receipts newest first with their sadhaks
	List(ctx context.Context, params *pagination.PaginationParams, filter ReceiptFilter) ([]entity.Receipt, int64, error)
	// MaxNumber returns the highest issued receipt number, 0 when none exist
	MaxNumber(ctx context.Context) (int64, error)
}
