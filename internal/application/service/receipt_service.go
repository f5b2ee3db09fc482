package service

import (
	"context"
	"strings"
	"time"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/internal/domain/enum"
	"github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/aakb/rasid-api/pkg/apperror"
	"github.com/aakb/rasid-api/pkg/pagination"
	"github.com/google/uuid"
)

// DateLayout is the wire format of receipt dates
const DateLayout = "2006-01-02"

// ReceiptService handles issuing and managing receipts
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	sadhakRepo  repository.SadhakRepository
	loc         *time.Location
	now         func() time.Time
}

// NewReceiptService creates a new receipt service. Dates without a value
// default to today in loc.
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	sadhakRepo repository.SadhakRepository,
	loc *time.Location,
) *ReceiptService {
	if loc == nil {
		loc = time.Local
	}
	return &ReceiptService{
		receiptRepo: receiptRepo,
		sadhakRepo:  sadhakRepo,
		loc:         loc,
		now:         time.Now,
	}
}

// CreateReceiptInput represents the input for issuing a receipt
type CreateReceiptInput struct {
	SadhakID    uuid.UUID
	Amount      int64
	Date        string
	PaymentMode string
	Remarks     string
	CreatedBy   string
}

// CreateReceipt issues a receipt. The receipt number is allocated by the
// store and never reused.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	receipt, err := s.draft(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// Draft validates input and returns an unsaved receipt numbered as the next
// receipt would be.
func (s *ReceiptService) Draft(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	receipt, err := s.draft(ctx, input)
	if err != nil {
		return nil, err
	}
	next, err := s.NextNumber(ctx)
	if err != nil {
		return nil, err
	}
	receipt.ReceiptNo = next
	return receipt, nil
}

func (s *ReceiptService) draft(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	var fieldErrors []apperror.FieldError
	if input.SadhakID == uuid.Nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "sadhak_id", Message: "is required"})
	}
	if input.Amount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	date, err := s.parseDate(input.Date)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	mode, err := enum.ParsePaymentMode(input.PaymentMode)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_mode", Message: err.Error()})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	sadhak, err := s.sadhakRepo.GetByID(ctx, input.SadhakID)
	if err != nil {
		return nil, err
	}
	if sadhak == nil {
		return nil, apperror.NewNotFoundError("Sadhak")
	}

	return &entity.Receipt{
		SadhakID:    sadhak.ID,
		Amount:      input.Amount,
		Date:        date,
		PaymentMode: mode,
		Remarks:     optionalText(input.Remarks),
		CreatedBy:   input.CreatedBy,
		Sadhak:      *sadhak,
	}, nil
}

// NextNumber returns the number the next issued receipt is expected to get
func (s *ReceiptService) NextNumber(ctx context.Context) (int64, error) {
	maxNo, err := s.receiptRepo.MaxNumber(ctx)
	if err != nil {
		return 0, err
	}
	return maxNo + 1, nil
}

// GetReceipt returns a receipt with its sadhak
func (s *ReceiptService) GetReceipt(ctx context.Context, receiptNo int64) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByNumber(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceiptsInput represents the filters for listing receipts
type ListReceiptsInput struct {
	Pagination *pagination.PaginationParams
	From       string
	To         string
	Name       string
}

// ListReceipts returns receipts newest first
func (s *ReceiptService) ListReceipts(ctx context.Context, input *ListReceiptsInput) (*pagination.PaginatedResult[entity.Receipt], error) {
	filter := repository.ReceiptFilter{Name: strings.TrimSpace(input.Name)}

	var fieldErrors []apperror.FieldError
	if input.From != "" {
		from, err := time.ParseInLocation(DateLayout, input.From, s.loc)
		if err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "from", Message: "must be YYYY-MM-DD"})
		}
		filter.From = from
	}
	if input.To != "" {
		to, err := time.ParseInLocation(DateLayout, input.To, s.loc)
		if err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "to", Message: "must be YYYY-MM-DD"})
		}
		filter.To = to
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	params := input.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	receipts, total, err := s.receiptRepo.List(ctx, params, filter)
	if err != nil {
		return nil, err
	}
	return pagination.Page(receipts, params, total), nil
}

// UpdateReceiptInput represents the admin-editable fields of a receipt.
// Nil fields are left unchanged.
type UpdateReceiptInput struct {
	ReceiptNo   int64
	Amount      *int64
	PaymentMode *string
	Remarks     *string
}

// UpdateReceipt corrects the amount, payment mode or remarks of a receipt
func (s *ReceiptService) UpdateReceipt(ctx context.Context, input *UpdateReceiptInput) (*entity.Receipt, error) {
	receipt, err := s.GetReceipt(ctx, input.ReceiptNo)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "amount", Message: "must be greater than zero"}})
		}
		receipt.Amount = *input.Amount
	}
	if input.PaymentMode != nil {
		mode, err := enum.ParsePaymentMode(*input.PaymentMode)
		if err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "payment_mode", Message: err.Error()}})
		}
		receipt.PaymentMode = mode
	}
	if input.Remarks != nil {
		receipt.Remarks = optionalText(*input.Remarks)
	}

	if err := s.receiptRepo.Update(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// DeleteReceipt removes a receipt. Its number is not reissued.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, receiptNo int64) error {
	if _, err := s.GetReceipt(ctx, receiptNo); err != nil {
		return err
	}
	return s.receiptRepo.Delete(ctx, receiptNo)
}

func (s *ReceiptService) parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		y, m, d := s.now().In(s.loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, s.loc), nil
	}
	return time.ParseInLocation(DateLayout, value, s.loc)
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
