package service

import (
	"context"
	"strings"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/aakb/rasid-api/pkg/apperror"
	"github.com/aakb/rasid-api/pkg/pagination"
	"github.com/google/uuid"
)

// SadhakService handles donor records
type SadhakService struct {
	sadhakRepo repository.SadhakRepository
}

// NewSadhakService creates a new sadhak service
func NewSadhakService(sadhakRepo repository.SadhakRepository) *SadhakService {
	return &SadhakService{sadhakRepo: sadhakRepo}
}

// SearchSadhaks returns donors whose name contains search, by name
func (s *SadhakService) SearchSadhaks(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Sadhak], error) {
	params.Validate()
	sadhaks, total, err := s.sadhakRepo.Search(ctx, params, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	return pagination.Page(sadhaks, params, total), nil
}

// GetSadhak returns a donor by ID
func (s *SadhakService) GetSadhak(ctx context.Context, id uuid.UUID) (*entity.Sadhak, error) {
	sadhak, err := s.sadhakRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sadhak == nil {
		return nil, apperror.NewNotFoundError("Sadhak")
	}
	return sadhak, nil
}

// SadhakInput represents the fields of a donor record
type SadhakInput struct {
	Name          string
	Phone         string
	DefaultAmount *int64
}

func (in *SadhakInput) validate() error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "is required"})
	}
	if in.DefaultAmount != nil && *in.DefaultAmount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "default_amount", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (in *SadhakInput) apply(sadhak *entity.Sadhak) {
	sadhak.Name = strings.TrimSpace(in.Name)
	sadhak.Phone = nil
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		sadhak.Phone = &phone
	}
	sadhak.DefaultAmount = in.DefaultAmount
}

// CreateSadhak adds a donor. Names must be unique ignoring case.
func (s *SadhakService) CreateSadhak(ctx context.Context, input *SadhakInput) (*entity.Sadhak, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(ctx, input.Name, uuid.Nil); err != nil {
		return nil, err
	}

	sadhak := &entity.Sadhak{}
	input.apply(sadhak)
	if err := s.sadhakRepo.Create(ctx, sadhak); err != nil {
		return nil, err
	}
	return sadhak, nil
}

// UpdateSadhak replaces a donor's name, phone and default amount
func (s *SadhakService) UpdateSadhak(ctx context.Context, id uuid.UUID, input *SadhakInput) (*entity.Sadhak, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	sadhak, err := s.GetSadhak(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(ctx, input.Name, id); err != nil {
		return nil, err
	}

	input.apply(sadhak)
	if err := s.sadhakRepo.Update(ctx, sadhak); err != nil {
		return nil, err
	}
	return sadhak, nil
}

// DeleteSadhak removes a donor that has no receipts
func (s *SadhakService) DeleteSadhak(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSadhak(ctx, id); err != nil {
		return err
	}
	linked, err := s.sadhakRepo.HasReceipts(ctx, id)
	if err != nil {
		return err
	}
	if linked {
		return apperror.NewConflictError("Cannot delete a sadhak with receipts")
	}
	return s.sadhakRepo.Delete(ctx, id)
}

func (s *SadhakService) ensureUniqueName(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.sadhakRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return apperror.NewConflictError("A sadhak named " + existing.Name + " already exists")
	}
	return nil
}
