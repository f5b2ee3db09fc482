package service

import (
	"context"
	"image"
	"strings"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/aakb/rasid-api/pkg/apperror"
	"github.com/aakb/rasid-api/pkg/receiptcard"
)

// SettingsService handles the organization settings printed on receipts
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	logo         image.Image
}

// NewSettingsService creates a new settings service. logo may be nil.
func NewSettingsService(settingsRepo repository.SettingsRepository, logo image.Image) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logo:         logo,
	}
}

// DefaultSettings returns the settings row used on an empty database
func DefaultSettings() *entity.Settings {
	lh := receiptcard.DefaultLetterhead()
	return &entity.Settings{
		ID:         entity.SettingsID,
		OrgName:    lh.OrgName,
		OrgAddress: lh.Address,
		OrgPhone:   lh.Phone,
		OrgEmail:   lh.Email,
		OrgWebsite: lh.Website,
	}
}

// GetSettings retrieves the settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = DefaultSettings()
		if err := s.settingsRepo.Save(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	OrgName           string
	OrgAddress        string
	OrgPhone          string
	OrgEmail          string
	OrgWebsite        string
	WhatsAppGroupLink string
}

// UpdateSettings replaces the organization settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	if strings.TrimSpace(input.OrgName) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "org_name", Message: "is required"}})
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.OrgName = strings.TrimSpace(input.OrgName)
	settings.OrgAddress = strings.TrimSpace(input.OrgAddress)
	settings.OrgPhone = strings.TrimSpace(input.OrgPhone)
	settings.OrgEmail = strings.TrimSpace(input.OrgEmail)
	settings.OrgWebsite = strings.TrimSpace(input.OrgWebsite)
	settings.WhatsAppGroupLink = optionalText(input.WhatsAppGroupLink)

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Letterhead returns the header block printed on every receipt
func (s *SettingsService) Letterhead(ctx context.Context) (receiptcard.Letterhead, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return receiptcard.Letterhead{}, err
	}
	return receiptcard.Letterhead{
		OrgName: settings.OrgName,
		Address: settings.OrgAddress,
		Phone:   settings.OrgPhone,
		Email:   settings.OrgEmail,
		Website: settings.OrgWebsite,
		Logo:    s.logo,
	}, nil
}
