package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/pkg/apperror"
	"github.com/aakb/rasid-api/pkg/export"
	"github.com/aakb/rasid-api/pkg/receiptcard"
)

// ExportService renders stored and draft receipts through the export
// pipeline with the current organization letterhead.
type ExportService struct {
	receiptService  *ReceiptService
	settingsService *SettingsService
	pipeline        *export.Pipeline
}

// NewExportService creates a new export service
func NewExportService(
	receiptService *ReceiptService,
	settingsService *SettingsService,
	pipeline *export.Pipeline,
) *ExportService {
	return &ExportService{
		receiptService:  receiptService,
		settingsService: settingsService,
		pipeline:        pipeline,
	}
}

// ReceiptDocument converts a stored receipt into the composer's input
func ReceiptDocument(r *entity.Receipt) receiptcard.Document {
	return receiptcard.Document{
		Number:      r.ReceiptNo,
		DonorName:   r.DonorName(),
		Amount:      r.Amount,
		Date:        r.Date,
		PaymentMode: string(r.PaymentMode),
		Remarks:     r.RemarksText(),
		IssuedBy:    r.CreatedBy,
	}
}

func (s *ExportService) request(ctx context.Context, receipt *entity.Receipt) (export.Request, error) {
	lh, err := s.settingsService.Letterhead(ctx)
	if err != nil {
		return export.Request{}, err
	}
	return export.Request{Document: ReceiptDocument(receipt), Letterhead: &lh}, nil
}

func (s *ExportService) load(ctx context.Context, receiptNo int64) (export.Request, error) {
	receipt, err := s.receiptService.GetReceipt(ctx, receiptNo)
	if err != nil {
		return export.Request{}, err
	}
	return s.request(ctx, receipt)
}

// Fields returns the formatted strings printed on a receipt
func (s *ExportService) Fields(ctx context.Context, receiptNo int64) (*receiptcard.Fields, error) {
	req, err := s.load(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	card, err := s.pipeline.Card(req)
	if err != nil {
		return nil, exportError(err)
	}
	return &card.Fields, nil
}

// Export renders a receipt as a png, jpg or pdf download
func (s *ExportService) Export(ctx context.Context, receiptNo int64, format string) (*export.Artifact, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	req, err := s.load(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	art, err := s.pipeline.Export(ctx, req, f)
	if err != nil {
		return nil, exportError(err)
	}
	return art, nil
}

// Preview renders an unsaved receipt numbered as the next receipt would be.
// Concurrent previews by the same user are refused.
func (s *ExportService) Preview(ctx context.Context, input *CreateReceiptInput, format string) (*export.Artifact, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	receipt, err := s.receiptService.Draft(ctx, input)
	if err != nil {
		return nil, err
	}
	req, err := s.request(ctx, receipt)
	if err != nil {
		return nil, err
	}
	req.Key = "draft:" + strings.ToLower(input.CreatedBy)

	art, err := s.pipeline.Export(ctx, req, f)
	if err != nil {
		return nil, exportError(err)
	}
	return art, nil
}

// ShareInput names the receipt and where to send it
type ShareInput struct {
	ReceiptNo int64
	Channel   string
	To        string
}

// Share sends a receipt image to a recipient. When the channel is not
// available the result carries the image as a download and a notice.
func (s *ExportService) Share(ctx context.Context, input *ShareInput) (*export.ShareResult, error) {
	req, err := s.load(ctx, input.ReceiptNo)
	if err != nil {
		return nil, err
	}
	res, err := s.pipeline.Share(ctx, req, export.ShareTarget{
		Channel:   strings.ToLower(strings.TrimSpace(input.Channel)),
		Recipient: strings.TrimSpace(input.To),
	})
	if err != nil {
		return nil, exportError(err)
	}
	return res, nil
}

// Print returns a self-contained HTML page that prints the receipt
func (s *ExportService) Print(ctx context.Context, receiptNo int64) (*export.Artifact, error) {
	req, err := s.load(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	art, err := s.pipeline.Print(ctx, req)
	if err != nil {
		return nil, exportError(err)
	}
	return art, nil
}

// PrintThermal sends the receipt to the receipt printer and returns the job ID
func (s *ExportService) PrintThermal(ctx context.Context, receiptNo int64) (string, error) {
	req, err := s.load(ctx, receiptNo)
	if err != nil {
		return "", err
	}
	jobID, err := s.pipeline.PrintThermal(ctx, req)
	if err != nil {
		return "", exportError(err)
	}
	return jobID, nil
}

// exportError maps pipeline failures onto API errors
func exportError(err error) error {
	var exportErr *export.Error
	switch {
	case errors.Is(err, export.ErrInProgress):
		return apperror.ErrExportInProgress
	case errors.Is(err, export.ErrNoPrinter):
		return apperror.ErrPrinterUnavailable
	case errors.Is(err, receiptcard.ErrInvalidNumber), errors.Is(err, receiptcard.ErrNegativeAmount):
		return apperror.NewBadRequestError(err.Error())
	case errors.As(err, &exportErr):
		if errors.Is(exportErr.Err, receiptcard.ErrInvalidNumber) || errors.Is(exportErr.Err, receiptcard.ErrNegativeAmount) {
			return apperror.NewBadRequestError(exportErr.Err.Error())
		}
		return apperror.NewExportError("Failed to " + exportErr.Op + " receipt. Please try again.")
	}
	return err
}
