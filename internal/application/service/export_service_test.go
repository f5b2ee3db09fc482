package service

import (
	"context"
	"errors"
	"image"
	"net/http"
	"strings"
	"testing"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/pkg/apperror"
	"github.com/aakb/rasid-api/pkg/export"
	"github.com/aakb/rasid-api/pkg/receiptcard"
)

type blankRasterizer struct {
	text string
	err  error
}

func (r *blankRasterizer) Rasterize(_ context.Context, card *receiptcard.Card) (*image.RGBA, error) {
	if r.err != nil {
		return nil, r.err
	}
	var b strings.Builder
	for _, el := range card.Elements {
		if txt, ok := el.(receiptcard.Text); ok {
			b.WriteString(txt.Content)
			b.WriteString("\n")
		}
	}
	r.text = b.String()
	return image.NewRGBA(image.Rect(0, 0, card.Width*3, card.Height*3)), nil
}

type pdfStub struct{}

func (pdfStub) Wrap(data []byte, _, _ int, _ bool) ([]byte, error) {
	return append([]byte("%PDF-1.3\n"), data[:4]...), nil
}

type spoolStub struct {
	img image.Image
}

func (s *spoolStub) Spool(_ context.Context, img image.Image) error {
	s.img = img
	return nil
}

type exportFixture struct {
	svc      *ExportService
	receipts *ReceiptService
	raster   *blankRasterizer
	donor    *entity.Sadhak
}

func newExportFixture(t *testing.T, opts ...export.Option) *exportFixture {
	t.Helper()
	donor := &entity.Sadhak{Name: "Ramesh  Patel"}
	receipts, _ := newReceiptFixture(donor)
	settings := NewSettingsService(&fakeSettingsRepo{}, nil)
	if _, err := settings.UpdateSettings(context.Background(), &UpdateSettingsInput{OrgName: "Shanti Ashram"}); err != nil {
		t.Fatal(err)
	}
	raster := &blankRasterizer{}
	pipeline := export.NewPipeline(receiptcard.NewComposer(receiptcard.DefaultLetterhead()), raster, pdfStub{}, opts...)
	if _, err := receipts.CreateReceipt(context.Background(), &CreateReceiptInput{
		SadhakID: donor.ID, Amount: 1100, Date: "2024-03-05", CreatedBy: "seva@aakb.org.in",
	}); err != nil {
		t.Fatal(err)
	}
	return &exportFixture{
		svc:      NewExportService(receipts, settings, pipeline),
		receipts: receipts,
		raster:   raster,
		donor:    donor,
	}
}

func TestExportReceipt(t *testing.T) {
	f := newExportFixture(t)
	ctx := context.Background()

	art, err := f.svc.Export(ctx, 1, "PDF")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if art.Filename != "Receipt_1_Ramesh_Patel.pdf" || art.MIMEType != "application/pdf" {
		t.Errorf("artifact = %s %s", art.Filename, art.MIMEType)
	}
	if !strings.Contains(f.raster.text, "Shanti Ashram") {
		t.Errorf("letterhead from settings not used:\n%s", f.raster.text)
	}

	if _, err := f.svc.Export(ctx, 1, "gif"); apperror.GetAppError(err).Code != http.StatusBadRequest {
		t.Errorf("unsupported format error = %v", err)
	}
	if _, err := f.svc.Export(ctx, 7, "png"); apperror.GetAppError(err).Code != http.StatusNotFound {
		t.Errorf("missing receipt error = %v", err)
	}
}

func TestReceiptFields(t *testing.T) {
	f := newExportFixture(t)
	fields, err := f.svc.Fields(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if fields.ReceiptNumber != "૧" || fields.Date != "૦૫/૦૩/૨૦૨૪" {
		t.Errorf("fields = %+v", fields)
	}
	if fields.AmountNumerals != "₹ ૧૧૦૦/-" {
		t.Errorf("AmountNumerals = %q", fields.AmountNumerals)
	}
	if fields.PaymentMode != "રોકડ" {
		t.Errorf("PaymentMode = %q", fields.PaymentMode)
	}
}

func TestPreviewDraft(t *testing.T) {
	f := newExportFixture(t)
	art, err := f.svc.Preview(context.Background(), &CreateReceiptInput{
		SadhakID: f.donor.ID, Amount: 251, CreatedBy: "seva@aakb.org.in",
	}, "jpg")
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if art.Filename != "Receipt_2_Ramesh_Patel.jpg" {
		t.Errorf("Filename = %q", art.Filename)
	}
	if next, _ := f.receipts.NextNumber(context.Background()); next != 2 {
		t.Errorf("preview saved a receipt, next = %d", next)
	}
}

func TestShareFallsBackToDownload(t *testing.T) {
	f := newExportFixture(t)
	res, err := f.svc.Share(context.Background(), &ShareInput{ReceiptNo: 1, Channel: "email", To: "donor@example.org"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Shared || res.Notice != export.NoticeShareUnavailable {
		t.Errorf("result = %+v", res)
	}
	if res.Artifact.MIMEType != "image/png" || res.Title != "Receipt #1" {
		t.Errorf("artifact = %s, title = %q", res.Artifact.MIMEType, res.Title)
	}
}

func TestPrintAndThermal(t *testing.T) {
	ctx := context.Background()

	f := newExportFixture(t)
	art, err := f.svc.Print(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(art.MIMEType, "text/html") || !strings.Contains(string(art.Data), "Receipt #1") {
		t.Errorf("print artifact = %s", art.MIMEType)
	}

	if _, err := f.svc.PrintThermal(ctx, 1); !errors.Is(err, apperror.ErrPrinterUnavailable) {
		t.Errorf("PrintThermal without printer = %v", err)
	}

	spool := &spoolStub{}
	f = newExportFixture(t, export.WithSpooler(spool))
	jobID, err := f.svc.PrintThermal(ctx, 1)
	if err != nil || jobID == "" || spool.img == nil {
		t.Errorf("PrintThermal() = %q, %v", jobID, err)
	}
}

func TestExportErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{export.ErrInProgress, http.StatusConflict},
		{export.ErrNoPrinter, http.StatusServiceUnavailable},
		{&export.Error{Kind: export.KindRender, Op: "rasterize", Err: errors.New("boom")}, http.StatusBadGateway},
		{&export.Error{Kind: export.KindRender, Op: "compose", Err: receiptcard.ErrInvalidNumber}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		if got := apperror.GetAppError(exportError(tt.err)).Code; got != tt.code {
			t.Errorf("exportError(%v) code = %d, want %d", tt.err, got, tt.code)
		}
	}

	f := newExportFixture(t)
	f.raster.err = errors.New("out of memory")
	if _, err := f.svc.Export(context.Background(), 1, "png"); apperror.GetAppError(err).Code != http.StatusBadGateway {
		t.Errorf("render failure = %v", err)
	}
}
