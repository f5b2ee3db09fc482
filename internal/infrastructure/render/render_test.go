package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aakb/rasid-api/internal/config"
	"github.com/aakb/rasid-api/pkg/pdfpage"
	"github.com/aakb/rasid-api/pkg/raster"
	"github.com/aakb/rasid-api/pkg/receiptcard"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOptionsSkipsUnreadableTables(t *testing.T) {
	cfg := &config.ReceiptConfig{
		OverridesPath: filepath.Join(t.TempDir(), "missing.toml"),
		NamesPath:     filepath.Join(t.TempDir(), "missing.toml"),
	}
	if opts := Options(cfg, zap.NewNop()); len(opts) != 0 {
		t.Errorf("got %d options for missing files", len(opts))
	}
}

func TestOptionsLoadsTables(t *testing.T) {
	dir := t.TempDir()
	overrides := filepath.Join(dir, "overrides.toml")
	names := filepath.Join(dir, "names.toml")
	if err := os.WriteFile(overrides, []byte("[english]\n2100 = \"Twenty One Hundred\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(names, []byte("zarvan = \"ઝરવાન\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.ReceiptConfig{OverridesPath: overrides, NamesPath: names}
	composer := NewComposer(cfg, receiptcard.DefaultLetterhead(), zap.NewNop())
	fields := composer.Format(receiptcard.Document{Number: 1, DonorName: "Zarvan", Amount: 2100})
	if fields.DonorName != "ઝરવાન" {
		t.Errorf("DonorName = %q", fields.DonorName)
	}
	if fields.AmountWordsEnglish != "Twenty One Hundred Rupees Only" {
		t.Errorf("AmountWordsEnglish = %q", fields.AmountWordsEnglish)
	}
}

func TestNewRasterizer(t *testing.T) {
	r, err := NewRasterizer(&config.ReceiptConfig{PixelRatio: 2, Background: "#fff8f0"}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if r.PixelRatio() != raster.MinPixelRatio {
		t.Errorf("PixelRatio = %v, want %v", r.PixelRatio(), raster.MinPixelRatio)
	}
	if r, _ := NewRasterizer(&config.ReceiptConfig{PixelRatio: 4}, zap.NewNop()); r.PixelRatio() != 4 {
		t.Errorf("PixelRatio = %v, want 4", r.PixelRatio())
	}

	if _, err := NewRasterizer(&config.ReceiptConfig{Background: "orange"}, zap.NewNop()); err == nil {
		t.Error("invalid background accepted")
	}
}

func TestNewPDFWriterMargin(t *testing.T) {
	tests := []struct {
		name   string
		margin float64
		want   float64
		warned bool
	}{
		{"configured", 20, 20, false},
		{"unset", 0, pdfpage.DefaultMargin, false},
		{"negative", -5, pdfpage.DefaultMargin, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			w := NewPDFWriter(&config.ReceiptConfig{PDFMargin: tt.margin}, zap.New(core))
			if w.Margin() != tt.want {
				t.Errorf("Margin() = %v, want %v", w.Margin(), tt.want)
			}
			if got := logs.Len() > 0; got != tt.warned {
				t.Errorf("warned = %v, want %v", got, tt.warned)
			}
		})
	}
}

func TestNewRasterizerFallsBackToEmbeddedFonts(t *testing.T) {
	cfg := &config.ReceiptConfig{FontRegular: filepath.Join(t.TempDir(), "missing.ttf")}
	r, err := NewRasterizer(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewRasterizer() error = %v", err)
	}
	card, err := NewComposer(cfg, receiptcard.DefaultLetterhead(), zap.NewNop()).Compose(receiptcard.Document{
		Number: 7, DonorName: "Ramesh", Amount: 251, PaymentMode: "UPI",
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if _, err := r.Rasterize(context.Background(), card); err != nil {
		t.Errorf("Rasterize() error = %v", err)
	}
}

func TestLoadLogoMissing(t *testing.T) {
	if logo := LoadLogo(&config.ReceiptConfig{LogoPath: "/nonexistent.png"}, zap.NewNop()); logo != nil {
		t.Error("expected nil logo")
	}
	if logo := LoadLogo(&config.ReceiptConfig{}, zap.NewNop()); logo != nil {
		t.Error("expected nil logo")
	}
}
