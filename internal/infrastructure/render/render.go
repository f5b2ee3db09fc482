// Package render builds the receipt composer and rasterizer from
// configuration. Optional files that are missing or invalid are logged and
// replaced by the built-in defaults.
package render

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/aakb/rasid-api/internal/config"
	"github.com/aakb/rasid-api/pkg/gujarati"
	"github.com/aakb/rasid-api/pkg/pdfpage"
	"github.com/aakb/rasid-api/pkg/raster"
	"github.com/aakb/rasid-api/pkg/receiptcard"
	"go.uber.org/zap"
)

// Options returns the composer options for the configured override and
// name tables.
func Options(cfg *config.ReceiptConfig, log *zap.Logger) []receiptcard.Option {
	var opts []receiptcard.Option

	if cfg.OverridesPath != "" {
		overrides, err := loadFile(cfg.OverridesPath, gujarati.LoadOverrides)
		if err != nil {
			log.Warn("Using built-in amount overrides", zap.Error(err))
		} else {
			opts = append(opts, receiptcard.WithOverrides(overrides))
		}
	}

	if cfg.NamesPath != "" {
		names, err := loadFile(cfg.NamesPath, gujarati.LoadNames)
		if err != nil {
			log.Warn("Using built-in name dictionary", zap.Error(err))
		} else {
			opts = append(opts, receiptcard.WithTransliterator(
				gujarati.NewTransliterator(names, gujarati.PhoneticRules{}),
			))
		}
	}

	return opts
}

// NewComposer returns a composer printing letterhead
func NewComposer(cfg *config.ReceiptConfig, letterhead receiptcard.Letterhead, log *zap.Logger) *receiptcard.Composer {
	return receiptcard.NewComposer(letterhead, Options(cfg, log)...)
}

// NewRasterizer loads the configured fonts and returns a rasterizer. The
// embedded Latin and Gujarati fonts back every configured font.
func NewRasterizer(cfg *config.ReceiptConfig, log *zap.Logger) (*raster.Rasterizer, error) {
	fonts, err := raster.LoadFontSet(raster.FontPaths{
		Regular:    cfg.FontRegular,
		Bold:       cfg.FontBold,
		Italic:     cfg.FontItalic,
		BoldItalic: cfg.FontBoldItalic,
	})
	if err != nil {
		log.Warn("Falling back to embedded fonts", zap.Error(err))
		if fonts, err = raster.DefaultFontSet(); err != nil {
			return nil, err
		}
	}

	opts := []raster.Option{}
	if cfg.PixelRatio > 0 {
		opts = append(opts, raster.WithPixelRatio(cfg.PixelRatio))
	}
	if cfg.Background != "" {
		bg, err := receiptcard.ParseHex(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("receipt background: %w", err)
		}
		opts = append(opts, raster.WithBackground(bg))
	}
	return raster.New(fonts, opts...), nil
}

// NewPDFWriter returns the PDF wrapper with the configured page margin
func NewPDFWriter(cfg *config.ReceiptConfig, log *zap.Logger) *pdfpage.Writer {
	w := pdfpage.NewWriter(cfg.PDFMargin)
	if cfg.PDFMargin != 0 && w.Margin() != cfg.PDFMargin {
		log.Warn("Invalid PDF margin, using default",
			zap.Float64("configured_mm", cfg.PDFMargin),
			zap.Float64("margin_mm", w.Margin()))
	}
	return w
}

// LoadLogo reads the letterhead logo. It returns nil when none is configured
// or the file cannot be decoded.
func LoadLogo(cfg *config.ReceiptConfig, log *zap.Logger) image.Image {
	if cfg.LogoPath == "" {
		return nil
	}
	logo, err := raster.LoadImage(cfg.LogoPath)
	if err != nil {
		log.Warn("Receipt logo not loaded", zap.String("path", cfg.LogoPath), zap.Error(err))
		return nil
	}
	return logo
}

func loadFile[T any](path string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	v, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
