// Package pdfpage places a single raster image on a PDF page.
package pdfpage

import (
	"errors"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Page is a page size in millimetres.
type Page struct {
	Width  float64
	Height float64
}

// A4Landscape is 297 x 210 mm.
var A4Landscape = Page{Width: 297, Height: 210}

// DefaultMargin is the blank border kept on every side, in millimetres.
const DefaultMargin = 15.0

// Rect is a rectangle on the page in millimetres from the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

var ErrInvalidImage = errors.New("image dimensions must be positive")

// FitRect scales an imgW x imgH image to fill the page area inside margin
// while keeping its aspect ratio, then centres it on the page. The image is
// fitted to the available width first; if that makes it too tall it is
// fitted to the available height instead.
func FitRect(imgW, imgH int, page Page, margin float64) (Rect, error) {
	if imgW <= 0 || imgH <= 0 {
		return Rect{}, ErrInvalidImage
	}
	maxW := page.Width - 2*margin
	maxH := page.Height - 2*margin
	if maxW <= 0 || maxH <= 0 {
		return Rect{}, fmt.Errorf("margin %.1fmm leaves no room on a %.0fx%.0fmm page", margin, page.Width, page.Height)
	}

	ratio := float64(imgH) / float64(imgW)
	w, h := maxW, maxW*ratio
	if h > maxH {
		h = maxH
		w = maxH / ratio
	}
	return Rect{
		X: (page.Width - w) / 2,
		Y: (page.Height - h) / 2,
		W: w,
		H: h,
	}, nil
}

// Writer wraps PNG or JPEG images into single-page A4 landscape documents.
type Writer struct {
	margin float64
}

// NewWriter returns a Writer keeping margin millimetres free on every side.
// Non-positive values use DefaultMargin.
func NewWriter(margin float64) *Writer {
	if margin <= 0 {
		margin = DefaultMargin
	}
	return &Writer{margin: margin}
}

// Margin returns the configured margin in millimetres.
func (w *Writer) Margin() float64 {
	return w.margin
}

// Wrap returns PDF bytes with the image (pixel size imgW x imgH) placed at
// FitRect. jpeg selects the JPEG decoder for data instead of PNG.
func (w *Writer) Wrap(data []byte, imgW, imgH int, jpeg bool) ([]byte, error) {
	r, err := FitRect(imgW, imgH, A4Landscape, w.margin)
	if err != nil {
		return nil, err
	}

	// The page margins are set to the fitted rectangle so the single row
	// spans exactly r. Half a millimetre of slack keeps the row on page one.
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(r.X).
		WithTopMargin(r.Y).
		WithRightMargin(A4Landscape.Width - r.X - r.W).
		WithBottomMargin(A4Landscape.Height - r.Y - r.H - 0.5).
		Build()

	ext := extension.Png
	if jpeg {
		ext = extension.Jpg
	}

	m := maroto.New(cfg)
	m.AddRow(r.H,
		col.New(12).Add(
			image.NewFromBytes(data, ext, props.Rect{
				Center:  true,
				Percent: 100,
			}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
