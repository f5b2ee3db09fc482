package printer

import (
	"context"
	"image"
)

// Spooler prints rendered receipt images on a thermal printer in raster
// mode, so Gujarati text prints exactly as it was drawn.
type Spooler struct {
	printer Printer
	dots    int
}

// NewSpooler creates a spooler for p. dots is the printable width, for
// example Dots58mm or Dots80mm.
func NewSpooler(p Printer, dots int) *Spooler {
	if dots <= 0 {
		dots = Dots80mm
	}
	return &Spooler{printer: p, dots: dots}
}

// Spool dithers img and sends it followed by a partial cut.
func (s *Spooler) Spool(ctx context.Context, img image.Image) error {
	data := NewDocument().
		SetAlign(AlignCenter).
		Raster(Dither(img, s.dots)).
		FeedLines(4).
		PartialCut().
		Bytes()
	return s.printer.Print(ctx, data)
}
