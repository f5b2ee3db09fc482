package printer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
)

type recordingPrinter struct {
	data []byte
}

func (p *recordingPrinter) Print(_ context.Context, data []byte) error {
	p.data = append([]byte(nil), data...)
	return nil
}
func (p *recordingPrinter) Close() error      { return nil }
func (p *recordingPrinter) IsConnected() bool { return true }

func halfBlack(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if y < h/2 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestDitherPortraitKeepsOrientation(t *testing.T) {
	bits := Dither(halfBlack(100, 200), 50)
	if bits.Width != 50 || bits.Height != 100 {
		t.Fatalf("size = %dx%d, want 50x100", bits.Width, bits.Height)
	}
	if !bits.Black(25, 10) {
		t.Error("top half should be black")
	}
	if bits.Black(25, 90) {
		t.Error("bottom half should be white")
	}
}

func TestDitherRotatesLandscape(t *testing.T) {
	// Top half black; after a clockwise turn the black half is on the right.
	bits := Dither(halfBlack(200, 100), 50)
	if bits.Width != 50 || bits.Height != 100 {
		t.Fatalf("size = %dx%d, want 50x100", bits.Width, bits.Height)
	}
	if !bits.Black(45, 50) {
		t.Error("right side should be black")
	}
	if bits.Black(5, 50) {
		t.Error("left side should be white")
	}
}

func TestRasterBands(t *testing.T) {
	bits := &Bitmap{Width: 16, Height: rasterBand + 10}
	bits.Data = make([]byte, bits.RowBytes()*bits.Height)
	out := NewDocument().Raster(bits).Bytes()

	header := []byte{GS, 'v', '0', 0}
	if n := bytes.Count(out, header); n != 2 {
		t.Fatalf("got %d raster blocks, want 2", n)
	}
	first := bytes.Index(out, header)
	if out[first+4] != 2 || out[first+6] != 0 || out[first+7] != 1 {
		t.Errorf("first block header = %v", out[first:first+8])
	}
	want := 2 + 2*8 + bits.RowBytes()*bits.Height
	if len(out) != want {
		t.Errorf("len = %d, want %d", len(out), want)
	}
}

func TestSpoolerSendsRasterAndCut(t *testing.T) {
	rec := &recordingPrinter{}
	s := NewSpooler(rec, Dots58mm)
	if err := s.Spool(context.Background(), halfBlack(580, 380)); err != nil {
		t.Fatalf("Spool error = %v", err)
	}
	if !bytes.HasPrefix(rec.data, []byte{ESC, '@'}) {
		t.Error("stream should start with ESC @")
	}
	if !bytes.HasSuffix(rec.data, []byte{GS, 'V', 0x01}) {
		t.Error("stream should end with a partial cut")
	}
	if !bytes.Contains(rec.data, []byte{GS, 'v', '0', 0, Dots58mm / 8, 0}) {
		t.Error("raster block should be 48 bytes wide")
	}
}

func TestNullPrinterIsDisabled(t *testing.T) {
	s := NewSpooler(NewNullPrinter(), 0)
	err := s.Spool(context.Background(), halfBlack(10, 10))
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Spool error = %v, want ErrDisabled", err)
	}
	if s.dots != Dots80mm {
		t.Errorf("default width = %d, want %d", s.dots, Dots80mm)
	}
}

func TestNewPrinterFromConfig(t *testing.T) {
	if _, err := NewPrinterFromConfig("usb", "", ""); err == nil {
		t.Error("usb without path should fail")
	}
	if _, err := NewPrinterFromConfig("network", "", ""); err == nil {
		t.Error("network without address should fail")
	}
	if _, err := NewPrinterFromConfig("serial", "", ""); err == nil {
		t.Error("unknown type should fail")
	}
	if p, err := NewPrinterFromConfig("", "", ""); err != nil || p.IsConnected() {
		t.Errorf("empty type = %v, %v", p, err)
	}
}
