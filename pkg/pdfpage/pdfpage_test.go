package pdfpage

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestFitRect(t *testing.T) {
	tests := []struct {
		name       string
		imgW, imgH int
		want       Rect
	}{
		// 580x380 card at 3x: width-bound (267 wide, 174.93 tall).
		{"receipt card", 1740, 1140, Rect{X: 15, Y: (210 - 267*1140.0/1740) / 2, W: 267, H: 267 * 1140.0 / 1740}},
		// Tall image: height-bound.
		{"portrait", 1000, 2000, Rect{X: (297 - 90) / 2.0, Y: 15, W: 90, H: 180}},
		// Exactly the available aspect ratio fills the box.
		{"exact", 267, 180, Rect{X: 15, Y: 15, W: 267, H: 180}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FitRect(tt.imgW, tt.imgH, A4Landscape, DefaultMargin)
			if err != nil {
				t.Fatalf("FitRect() error = %v", err)
			}
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) || !near(got.W, tt.want.W) || !near(got.H, tt.want.H) {
				t.Errorf("FitRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFitRectInvariants(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1740, 1140}, {300, 4000}, {5000, 20}, {1234, 987}} {
		r, err := FitRect(size[0], size[1], A4Landscape, DefaultMargin)
		if err != nil {
			t.Fatalf("FitRect(%v) error = %v", size, err)
		}
		if r.X < DefaultMargin-1e-9 || r.Y < DefaultMargin-1e-9 ||
			r.X+r.W > A4Landscape.Width-DefaultMargin+1e-9 || r.Y+r.H > A4Landscape.Height-DefaultMargin+1e-9 {
			t.Errorf("FitRect(%v) = %+v escapes the margins", size, r)
		}
		if !near(r.X, A4Landscape.Width-r.X-r.W) || !near(r.Y, A4Landscape.Height-r.Y-r.H) {
			t.Errorf("FitRect(%v) = %+v is not centred", size, r)
		}
		if !near(r.W/r.H, float64(size[0])/float64(size[1])) {
			t.Errorf("FitRect(%v) = %+v changes the aspect ratio", size, r)
		}
		if !near(r.W, A4Landscape.Width-2*DefaultMargin) && !near(r.H, A4Landscape.Height-2*DefaultMargin) {
			t.Errorf("FitRect(%v) = %+v touches neither bound", size, r)
		}
	}
}

func TestFitRectRejectsBadInput(t *testing.T) {
	if _, err := FitRect(0, 10, A4Landscape, DefaultMargin); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("FitRect(0x10) error = %v, want ErrInvalidImage", err)
	}
	if _, err := FitRect(10, 10, A4Landscape, 200); err == nil {
		t.Error("FitRect with oversized margin error = nil")
	}
}

func TestWrap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 58, 38))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}

	pdf, err := NewWriter(0).Wrap(buf.Bytes(), 58, 38, false)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("Wrap() output does not start with a PDF header: %q", pdf[:min(len(pdf), 8)])
	}
}
