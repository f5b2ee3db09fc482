package receiptcard

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// Rect is a rectangle in card pixels (CSS px at pixel ratio 1).
type Rect struct {
	X, Y, W, H float64
}

// Paint is a solid colour or a two-stop linear gradient.
type Paint struct {
	From     color.RGBA
	To       color.RGBA
	Vertical bool
}

// Solid returns a single-colour Paint.
func Solid(c color.RGBA) Paint {
	return Paint{From: c, To: c}
}

// Gradient returns a two-stop gradient running top to bottom.
func Gradient(from, to color.RGBA) Paint {
	return Paint{From: from, To: to, Vertical: true}
}

// At returns the colour at position t in [0,1] along the gradient.
func (p Paint) At(t float64) color.RGBA {
	if p.From == p.To {
		return p.From
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5) }
	return color.RGBA{
		R: mix(p.From.R, p.To.R),
		G: mix(p.From.G, p.To.G),
		B: mix(p.From.B, p.To.B),
		A: mix(p.From.A, p.To.A),
	}
}

// Radii are per-corner radii of a Box.
type Radii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// Uniform returns equal radii on every corner.
func Uniform(r float64) Radii {
	return Radii{r, r, r, r}
}

// FontStyle selects the face used for a Text.
type FontStyle int

const (
	Regular FontStyle = iota
	Bold
	Italic
	BoldItalic
)

// Align anchors a Text horizontally on its X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Element is a node of the card's visual tree.
type Element interface {
	Bounds() Rect
}

// Box is a filled, optionally bordered, rounded rectangle.
type Box struct {
	Rect
	Fill        Paint
	Radius      Radii
	BorderWidth float64
	BorderColor color.RGBA
}

func (b Box) Bounds() Rect { return b.Rect }

// Line is a horizontal or vertical stroke.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          color.RGBA
	Dotted         bool
}

func (l Line) Bounds() Rect {
	x, y := min(l.X1, l.X2), min(l.Y1, l.Y2)
	return Rect{X: x, Y: y, W: max(l.X1, l.X2) - x, H: max(l.Y1, l.Y2) - y + l.Width}
}

// Text is a single line of text. Y is the baseline. A positive MaxWidth asks
// the renderer to shrink the font until the line fits.
type Text struct {
	X, Y     float64
	Content  string
	Size     float64
	Style    FontStyle
	Color    color.RGBA
	Align    Align
	MaxWidth float64
}

func (t Text) Bounds() Rect {
	x := t.X
	switch t.Align {
	case AlignCenter:
		x -= t.MaxWidth / 2
	case AlignRight:
		x -= t.MaxWidth
	}
	return Rect{X: x, Y: t.Y - t.Size, W: t.MaxWidth, H: t.Size * 1.3}
}

// Picture is a raster image scaled into Rect.
type Picture struct {
	Rect
	Image image.Image
}

func (p Picture) Bounds() Rect { return p.Rect }

// ParseHex parses "#rgb" or "#rrggbb" into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
