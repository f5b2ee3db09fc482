// Package raster paints a composed receipt card into an RGBA bitmap.
package raster

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/aakb/rasid-api/pkg/receiptcard"
)

// MinPixelRatio is the lowest supported output scale.
const MinPixelRatio = 3

var ErrEmptyCard = errors.New("card has no size")

var gujaratiLang = language.NewLanguage("gu")

// Rasterizer renders cards at a fixed pixel ratio on an opaque background.
// Text is shaped with HarfBuzz so Gujarati vowel signs and conjuncts are
// placed by the font. It is safe for concurrent use; font faces and the
// shaper are created per call.
type Rasterizer struct {
	fonts      *FontSet
	pixelRatio float64
	background color.RGBA
}

// Option customizes a Rasterizer.
type Option func(*Rasterizer)

// WithPixelRatio sets the output scale. Values below MinPixelRatio are raised.
func WithPixelRatio(ratio float64) Option {
	return func(r *Rasterizer) {
		r.pixelRatio = max(ratio, MinPixelRatio)
	}
}

// WithBackground sets the colour under the card. Alpha is forced to opaque.
func WithBackground(c color.RGBA) Option {
	return func(r *Rasterizer) {
		c.A = 0xff
		r.background = c
	}
}

// New creates a Rasterizer drawing text with fonts.
func New(fonts *FontSet, opts ...Option) *Rasterizer {
	r := &Rasterizer{
		fonts:      fonts,
		pixelRatio: MinPixelRatio,
		background: color.RGBA{R: 0xff, G: 0xf8, B: 0xf0, A: 0xff},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PixelRatio returns the output scale.
func (r *Rasterizer) PixelRatio() float64 {
	return r.pixelRatio
}

// Rasterize paints card. The result is card.Width*ratio by card.Height*ratio
// pixels with no transparent pixels.
func (r *Rasterizer) Rasterize(ctx context.Context, card *receiptcard.Card) (*image.RGBA, error) {
	if card == nil || card.Width <= 0 || card.Height <= 0 {
		return nil, ErrEmptyCard
	}

	s := r.pixelRatio
	bounds := image.Rect(0, 0, int(math.Round(float64(card.Width)*s)), int(math.Round(float64(card.Height)*s)))
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(r.background), image.Point{}, draw.Src)

	p := &painter{
		dst:   dst,
		scale: s,
		fonts: r.fonts,
		faces: map[*font.Font]*font.Face{},
	}

	p.fillBox(receiptcard.Box{
		Rect: receiptcard.Rect{W: float64(card.Width), H: float64(card.Height)},
		Fill: card.Background,
	})

	for _, e := range card.Elements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch el := e.(type) {
		case receiptcard.Box:
			p.fillBox(el)
		case receiptcard.Line:
			p.strokeLine(el)
		case receiptcard.Text:
			p.drawText(el)
		case receiptcard.Picture:
			p.drawPicture(el)
		}
	}
	return dst, nil
}

type painter struct {
	dst    *image.RGBA
	scale  float64
	fonts  *FontSet
	faces  map[*font.Font]*font.Face
	shaper shaping.HarfbuzzShaper
	seg    shaping.Segmenter
}

func (p *painter) px(r receiptcard.Rect) receiptcard.Rect {
	return receiptcard.Rect{X: r.X * p.scale, Y: r.Y * p.scale, W: r.W * p.scale, H: r.H * p.scale}
}

func (p *painter) fillBox(b receiptcard.Box) {
	outer := p.px(b.Rect)
	radii := scaleRadii(b.Radius, p.scale)
	if b.BorderWidth <= 0 {
		fillRounded(p.dst, outer, radii, b.Fill)
		return
	}
	bw := b.BorderWidth * p.scale
	fillRounded(p.dst, outer, radii, receiptcard.Solid(b.BorderColor))
	inner := receiptcard.Rect{X: outer.X + bw, Y: outer.Y + bw, W: outer.W - 2*bw, H: outer.H - 2*bw}
	fillRounded(p.dst, inner, insetRadii(radii, bw), b.Fill)
}

func (p *painter) strokeLine(l receiptcard.Line) {
	w := l.Width * p.scale
	paint := receiptcard.Solid(l.Color)
	horizontal := l.Y1 == l.Y2
	x0, x1 := min(l.X1, l.X2)*p.scale, max(l.X1, l.X2)*p.scale
	y0, y1 := min(l.Y1, l.Y2)*p.scale, max(l.Y1, l.Y2)*p.scale

	if !l.Dotted {
		if horizontal {
			fillRounded(p.dst, receiptcard.Rect{X: x0, Y: y0, W: x1 - x0, H: w}, receiptcard.Radii{}, paint)
		} else {
			fillRounded(p.dst, receiptcard.Rect{X: x0, Y: y0, W: w, H: y1 - y0}, receiptcard.Radii{}, paint)
		}
		return
	}

	dot := 1.5 * w
	if horizontal {
		for x := x0; x < x1; x += 2 * dot {
			fillRounded(p.dst, receiptcard.Rect{X: x, Y: y0, W: min(dot, x1-x), H: w}, receiptcard.Radii{}, paint)
		}
		return
	}
	for y := y0; y < y1; y += 2 * dot {
		fillRounded(p.dst, receiptcard.Rect{X: x0, Y: y, W: w, H: min(dot, y1-y)}, receiptcard.Radii{}, paint)
	}
}

func (p *painter) drawPicture(pic receiptcard.Picture) {
	if pic.Image == nil {
		return
	}
	r := p.px(pic.Rect)
	rect := image.Rect(int(r.X), int(r.Y), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
	draw.ApproxBiLinear.Scale(p.dst, rect, pic.Image, pic.Image.Bounds(), draw.Over, nil)
}

func scaleRadii(r receiptcard.Radii, s float64) receiptcard.Radii {
	return receiptcard.Radii{TopLeft: r.TopLeft * s, TopRight: r.TopRight * s, BottomRight: r.BottomRight * s, BottomLeft: r.BottomLeft * s}
}

func insetRadii(r receiptcard.Radii, d float64) receiptcard.Radii {
	return receiptcard.Radii{
		TopLeft:     max(r.TopLeft-d, 0),
		TopRight:    max(r.TopRight-d, 0),
		BottomRight: max(r.BottomRight-d, 0),
		BottomLeft:  max(r.BottomLeft-d, 0),
	}
}

// fillRounded paints the pixels whose centres fall inside r with its corners
// rounded by radii. Vertical gradients are sampled per row.
func fillRounded(dst *image.RGBA, r receiptcard.Rect, radii receiptcard.Radii, paint receiptcard.Paint) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	b := dst.Bounds()
	x0, y0 := max(int(math.Floor(r.X)), b.Min.X), max(int(math.Floor(r.Y)), b.Min.Y)
	x1, y1 := min(int(math.Ceil(r.X+r.W)), b.Max.X), min(int(math.Ceil(r.Y+r.H)), b.Max.Y)

	for y := y0; y < y1; y++ {
		py := float64(y) + 0.5
		if py < r.Y || py > r.Y+r.H {
			continue
		}
		c := paint.At((py - r.Y) / r.H)
		for x := x0; x < x1; x++ {
			px := float64(x) + 0.5
			if px < r.X || px > r.X+r.W || !insideCorners(px, py, r, radii) {
				continue
			}
			if c.A == 0xff {
				dst.SetRGBA(x, y, c)
			} else {
				dst.SetRGBA(x, y, over(dst.RGBAAt(x, y), c))
			}
		}
	}
}

func insideCorners(px, py float64, r receiptcard.Rect, radii receiptcard.Radii) bool {
	check := func(cx, cy, rad float64, inCorner bool) bool {
		if rad <= 0 || !inCorner {
			return true
		}
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= rad*rad
	}
	left, right := r.X, r.X+r.W
	top, bottom := r.Y, r.Y+r.H
	return check(left+radii.TopLeft, top+radii.TopLeft, radii.TopLeft, px < left+radii.TopLeft && py < top+radii.TopLeft) &&
		check(right-radii.TopRight, top+radii.TopRight, radii.TopRight, px > right-radii.TopRight && py < top+radii.TopRight) &&
		check(right-radii.BottomRight, bottom-radii.BottomRight, radii.BottomRight, px > right-radii.BottomRight && py > bottom-radii.BottomRight) &&
		check(left+radii.BottomLeft, bottom-radii.BottomLeft, radii.BottomLeft, px < left+radii.BottomLeft && py > bottom-radii.BottomLeft)
}

func over(dst, src color.RGBA) color.RGBA {
	a := uint32(src.A)
	blend := func(d, s uint8) uint8 { return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255) }
	return color.RGBA{R: blend(dst.R, src.R), G: blend(dst.G, src.G), B: blend(dst.B, src.B), A: 0xff}
}

// drawText shapes t and fills its glyph outlines, shrinking the font when
// MaxWidth would be exceeded.
func (p *painter) drawText(t receiptcard.Text) {
	if t.Content == "" {
		return
	}
	text := []rune(t.Content)
	chain := p.fonts.chain(t.Style)

	size := t.Size * p.scale
	runs := p.shape(text, chain, size)
	width := advance(runs)
	if limit := t.MaxWidth * p.scale; limit > 0 && width > limit {
		size *= limit / width
		runs = p.shape(text, chain, size)
		width = advance(runs)
	}

	x := t.X * p.scale
	switch t.Align {
	case receiptcard.AlignCenter:
		x -= width / 2
	case receiptcard.AlignRight:
		x -= width
	}

	src := image.NewUniform(t.Color)
	baseline := t.Y * p.scale
	for _, run := range runs {
		x = p.drawRun(run, x, baseline, src)
	}
}

// shape splits text into script and font runs and shapes each one. Runs are
// returned in visual order; receipt text is always left to right.
func (p *painter) shape(text []rune, chain []*font.Font, size float64) []shaping.Output {
	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Size:      fixed.Int26_6(math.Round(size * 64)),
		Language:  gujaratiLang,
	}
	inputs := p.seg.Split(input, fontmap{p: p, chain: chain})
	runs := make([]shaping.Output, 0, len(inputs))
	for _, in := range inputs {
		runs = append(runs, p.shaper.Shape(in))
	}
	return runs
}

func advance(runs []shaping.Output) float64 {
	var w fixed.Int26_6
	for _, run := range runs {
		w += run.Advance
	}
	return fromFixed(w)
}

// drawRun fills the glyphs of run starting at pen position x and returns the
// pen position after the last glyph.
func (p *painter) drawRun(run shaping.Output, x, baseline float64, src image.Image) float64 {
	if run.Face == nil {
		return x
	}
	// The shaper scales by the ceiling of the requested size.
	scale := float64(run.Size.Ceil()) / float64(run.Face.Upem())
	for _, g := range run.Glyphs {
		if outline, ok := run.Face.GlyphData(g.GlyphID).(font.GlyphOutline); ok {
			p.fillOutline(outline, x+fromFixed(g.XOffset), baseline-fromFixed(g.YOffset), scale, src)
		}
		x += fromFixed(g.Advance)
	}
	return x
}

// fillOutline rasterizes a glyph outline given in font units, with its
// origin at (x, y) in device pixels. Font units grow upwards.
func (p *painter) fillOutline(o font.GlyphOutline, x, y, scale float64, src image.Image) {
	if len(o.Segments) == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range o.Segments {
		for _, pt := range o.Segments[i].ArgsSlice() {
			px, py := x+float64(pt.X)*scale, y-float64(pt.Y)*scale
			minX, maxX = min(minX, px), max(maxX, px)
			minY, maxY = min(minY, py), max(maxY, py)
		}
	}
	rect := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	if rect.Empty() || !rect.Overlaps(p.dst.Bounds()) {
		return
	}

	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)
	pt := func(sp font.SegmentPoint) (float32, float32) {
		return float32(x + float64(sp.X)*scale - ox), float32(y - float64(sp.Y)*scale - oy)
	}

	z := vector.NewRasterizer(rect.Dx(), rect.Dy())
	open := false
	for _, s := range o.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(s.Args[0]))
			open = true
		case opentype.SegmentOpLineTo:
			z.LineTo(pt(s.Args[0]))
		case opentype.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case opentype.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(p.dst, rect, src, image.Point{}, mask, image.Point{}, draw.Over)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// fontmap resolves each rune to the first font of a style chain with a glyph
// for it. Faces come from the painter so runs sharing a font compare equal.
type fontmap struct {
	p     *painter
	chain []*font.Font
}

func (m fontmap) ResolveFace(r rune) *font.Face {
	for _, f := range m.chain {
		if _, ok := f.Cmap.Lookup(r); ok {
			return m.p.face(f)
		}
	}
	return m.p.face(m.chain[0])
}

// face returns the painter's face for f. Faces cache glyph lookups and are
// not safe for concurrent use, so each Rasterize call has its own.
func (p *painter) face(f *font.Font) *font.Face {
	if face, ok := p.faces[f]; ok {
		return face
	}
	face := font.NewFace(f)
	p.faces[f] = face
	return face
}
