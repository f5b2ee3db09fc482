package printer

import (
	"bytes"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Common print widths in dots.
const (
	Dots58mm = 384
	Dots80mm = 576
)

// rasterBand is the number of rows sent per GS v 0 command. Many printers
// cap the height of a single raster block.
const rasterBand = 256

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf bytes.Buffer
}

// NewDocument creates a new ESC/POS document.
func NewDocument() *Document {
	d := &Document{}
	d.Init()
	return d
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// Raster prints a 1-bit image with GS v 0. Set bits are black. Each row of
// bits is packed MSB first and padded to whole bytes.
func (d *Document) Raster(bits *Bitmap) *Document {
	rowBytes := bits.RowBytes()
	for y0 := 0; y0 < bits.Height; y0 += rasterBand {
		rows := bits.Height - y0
		if rows > rasterBand {
			rows = rasterBand
		}
		d.buf.Write([]byte{
			GS, 'v', '0', 0,
			byte(rowBytes), byte(rowBytes >> 8),
			byte(rows), byte(rows >> 8),
		})
		d.buf.Write(bits.Data[y0*rowBytes : (y0+rows)*rowBytes])
	}
	return d
}

// Cut sends the paper cut command (full cut).
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Bitmap is a packed 1-bit image.
type Bitmap struct {
	Width  int
	Height int
	Data   []byte
}

// RowBytes is the packed length of one row.
func (b *Bitmap) RowBytes() int {
	return (b.Width + 7) / 8
}

// Black reports whether the dot at x, y is set.
func (b *Bitmap) Black(x, y int) bool {
	return b.Data[y*b.RowBytes()+x/8]&(0x80>>(x%8)) != 0
}

func (b *Bitmap) set(x, y int) {
	b.Data[y*b.RowBytes()+x/8] |= 0x80 >> (x % 8)
}

// Dither scales img to width dots, rotating landscape images a quarter
// turn so the long side runs along the paper, and reduces it to black and
// white with Floyd-Steinberg error diffusion.
func Dither(img image.Image, width int) *Bitmap {
	if width <= 0 {
		width = Dots80mm
	}
	src := img
	if b := img.Bounds(); b.Dx() > b.Dy() {
		src = rotate90(img)
	}

	sb := src.Bounds()
	height := sb.Dy() * width / sb.Dx()
	if height < 1 {
		height = 1
	}
	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(gray, gray.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(gray, gray.Bounds(), src, sb, draw.Over, nil)

	bits := &Bitmap{Width: width, Height: height}
	bits.Data = make([]byte, bits.RowBytes()*height)

	// Two rows of accumulated error, one cell of padding either side.
	cur := make([]float64, width+2)
	next := make([]float64, width+2)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := float64(gray.GrayAt(x, y).Y) + cur[x+1]
			out := 255.0
			if v < 128 {
				out = 0
				bits.set(x, y)
			}
			e := v - out
			cur[x+2] += e * 7 / 16
			next[x] += e * 3 / 16
			next[x+1] += e * 5 / 16
			next[x+2] += e * 1 / 16
		}
		cur, next = next, cur
		for i := range next {
			next[i] = 0
		}
	}
	return bits
}

// rotate90 turns img clockwise.
func rotate90(img image.Image) image.Image {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.Y-1-y, x-b.Min.X, color.RGBAModel.Convert(img.At(x, y)))
		}
	}
	return out
}
