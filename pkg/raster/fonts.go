package raster

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/aakb/rasid-api/pkg/receiptcard"
)

// gujaratiOTF is GNU Unifont 15.1.05 (SIL OFL 1.1, see fonts/OFL.txt) with
// its placeholder GSUB table removed, which lets the shaper apply Indic
// reordering. It covers the whole Gujarati block plus ₹ and is the last font
// in every chain.
//
//go:embed fonts/unifont-15.1.05-nogsub.otf
var gujaratiOTF []byte

// FontPaths point at TrueType/OpenType files, for example Noto Sans
// Gujarati. Empty styles fall back to Regular.
type FontPaths struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

// FontSet holds, per style, an ordered fallback chain of parsed fonts. Text
// is split into runs drawn with the first font in the chain that has a glyph
// for each rune. Fonts are safe for concurrent use.
type FontSet struct {
	chains [4][]*font.Font
}

var goFonts = [4][]byte{
	receiptcard.Regular:    goregular.TTF,
	receiptcard.Bold:       gobold.TTF,
	receiptcard.Italic:     goitalic.TTF,
	receiptcard.BoldItalic: gobolditalic.TTF,
}

// DefaultFontSet uses only the fonts compiled into the binary: the Go fonts
// for Latin text and the embedded Gujarati font for everything else.
func DefaultFontSet() (*FontSet, error) {
	return LoadFontSet(FontPaths{})
}

// LoadFontSet parses the configured files and appends the embedded fonts to
// every chain, so a configured font only needs to cover what it draws best.
func LoadFontSet(paths FontPaths) (*FontSet, error) {
	fs := &FontSet{}
	primary := [4]string{
		receiptcard.Regular:    paths.Regular,
		receiptcard.Bold:       paths.Bold,
		receiptcard.Italic:     paths.Italic,
		receiptcard.BoldItalic: paths.BoldItalic,
	}

	gujarati, err := parseFont(gujaratiOTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded gujarati font: %w", err)
	}

	parsed := map[string]*font.Font{}
	for style := range fs.chains {
		path := primary[style]
		if path == "" {
			path = paths.Regular
		}
		if path != "" {
			f, ok := parsed[path]
			if !ok {
				data, err := os.ReadFile(path)
				if err != nil {
					return nil, fmt.Errorf("read font %s: %w", path, err)
				}
				if f, err = parseFont(data); err != nil {
					return nil, fmt.Errorf("parse font %s: %w", path, err)
				}
				parsed[path] = f
			}
			fs.chains[style] = append(fs.chains[style], f)
		}

		latin, err := parseFont(goFonts[style])
		if err != nil {
			return nil, fmt.Errorf("parse embedded font: %w", err)
		}
		fs.chains[style] = append(fs.chains[style], latin, gujarati)
	}
	return fs, nil
}

func parseFont(data []byte) (*font.Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return face.Font, nil
}

func (fs *FontSet) chain(style receiptcard.FontStyle) []*font.Font {
	if int(style) < 0 || int(style) >= len(fs.chains) {
		style = receiptcard.Regular
	}
	return fs.chains[style]
}

// Missing returns the runes of s that no font in the style's chain can draw.
func (fs *FontSet) Missing(style receiptcard.FontStyle, s string) []rune {
	var missing []rune
	for _, r := range s {
		if r == ' ' {
			continue
		}
		found := false
		for _, f := range fs.chain(style) {
			if _, ok := f.Cmap.Lookup(r); ok {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, r)
		}
	}
	return missing
}
