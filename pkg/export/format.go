package export

import (
	"fmt"
	"regexp"
	"strings"
)

// Format is an output file type.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// ParseFormat accepts png, jpg, jpeg and pdf in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// MIMEType returns the content type for f.
func (f Format) MIMEType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "image/png"
	}
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	pathChars  = strings.NewReplacer("/", "_", "\\", "_")
)

// Filename returns Receipt_<number>_<donor>.<ext> with runs of whitespace in
// the donor name replaced by one underscore.
func Filename(number int64, donor string, f Format) string {
	name := whitespace.ReplaceAllString(strings.TrimSpace(donor), "_")
	return fmt.Sprintf("Receipt_%d_%s.%s", number, pathChars.Replace(name), f)
}

// ShareTitle is the title attached to a shared receipt.
func ShareTitle(number int64) string {
	return fmt.Sprintf("Receipt #%d", number)
}

// ShareText is the caption attached to a shared receipt.
func ShareText(donor string, amount int64) string {
	return fmt.Sprintf("Receipt for %s - ₹%d", donor, amount)
}
