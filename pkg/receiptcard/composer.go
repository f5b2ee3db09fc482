// Package receiptcard lays out a donation receipt as a fixed-size tree of
// boxes, lines, text runs and pictures. It performs no drawing and no I/O;
// all numeral, date and word formatting is delegated to pkg/gujarati.
package receiptcard

import (
	"errors"
	"image"
	"strings"
	"time"

	"github.com/aakb/rasid-api/pkg/gujarati"
)

// Card geometry in CSS pixels.
const (
	Width            = 580
	Height           = 380
	AccentBandWidth  = 20
	LabelColumnWidth = 140
)

var (
	ErrInvalidNumber  = errors.New("receipt number must be positive")
	ErrNegativeAmount = errors.New("receipt amount must not be negative")
)

// Document is the immutable input to Compose.
type Document struct {
	Number      int64
	DonorName   string
	Amount      int64
	Date        time.Time
	PaymentMode string
	Remarks     string
	IssuedBy    string
}

// Validate checks the invariants the layout relies on.
func (d Document) Validate() error {
	if d.Number <= 0 {
		return ErrInvalidNumber
	}
	if d.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Letterhead is the organization block printed in the header.
type Letterhead struct {
	OrgName string
	Address string
	Phone   string
	Email   string
	Website string
	Logo    image.Image
}

// DefaultLetterhead returns the letterhead used when settings are empty.
func DefaultLetterhead() Letterhead {
	return Letterhead{
		OrgName: "આર્ષ અધ્યયન કેન્દ્ર, ભુજ",
		Address: "આર્ષ કુટીર, ૨૪૪, ઓધવ બાગ ૨ રોડ, મધાપર, ગુજરાત ૩૭૦૦૨૦",
		Phone:   "94848 32029",
		Email:   "ashram@aakb.org.in",
		Website: "www.aakb.org.in",
	}
}

// ContactLine joins phone, email and website with bullets. The phone number
// is written in Gujarati digits.
func (l Letterhead) ContactLine() string {
	var parts []string
	if l.Phone != "" {
		parts = append(parts, gujarati.ToGujaratiDigits(l.Phone))
	}
	if l.Email != "" {
		parts = append(parts, l.Email)
	}
	if l.Website != "" {
		parts = append(parts, l.Website)
	}
	return strings.Join(parts, " • ")
}

// Fields are the formatted strings placed on the card.
type Fields struct {
	ReceiptNumber      string `json:"receipt_number"`
	Date               string `json:"date"`
	DonorName          string `json:"donor_name"`
	AmountNumerals     string `json:"amount_numerals"`
	AmountBoxed        string `json:"amount_boxed"`
	AmountWords        string `json:"amount_words"`
	AmountWordsEnglish string `json:"amount_words_english"`
	PaymentMode        string `json:"payment_mode"`
	Remarks            string `json:"remarks"`
}

// Card is the composed visual tree.
type Card struct {
	Width      int
	Height     int
	Background Paint
	Elements   []Element
	Fields     Fields
}

// Composer builds Cards for one letterhead.
type Composer struct {
	letterhead     Letterhead
	overrides      gujarati.Overrides
	transliterator *gujarati.Transliterator
}

// Option customizes a Composer.
type Option func(*Composer)

// WithOverrides replaces the built-in amount phrase tables.
func WithOverrides(o gujarati.Overrides) Option {
	return func(c *Composer) { c.overrides = o }
}

// WithTransliterator replaces the default name transliterator.
func WithTransliterator(t *gujarati.Transliterator) Option {
	return func(c *Composer) { c.transliterator = t }
}

// NewComposer creates a Composer for letterhead.
func NewComposer(letterhead Letterhead, opts ...Option) *Composer {
	c := &Composer{
		letterhead:     letterhead,
		overrides:      gujarati.DefaultOverrideSet(),
		transliterator: gujarati.NewTransliterator(gujarati.DefaultNames(), gujarati.PhoneticRules{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithLetterhead returns a copy of c that prints letterhead instead.
func (c *Composer) WithLetterhead(letterhead Letterhead) *Composer {
	cp := *c
	cp.letterhead = letterhead
	return &cp
}

// Format computes every display string for doc. Amount words and numerals
// are recomputed on each call.
func (c *Composer) Format(doc Document) Fields {
	numerals := gujarati.ToGujaratiNumber(doc.Amount)
	return Fields{
		ReceiptNumber:      gujarati.ToGujaratiNumber(doc.Number),
		Date:               gujarati.FormatDate(doc.Date),
		DonorName:          c.transliterator.Transliterate(doc.DonorName),
		AmountNumerals:     "₹ " + numerals + "/-",
		AmountBoxed:        "રૂ. " + numerals + "/-",
		AmountWords:        gujarati.AmountToWords(doc.Amount, gujarati.Gujarati, c.overrides.For(gujarati.Gujarati)) + " રૂપિયા માત્ર",
		AmountWordsEnglish: gujarati.AmountToWords(doc.Amount, gujarati.English, c.overrides.For(gujarati.English)) + " Rupees Only",
		PaymentMode:        gujarati.PaymentModeLabel(doc.PaymentMode, gujarati.Gujarati),
		Remarks:            strings.TrimSpace(doc.Remarks),
	}
}

// Compose lays out doc on a Width x Height card.
func (c *Composer) Compose(doc Document) (*Card, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	f := c.Format(doc)
	card := &Card{
		Width:      Width,
		Height:     Height,
		Background: Gradient(mustHex("#fffef7"), mustHex("#fff8f0")),
		Fields:     f,
	}

	b := &builder{}
	b.accentBand()
	b.header(c.letterhead)
	b.badge()
	b.metadata(f)
	b.body(f)
	b.footer(f)
	card.Elements = b.elements
	return card, nil
}
