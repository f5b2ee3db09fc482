package receiptcard

// Horizontal content bounds right of the accent band.
const (
	contentLeft  = AccentBandWidth + 18
	contentRight = Width - 18
	valueLeft    = contentLeft + LabelColumnWidth + 8

	bodyTop   = 122
	rowHeight = 30
)

const remarksPlaceholder = "દાન / અર્પણ"

var (
	colorAccentFrom = mustHex("#ff6b35")
	colorAccentTo   = mustHex("#d94f1a")
	colorOrgName    = mustHex("#c2410c")
	colorInk        = mustHex("#1a1a1a")
	colorBody       = mustHex("#333333")
	colorMuted      = mustHex("#555555")
	colorLabel      = mustHex("#666666")
	colorFaint      = mustHex("#888888")
	colorDots       = mustHex("#cccccc")
	colorHeaderRule = mustHex("#fed7aa")
	colorFooterRule = mustHex("#e5e7eb")
	colorBadge      = mustHex("#dc2626")
	colorStrip      = mustHex("#fef3c7")
	colorWhite      = mustHex("#ffffff")
)

type builder struct {
	elements []Element
}

func (b *builder) add(e ...Element) {
	b.elements = append(b.elements, e...)
}

func (b *builder) accentBand() {
	b.add(Box{
		Rect: Rect{X: 0, Y: 0, W: AccentBandWidth, H: Height},
		Fill: Gradient(colorAccentFrom, colorAccentTo),
	})
}

func (b *builder) header(l Letterhead) {
	logo := Rect{X: contentLeft, Y: 14, W: 50, H: 50}
	if l.Logo != nil {
		b.add(Picture{Rect: logo, Image: l.Logo})
	} else {
		b.add(Box{Rect: logo, Fill: Gradient(colorAccentFrom, colorAccentTo), Radius: Uniform(25)})
	}

	const textLeft = contentLeft + 60
	const textWidth = 500 - textLeft - 8
	b.add(
		Text{X: textLeft, Y: 34, Content: l.OrgName, Size: 17, Style: Bold, Color: colorOrgName, MaxWidth: textWidth},
		Text{X: textLeft, Y: 50, Content: l.Address, Size: 8, Color: colorMuted, MaxWidth: textWidth},
		Text{X: textLeft, Y: 62, Content: l.ContactLine(), Size: 7, Color: colorLabel, MaxWidth: textWidth},
		Line{X1: contentLeft, Y1: 74, X2: contentRight, Y2: 74, Width: 2, Color: colorHeaderRule},
	)
}

func (b *builder) badge() {
	const x, w = 500, Width - 500
	b.add(
		Box{Rect: Rect{X: x, Y: 0, W: w, H: 46}, Fill: Solid(colorBadge), Radius: Radii{BottomLeft: 12}},
		Text{X: x + w/2, Y: 22, Content: "રસીદ", Size: 14, Style: Bold, Color: colorWhite, Align: AlignCenter},
		Text{X: x + w/2, Y: 37, Content: "દાતા નકલ", Size: 7, Color: colorWhite, Align: AlignCenter},
	)
}

func (b *builder) metadata(f Fields) {
	b.add(
		Box{Rect: Rect{X: contentLeft, Y: 84, W: contentRight - contentLeft, H: 28}, Fill: Solid(colorStrip), Radius: Uniform(6)},
		Text{X: contentLeft + 10, Y: 103, Content: "રસીદ નં.", Size: 13, Style: Bold, Color: colorBody},
		Text{X: contentLeft + 78, Y: 103, Content: f.ReceiptNumber, Size: 13, Style: Bold, Color: colorBadge, MaxWidth: 150},
		Text{X: contentRight - 10, Y: 103, Content: "તારીખ: " + f.Date, Size: 13, Style: Bold, Color: colorBody, Align: AlignRight},
	)
}

type bodyRow struct {
	label string
	value Text
}

func (b *builder) body(f Fields) {
	remarks := Text{Content: f.Remarks, Size: 12, Color: colorInk}
	if remarks.Content == "" {
		remarks = Text{Content: remarksPlaceholder, Size: 12, Style: Italic, Color: colorFaint}
	}

	rows := []bodyRow{
		{"શ્રી/શ્રીમતી:", Text{Content: f.DonorName, Size: 15, Style: Bold, Color: colorInk}},
		{"રૂપિયા (અંકમાં):", Text{Content: f.AmountNumerals, Size: 14, Style: Bold, Color: colorInk}},
		{"રૂપિયા (અક્ષરમાં):", Text{Content: f.AmountWords, Size: 12, Style: BoldItalic, Color: colorBody}},
		{"ચુકવણીની રીત:", Text{Content: f.PaymentMode, Size: 12, Color: colorInk}},
		{"નોંધ / હેતુ:", remarks},
	}

	for i, r := range rows {
		top := float64(bodyTop + i*rowHeight)
		value := r.value
		value.X, value.Y = valueLeft, top+18
		value.MaxWidth = contentRight - valueLeft
		b.add(
			Text{X: contentLeft, Y: top + 18, Content: r.label, Size: 12, Color: colorLabel, MaxWidth: LabelColumnWidth - 4},
			value,
			Line{X1: valueLeft, Y1: top + 24, X2: contentRight, Y2: top + 24, Width: 1, Color: colorDots, Dotted: true},
		)
	}
}

func (b *builder) footer(f Fields) {
	const top = bodyTop + 5*rowHeight + 12
	amountBox := Rect{X: contentLeft, Y: top + 12, W: 170, H: 48}
	b.add(
		Line{X1: contentLeft, Y1: top, X2: contentRight, Y2: top, Width: 2, Color: colorFooterRule},
		Box{Rect: amountBox, Fill: Solid(colorWhite), Radius: Uniform(4), BorderWidth: 3, BorderColor: colorInk},
		Text{
			X: amountBox.X + amountBox.W/2, Y: amountBox.Y + 31,
			Content: f.AmountBoxed, Size: 20, Style: Bold, Color: colorInk,
			Align: AlignCenter, MaxWidth: amountBox.W - 12,
		},
		Text{
			X:        contentRight,
			Y:        top + 36,
			Content:  "* આ કોમ્પ્યુટર જનરેટેડ રસીદ છે, તેથી હસ્તાક્ષરની જરૂર નથી.",
			Size:     8,
			Color:    colorLabel,
			Align:    AlignRight,
			MaxWidth: 330,
		},
		Text{
			X:        contentRight,
			Y:        top + 50,
			Content:  "* This is a computer generated receipt, no signature required.",
			Size:     7,
			Style:    Italic,
			Color:    colorFaint,
			Align:    AlignRight,
			MaxWidth: 330,
		},
	)
}
