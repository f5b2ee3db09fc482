package gujarati

// Payment modes accepted on a receipt.
const (
	ModeCash         = "Cash"
	ModeUPI          = "UPI"
	ModeNEFT         = "NEFT"
	ModeCheque       = "Cheque"
	ModeBankTransfer = "Bank Transfer"
)

var gujaratiPaymentLabels = map[string]string{
	ModeCash:         "રોકડ",
	ModeUPI:          "યુપીઆઈ",
	ModeNEFT:         "એનઈએફટી",
	ModeCheque:       "ચેક",
	ModeBankTransfer: "બેંક ટ્રાન્સફર",
}

// PaymentModeLabel returns the display label for mode. Unknown modes, and
// every mode in English, are returned unchanged.
func PaymentModeLabel(mode string, lang Language) string {
	if lang != Gujarati {
		return mode
	}
	if label, ok := gujaratiPaymentLabels[mode]; ok {
		return label
	}
	return mode
}
