package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aakb/rasid-api/pkg/gujarati"
)

// PaymentMode is how a donation was paid
type PaymentMode string

const (
	PaymentModeCash         PaymentMode = gujarati.ModeCash
	PaymentModeUPI          PaymentMode = gujarati.ModeUPI
	PaymentModeNEFT         PaymentMode = gujarati.ModeNEFT
	PaymentModeCheque       PaymentMode = gujarati.ModeCheque
	PaymentModeBankTransfer PaymentMode = gujarati.ModeBankTransfer
)

// PaymentModes lists the modes offered on the bill form, in display order
var PaymentModes = []PaymentMode{
	PaymentModeCash,
	PaymentModeUPI,
	PaymentModeNEFT,
	PaymentModeCheque,
	PaymentModeBankTransfer,
}

func (m PaymentMode) String() string {
	return string(m)
}

// Label returns the mode as printed on a receipt in lang
func (m PaymentMode) Label(lang gujarati.Language) string {
	return gujarati.PaymentModeLabel(string(m), lang)
}

// ParsePaymentMode matches s against the known modes ignoring case.
// An empty string means cash.
func ParsePaymentMode(s string) (PaymentMode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PaymentModeCash, nil
	}
	for _, m := range PaymentModes {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown payment mode %q", s)
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	mode, err := ParsePaymentMode(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = PaymentModeCash
	case string:
		*m = PaymentMode(v)
	case []byte:
		*m = PaymentMode(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentMode", value)
	}
	return nil
}
