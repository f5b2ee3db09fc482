// Package gujarati formats numbers, amounts, payment modes and personal names
// for bilingual (English/Gujarati) donation receipts.
//
// Every function in this package is pure: no I/O, no shared mutable state,
// and no error returns. Inputs that cannot be formatted degrade to a
// digit-by-digit or pass-through rendering instead of failing.
package gujarati

import (
	"strconv"
	"strings"
	"time"
)

// gujaratiDigits maps ASCII digit values 0-9 to Gujarati digits U+0AE6..U+0AEF.
var gujaratiDigits = [10]rune{'૦', '૧', '૨', '૩', '૪', '૫', '૬', '૭', '૮', '૯'}

// ToGujaratiDigits replaces every ASCII digit in s with the Gujarati digit of
// the same value. Other runes, including separators and padding, are kept.
func ToGujaratiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return gujaratiDigits[r-'0']
		}
		return r
	}, s)
}

// ToGujaratiNumber renders n in base 10 using Gujarati digits.
func ToGujaratiNumber(n int64) string {
	return ToGujaratiDigits(strconv.FormatInt(n, 10))
}

// FormatDate renders t as DD/MM/YYYY in Gujarati digits.
func FormatDate(t time.Time) string {
	return ToGujaratiDigits(t.Format("02/01/2006"))
}

// FromGujaratiDigits is the inverse of ToGujaratiDigits.
func FromGujaratiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '૦' && r <= '૯' {
			return '0' + (r - '૦')
		}
		return r
	}, s)
}
