package gujarati

import (
	"fmt"
	"testing"
)

func TestNumberToWordsBelowTwenty(t *testing.T) {
	for n := int64(0); n < 20; n++ {
		if got := NumberToWords(n, English); got != englishOnes[n] {
			t.Errorf("NumberToWords(%d, English) = %q, want %q", n, got, englishOnes[n])
		}
		if got := NumberToWords(n, Gujarati); got != gujaratiBelow100[n] {
			t.Errorf("NumberToWords(%d, Gujarati) = %q, want %q", n, got, gujaratiBelow100[n])
		}
	}
}

func TestNumberToWordsRoundHundreds(t *testing.T) {
	for k := int64(1); k <= 9; k++ {
		n := k * 100
		if got, want := NumberToWords(n, English), englishOnes[k]+" Hundred"; got != want {
			t.Errorf("NumberToWords(%d, English) = %q, want %q", n, got, want)
		}
		if got, want := NumberToWords(n, Gujarati), gujaratiBelow100[k]+" સો"; got != want {
			t.Errorf("NumberToWords(%d, Gujarati) = %q, want %q", n, got, want)
		}
	}
}

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		n    int64
		lang Language
		want string
	}{
		{20, English, "Twenty"},
		{21, English, "Twenty One"},
		{42, English, "Forty Two"},
		{99, English, "Ninety Nine"},
		{101, English, "One Hundred One"},
		{1100, English, "One Thousand One Hundred"},
		{3700, English, "Three Thousand Seven Hundred"},
		{100000, English, "One Lakh"},
		{250075, English, "Two Lakh Fifty Thousand Seventy Five"},
		{10000000, English, "One Crore"},
		{123456789, English, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine"},
		{999999999, English, "Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{1000000000, English, "One Hundred Crore"},
		{-5, English, "-5"},

		{21, Gujarati, "એકવીસ"},
		{25, Gujarati, "પચ્ચીસ"},
		{42, Gujarati, "બેતાલીસ"},
		{251, Gujarati, "બે સો એકાવન"},
		{1100, Gujarati, "એક હજાર એક સો"},
		{3700, Gujarati, "ત્રણ હજાર સાત સો"},
		{100000, Gujarati, "એક લાખ"},
		{123456789, Gujarati, "બાર કરોડ ચોત્રીસ લાખ છપ્પન હજાર સાત સો નેવ્યાસી"},
		{-5, Gujarati, "-૫"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.lang, tt.n), func(t *testing.T) {
			if got := NumberToWords(tt.n, tt.lang); got != tt.want {
				t.Errorf("NumberToWords(%d, %s) = %q, want %q", tt.n, tt.lang, got, tt.want)
			}
		})
	}
}

func TestGujaratiTableIsComplete(t *testing.T) {
	seen := make(map[string]int64, len(gujaratiBelow100))
	for n, w := range gujaratiBelow100 {
		if w == "" {
			t.Errorf("gujaratiBelow100[%d] is empty", n)
		}
		if prev, dup := seen[w]; dup {
			t.Errorf("gujaratiBelow100[%d] duplicates [%d]: %q", n, prev, w)
		}
		seen[w] = int64(n)
	}
}
