package gujarati

import (
	"fmt"
	"io"
	"maps"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// OverrideTable maps exact amounts to idiomatic phrases that replace the
// generic spelling ("અગિયાર સો" instead of "એક હજાર એક સો" for 1100).
type OverrideTable map[int64]string

var defaultGujaratiOverrides = OverrideTable{
	100:   "એક સો",
	200:   "બે સો",
	251:   "બે સો એકાવન",
	500:   "પાંચ સો",
	1000:  "એક હજાર",
	1100:  "અગિયાર સો",
	1500:  "પંદર સો",
	2000:  "બે હજાર",
	2500:  "પચ્ચીસ સો",
	5000:  "પાંચ હજાર",
	10000: "દસ હજાર",
	11000: "અગિયાર હજાર",
}

var defaultEnglishOverrides = OverrideTable{
	1100: "Eleven Hundred",
	1500: "Fifteen Hundred",
	2500: "Twenty Five Hundred",
}

// DefaultOverrides returns a fresh copy of the built-in table for lang.
func DefaultOverrides(lang Language) OverrideTable {
	if lang == Gujarati {
		return maps.Clone(defaultGujaratiOverrides)
	}
	return maps.Clone(defaultEnglishOverrides)
}

// AmountToWords spells a whole-rupee amount. An exact match in table wins
// over the generic NumberToWords spelling; a nil table means no overrides.
func AmountToWords(amount int64, lang Language, table OverrideTable) string {
	if phrase, ok := table[amount]; ok && phrase != "" {
		return phrase
	}
	return NumberToWords(amount, lang)
}

// Overrides bundles the per-language override tables.
type Overrides struct {
	English  OverrideTable
	Gujarati OverrideTable
}

// DefaultOverrideSet returns both built-in tables.
func DefaultOverrideSet() Overrides {
	return Overrides{
		English:  DefaultOverrides(English),
		Gujarati: DefaultOverrides(Gujarati),
	}
}

// For returns the table for lang.
func (o Overrides) For(lang Language) OverrideTable {
	if lang == Gujarati {
		return o.Gujarati
	}
	return o.English
}

type overrideFile struct {
	English  map[string]string `toml:"english"`
	Gujarati map[string]string `toml:"gujarati"`
}

// LoadOverrides reads a TOML document of the form
//
//	[gujarati]
//	1100 = "અગિયાર સો"
//
//	[english]
//	1100 = "Eleven Hundred"
//
// and merges it over the built-in tables. An empty phrase removes the
// built-in entry for that amount.
func LoadOverrides(r io.Reader) (Overrides, error) {
	var f overrideFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return Overrides{}, fmt.Errorf("decode override table: %w", err)
	}

	set := DefaultOverrideSet()
	if err := mergeOverrides(set.English, f.English); err != nil {
		return Overrides{}, fmt.Errorf("english: %w", err)
	}
	if err := mergeOverrides(set.Gujarati, f.Gujarati); err != nil {
		return Overrides{}, fmt.Errorf("gujarati: %w", err)
	}
	return set, nil
}

func mergeOverrides(dst OverrideTable, src map[string]string) error {
	for key, phrase := range src {
		amount, err := strconv.ParseInt(strings.TrimSpace(FromGujaratiDigits(key)), 10, 64)
		if err != nil || amount < 0 {
			return fmt.Errorf("invalid amount key %q", key)
		}
		if phrase == "" {
			delete(dst, amount)
			continue
		}
		dst[amount] = phrase
	}
	return nil
}
