package gujarati

import (
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Strategy resolves one lower-cased Latin word to Gujarati script.
// ok is false when the strategy has no answer and the next one should run.
type Strategy interface {
	Resolve(word string) (gujarati string, ok bool)
}

// Transliterator renders Latin-script names in Gujarati by running each
// whitespace-separated word through an ordered list of strategies.
type Transliterator struct {
	strategies []Strategy
}

// NewTransliterator builds a Transliterator that tries strategies in order.
// Words no strategy resolves are kept as typed.
func NewTransliterator(strategies ...Strategy) *Transliterator {
	return &Transliterator{strategies: strategies}
}

var defaultTransliterator = NewTransliterator(DefaultNames(), PhoneticRules{})

// Transliterate converts name with the built-in name dictionary and the
// phonetic rule table.
func Transliterate(name string) string {
	return defaultTransliterator.Transliterate(name)
}

// Transliterate returns name unchanged when it already contains Gujarati
// script. Otherwise words are lower-cased, resolved and joined with single
// spaces.
func (t *Transliterator) Transliterate(name string) string {
	if ContainsGujarati(name) {
		return name
	}

	lower := cases.Lower(language.Und)
	words := strings.Fields(name)
	for i, w := range words {
		w = lower.String(w)
		words[i] = w
		for _, s := range t.strategies {
			if out, ok := s.Resolve(w); ok {
				words[i] = out
				break
			}
		}
	}
	return norm.NFC.String(strings.Join(words, " "))
}

// ContainsGujarati reports whether s has any rune in the Gujarati block.
func ContainsGujarati(s string) bool {
	for _, r := range s {
		if r >= 0x0A80 && r <= 0x0AFF {
			return true
		}
	}
	return false
}

// Dictionary resolves whole words from a fixed table keyed by lower-case
// Latin spelling.
type Dictionary map[string]string

// Resolve looks up a lower-case word. Empty entries count as missing.
func (d Dictionary) Resolve(word string) (string, bool) {
	out, ok := d[word]
	return out, ok && out != ""
}

var commonNames = Dictionary{
	"veer":       "વીર",
	"ram":        "રામ",
	"shyam":      "શ્યામ",
	"krishna":    "કૃષ્ણ",
	"patel":      "પટેલ",
	"shah":       "શાહ",
	"mehta":      "મહેતા",
	"joshi":      "જોશી",
	"desai":      "દેસાઈ",
	"bhatt":      "ભટ્ટ",
	"sharma":     "શર્મા",
	"dave":       "દવે",
	"parikh":     "પરીખ",
	"modi":       "મોદી",
	"gandhi":     "ગાંધી",
	"pandya":     "પંડ્યા",
	"trivedi":    "ત્રિવેદી",
	"raval":      "રાવલ",
	"soni":       "સોની",
	"chauhan":    "ચૌહાણ",
	"rajput":     "રાજપૂત",
	"thakkar":    "ઠક્કર",
	"vyas":       "વ્યાસ",
	"jadeja":     "જાડેજા",
	"gohil":      "ગોહિલ",
	"solanki":    "સોલંકી",
	"vaghela":    "વાઘેલા",
	"thakor":     "ઠાકોર",
	"amin":       "અમીન",
	"barot":      "બારોટ",
	"choksi":     "ચોક્સી",
	"contractor": "કોન્ટ્રાક્ટર",
	"engineer":   "એન્જિનિયર",
	"shri":       "શ્રી",
	"shrimati":   "શ્રીમતી",
	"bhai":       "ભાઈ",
	"ben":        "બેન",
	"kumar":      "કુમાર",
	"bhanushali": "ભાનુશાલી",
}

// DefaultNames returns a copy of the built-in common-name dictionary.
func DefaultNames() Dictionary {
	return maps.Clone(commonNames)
}

// LoadNames reads a flat TOML table of `latin = "ગુજરાતી"` pairs and merges it
// over the built-in dictionary.
func LoadNames(r io.Reader) (Dictionary, error) {
	var entries map[string]string
	if _, err := toml.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode name dictionary: %w", err)
	}
	d := DefaultNames()
	lower := cases.Lower(language.Und)
	for k, v := range entries {
		k = lower.String(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		d[k] = v
	}
	return d, nil
}
