package gujarati

import (
	"strings"
	"unicode/utf8"
)

const virama = "્"

type consonantRule struct {
	latin    string
	gujarati string
}

type vowelRule struct {
	latin       string
	independent string
	sign        string
}

// Rules are matched longest-first; within a length the table order decides.
var consonantRules = []consonantRule{
	{"ksh", "ક્ષ"},
	{"chh", "છ"},
	{"kh", "ખ"},
	{"gh", "ઘ"},
	{"ch", "ચ"},
	{"jh", "ઝ"},
	{"th", "થ"},
	{"dh", "ધ"},
	{"ph", "ફ"},
	{"bh", "ભ"},
	{"sh", "શ"},
	{"k", "ક"},
	{"g", "ગ"},
	{"c", "ક"},
	{"j", "જ"},
	{"t", "ત"},
	{"d", "દ"},
	{"n", "ન"},
	{"p", "પ"},
	{"b", "બ"},
	{"m", "મ"},
	{"y", "ય"},
	{"r", "ર"},
	{"l", "લ"},
	{"v", "વ"},
	{"w", "વ"},
	{"s", "સ"},
	{"h", "હ"},
	{"f", "ફ"},
	{"z", "ઝ"},
	{"q", "ક"},
	{"x", "ક્સ"},
}

// A vowel at the start of a word or after another vowel is written as an
// independent letter; after a consonant it becomes a sign. The short "a" is
// inherent in the consonant and has no sign.
var vowelRules = []vowelRule{
	{"aa", "આ", "ા"},
	{"ai", "ઐ", "ૈ"},
	{"au", "ઔ", "ૌ"},
	{"ou", "ઔ", "ૌ"},
	{"ee", "ઈ", "ી"},
	{"ii", "ઈ", "ી"},
	{"oo", "ઊ", "ૂ"},
	{"uu", "ઊ", "ૂ"},
	{"a", "અ", ""},
	{"i", "ઇ", "િ"},
	{"u", "ઉ", "ુ"},
	{"e", "એ", "ે"},
	{"o", "ઓ", "ો"},
}

// PhoneticRules is the fallback Strategy: a left-to-right scan of the word
// against the consonant and vowel tables. Adjacent consonants are joined with
// a virama into a conjunct; characters outside both tables are copied as is.
// It always resolves non-empty words.
type PhoneticRules struct{}

func (PhoneticRules) Resolve(word string) (string, bool) {
	if word == "" {
		return "", false
	}

	var b strings.Builder
	afterConsonant := false
	for i := 0; i < len(word); {
		rest := word[i:]
		if c, ok := matchConsonant(rest); ok {
			if afterConsonant {
				b.WriteString(virama)
			}
			b.WriteString(c.gujarati)
			afterConsonant = true
			i += len(c.latin)
			continue
		}
		if v, ok := matchVowel(rest); ok {
			if afterConsonant {
				b.WriteString(v.sign)
			} else {
				b.WriteString(v.independent)
			}
			afterConsonant = false
			i += len(v.latin)
			continue
		}
		// Not a Latin letter we know: copy one rune.
		_, size := utf8.DecodeRuneInString(rest)
		b.WriteString(rest[:size])
		afterConsonant = false
		i += size
	}
	return b.String(), true
}

func matchConsonant(s string) (consonantRule, bool) {
	for _, c := range consonantRules {
		if strings.HasPrefix(s, c.latin) {
			return c, true
		}
	}
	return consonantRule{}, false
}

func matchVowel(s string) (vowelRule, bool) {
	for _, v := range vowelRules {
		if strings.HasPrefix(s, v.latin) {
			return v, true
		}
	}
	return vowelRule{}, false
}
