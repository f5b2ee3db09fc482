package gujarati

import "strings"

// Language selects the output script for words and labels.
type Language int

const (
	English Language = iota
	Gujarati
)

func (l Language) String() string {
	switch l {
	case Gujarati:
		return "gu"
	default:
		return "en"
	}
}

// ParseLanguage accepts "en"/"english" and "gu"/"gujarati" in any case.
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return English, true
	case "gu", "gujarati":
		return Gujarati, true
	}
	return English, false
}
