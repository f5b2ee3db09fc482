package gujarati

import (
	"strconv"
	"strings"
)

var englishOnes = [20]string{
	"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var englishTens = [10]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// gujaratiBelow100 holds every number word from 0 to 99. Gujarati compounds
// above twenty are irregular (25 is પચ્ચીસ, not પાંચ+વીસ), so the whole
// range is a lookup instead of tens+units concatenation.
var gujaratiBelow100 = [100]string{
	"શૂન્ય", "એક", "બે", "ત્રણ", "ચાર", "પાંચ", "છ", "સાત", "આઠ", "નવ",
	"દસ", "અગિયાર", "બાર", "તેર", "ચૌદ", "પંદર", "સોળ", "સત્તર", "અઢાર", "ઓગણીસ",
	"વીસ", "એકવીસ", "બાવીસ", "તેવીસ", "ચોવીસ", "પચ્ચીસ", "છવ્વીસ", "સત્તાવીસ", "અઠ્ઠાવીસ", "ઓગણત્રીસ",
	"ત્રીસ", "એકત્રીસ", "બત્રીસ", "તેત્રીસ", "ચોત્રીસ", "પાંત્રીસ", "છત્રીસ", "સાડત્રીસ", "આડત્રીસ", "ઓગણચાલીસ",
	"ચાલીસ", "એકતાલીસ", "બેતાલીસ", "તેતાલીસ", "ચુંમાલીસ", "પિસ્તાલીસ", "છેતાલીસ", "સુડતાલીસ", "અડતાલીસ", "ઓગણપચાસ",
	"પચાસ", "એકાવન", "બાવન", "ત્રેપન", "ચોપન", "પંચાવન", "છપ્પન", "સત્તાવન", "અઠ્ઠાવન", "ઓગણસાઈઠ",
	"સાઈઠ", "એકસઠ", "બાસઠ", "ત્રેસઠ", "ચોસઠ", "પાંસઠ", "છાસઠ", "સડસઠ", "અડસઠ", "અગણોસિત્તેર",
	"સિત્તેર", "એકોતેર", "બોતેર", "તોતેર", "ચુમોતેર", "પંચોતેર", "છોતેર", "સિત્યોતેર", "ઇઠ્યોતેર", "ઓગણએંસી",
	"એંસી", "એક્યાસી", "બ્યાસી", "ત્યાસી", "ચોર્યાસી", "પંચાસી", "છ્યાસી", "સિત્યાસી", "ઈઠ્યાસી", "નેવ્યાસી",
	"નેવું", "એકાણું", "બાણું", "ત્રાણું", "ચોરાણું", "પંચાણું", "છન્નું", "સત્તાણું", "અઠ્ઠાણું", "નવ્વાણું",
}

// Indian numbering scale.
const (
	hundred  int64 = 100
	thousand int64 = 1_000
	lakh     int64 = 1_00_000
	crore    int64 = 1_00_00_000
)

type vocabulary struct {
	below100 func(n int64) string
	scales   [4]scaleWord
}

type scaleWord struct {
	unit int64
	word string
}

var englishVocabulary = vocabulary{
	below100: func(n int64) string {
		if n < 20 {
			return englishOnes[n]
		}
		if n%10 == 0 {
			return englishTens[n/10]
		}
		return englishTens[n/10] + " " + englishOnes[n%10]
	},
	scales: [4]scaleWord{
		{crore, "Crore"},
		{lakh, "Lakh"},
		{thousand, "Thousand"},
		{hundred, "Hundred"},
	},
}

var gujaratiVocabulary = vocabulary{
	below100: func(n int64) string { return gujaratiBelow100[n] },
	scales: [4]scaleWord{
		{crore, "કરોડ"},
		{lakh, "લાખ"},
		{thousand, "હજાર"},
		{hundred, "સો"},
	},
}

func vocabularyFor(lang Language) *vocabulary {
	if lang == Gujarati {
		return &gujaratiVocabulary
	}
	return &englishVocabulary
}

// NumberToWords spells n on the Indian scale (hundred, thousand, lakh, crore)
// in the requested language. Scale clauses whose remainder is zero are
// omitted, so 500 is "Five Hundred" and 100000 is "One Lakh". Counts above
// ninety-nine crore recurse ("One Hundred Crore").
//
// Negative input cannot be spelled and degrades to its numeral form.
func NumberToWords(n int64, lang Language) string {
	if n < 0 {
		if lang == Gujarati {
			return ToGujaratiNumber(n)
		}
		return strconv.FormatInt(n, 10)
	}
	v := vocabularyFor(lang)
	if n < 100 {
		return v.below100(n)
	}
	return strings.Join(v.spell(n, nil), " ")
}

func (v *vocabulary) spell(n int64, out []string) []string {
	for _, s := range v.scales {
		if n < s.unit {
			continue
		}
		q := n / s.unit
		if q < 100 {
			out = append(out, v.below100(q))
		} else {
			out = v.spell(q, out)
		}
		out = append(out, s.word)
		n %= s.unit
	}
	if n > 0 {
		out = append(out, v.below100(n))
	}
	return out
}
