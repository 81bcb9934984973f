package services

import (
	"strings"
	"unicode"
)

// Normalizer canonicalizes raw candidate strings before validation and
// dedup. Stateless; all methods are safe for concurrent use.
type Normalizer struct{}

// NewNormalizer creates a normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// CleanNumber strips separators, parentheses, dots and a leading plus from a
// numeric candidate, leaving digits only.
func (n *Normalizer) CleanNumber(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone reduces a phone candidate to its bare 10-digit national
// form, dropping the 91 country code if present. Returns "" when the result
// is not a plausible mobile number.
func (n *Normalizer) NormalizePhone(value string) string {
	digits := n.CleanNumber(value)
	if (len(digits) == 11 || len(digits) == 12) && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}
	if len(digits) != 10 {
		return ""
	}
	return digits
}

// NormalizeUPI lower-cases a UPI handle.
func (n *Normalizer) NormalizeUPI(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NormalizeEmail lower-cases an email address.
func (n *Normalizer) NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NormalizeIFSC upper-cases an IFSC candidate.
func (n *Normalizer) NormalizeIFSC(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// NormalizeURL trims surrounding whitespace and trailing punctuation that
// sentence context attaches to links.
func (n *Normalizer) NormalizeURL(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), ".,;:!?)")
}

// NormalizeName strips quotes and title-cases a person name.
func (n *Normalizer) NormalizeName(value string) string {
	value = strings.Trim(strings.TrimSpace(value), `'"`)
	return titleCase(value)
}

// NormalizeBankName canonicalizes a gazetteer match: known abbreviations go
// uppercase, full names go title case.
func (n *Normalizer) NormalizeBankName(value string) string {
	value = strings.TrimSpace(value)
	upper := strings.ToUpper(value)
	if bankAbbreviations[upper] {
		return upper
	}
	return titleCase(value)
}

// SpelledDigitsToNumerals converts a run of spelled-out digit words
// ("nine eight seven ...") into the numeral string "987...".
func (n *Normalizer) SpelledDigitsToNumerals(value string) string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == '-' || r == '\t' || r == '\n'
	})
	var b strings.Builder
	for _, f := range fields {
		d, ok := digitWords[strings.ToLower(f)]
		if !ok {
			return ""
		}
		b.WriteString(d)
	}
	return b.String()
}

// titleCase upper-cases the first letter of each space-separated word and
// lower-cases the rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
