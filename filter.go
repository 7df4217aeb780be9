package frlex

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minWordRunes is the shortest surface form kept as a content word.
const minWordRunes = 3

var latinLetterRE = regexp.MustCompile(`[a-zA-ZàâäéèêëîïôöùûüÿçÀÂÄÉÈÊËÎÏÔÖÙÛÜŸÇ]`)

// ImportanceFilter decides whether a token is a content word worth counting.
type ImportanceFilter struct {
	res *Resources
}

// NewImportanceFilter creates a filter backed by res.
func NewImportanceFilter(res *Resources) *ImportanceFilter {
	return &ImportanceFilter{res: res}
}

// IsEligible reports whether tok is a content word: not a stopword, not
// punctuation, at least three characters, not a number, of a content POS and
// containing at least one Latin letter.
func (f *ImportanceFilter) IsEligible(tok Token) bool {
	switch tok.POS {
	case POSPunct, POSSpace, POSSym:
		return false
	}
	if tok.IsPunct || tok.IsSpace {
		return false
	}
	if !f.res.IsContentPOS(tok.POS) {
		return false
	}
	if utf8.RuneCountInString(tok.Text) < minWordRunes {
		return false
	}
	if f.res.IsStopWord(tok.Lemma) {
		return false
	}
	if f.likeNumber(tok.Text) || isDigits(tok.Text) {
		return false
	}
	return latinLetterRE.MatchString(tok.Text)
}

// likeNumber recognizes numerals: signed or punctuated digit strings
// ("-1.234,5"), simple fractions ("3/4") and French number words.
func (f *ImportanceFilter) likeNumber(text string) bool {
	if text == "" {
		return false
	}
	for _, sign := range []string{"+", "-", "±", "~"} {
		if strings.HasPrefix(text, sign) {
			text = text[len(sign):]
			break
		}
	}
	stripped := strings.NewReplacer(",", "", ".", "").Replace(text)
	if isDigits(stripped) {
		return true
	}
	if num, denom, ok := strings.Cut(text, "/"); ok && !strings.Contains(denom, "/") {
		if isDigits(num) && isDigits(denom) {
			return true
		}
	}
	return f.res.isNumberWord(foldLemma(text))
}

// isDigits reports whether s is a non-empty run of decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
