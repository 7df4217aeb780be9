package frlex

import (
	"regexp"
	"strings"
	"unicode"
)

// Language is an ISO 639-1 language code.
type Language string

// Languages the detector can tell apart.
const (
	French  Language = "fr"
	English Language = "en"
	Spanish Language = "es"
	German  Language = "de"
)

var detectedLanguages = []Language{French, English, Spanish, German}

// LanguageDetector estimates the language of a text from function words,
// letter trigrams and characteristic letters. It only needs to be good
// enough to warn when a text is clearly not French.
type LanguageDetector struct {
	patterns map[Language]*regexp.Regexp
	ngrams   map[Language]map[string]float64
}

// NewLanguageDetector creates a new language detector
func NewLanguageDetector() *LanguageDetector {
	return &LanguageDetector{
		patterns: map[Language]*regexp.Regexp{
			French:  regexp.MustCompile(`\b(le|la|les|et|un|une|il|elle|est|des|du|que|pour|dans|ce|son|qui|pas|avec|sur)\b`),
			English: regexp.MustCompile(`\b(the|and|that|have|for|not|with|you|this|but|his|from|they|was|are)\b`),
			Spanish: regexp.MustCompile(`\b(el|los|las|es|por|con|como|para|pero|muy|está|y|del|se)\b`),
			German:  regexp.MustCompile(`\b(der|die|und|den|von|zu|das|mit|sich|des|auf|für|ist|im|dem|nicht)\b`),
		},
		ngrams: map[Language]map[string]float64{
			French: {
				"les": 0.10, "ent": 0.08, "ion": 0.07, "des": 0.06, "que": 0.05,
				"ait": 0.04, "lle": 0.04, "eur": 0.04, "our": 0.03, "ant": 0.03,
			},
			English: {
				"the": 0.15, "and": 0.08, "ing": 0.06, "ion": 0.05, "tio": 0.04,
				"ent": 0.03, "ati": 0.03, "for": 0.03, "her": 0.03, "ter": 0.03,
			},
			Spanish: {
				"que": 0.12, "ión": 0.08, "ado": 0.06, "con": 0.05, "ent": 0.04,
				"par": 0.04, "est": 0.04, "ara": 0.03, "del": 0.03, "los": 0.03,
			},
			German: {
				"der": 0.12, "und": 0.08, "die": 0.07, "ung": 0.06, "ich": 0.05,
				"ein": 0.04, "sch": 0.04, "den": 0.04, "cht": 0.03, "das": 0.03,
			},
		},
	}
}

// DetectLanguage returns the most likely language of text and the share of
// the total evidence that language collected.
func (ld *LanguageDetector) DetectLanguage(text string) (Language, float64) {
	scores := ld.scores(text)
	if scores == nil {
		return French, 0
	}

	best, bestScore, total := French, 0.0, 0.0
	for _, lang := range detectedLanguages {
		total += scores[lang]
		if scores[lang] > bestScore {
			best, bestScore = lang, scores[lang]
		}
	}
	if total == 0 {
		return French, 0
	}
	return best, bestScore / total
}

// FrenchConfidence returns the share of the evidence pointing to French, in
// [0, 1]. Texts too short to judge score 0.
func (ld *LanguageDetector) FrenchConfidence(text string) float64 {
	scores := ld.scores(text)
	total := 0.0
	for _, lang := range detectedLanguages {
		total += scores[lang]
	}
	if total == 0 {
		return 0
	}
	return roundScore(scores[French] / total)
}

// scores collects evidence per language. It returns nil for texts shorter
// than ten bytes.
func (ld *LanguageDetector) scores(text string) map[Language]float64 {
	if len(text) < 10 {
		return nil
	}
	text = foldLemma(text)
	scores := make(map[Language]float64, len(detectedLanguages))

	for lang, pattern := range ld.patterns {
		scores[lang] += float64(len(pattern.FindAllString(text, -1))) * 0.1
	}

	trigrams := extractTrigrams(text)
	for lang, freqs := range ld.ngrams {
		for trigram, freq := range trigrams {
			if expected, ok := freqs[trigram]; ok {
				scores[lang] += freq * expected
			}
		}
	}

	for lang, score := range scoreByCharacterFrequency(text) {
		scores[lang] += score
	}
	return scores
}

// extractTrigrams returns the relative frequency of every all-letter trigram
// of text.
func extractTrigrams(text string) map[string]float64 {
	trigrams := make(map[string]float64)
	total := 0

	runes := []rune(text)
	for i := 0; i+3 <= len(runes); i++ {
		if !allLetters(runes[i : i+3]) {
			continue
		}
		trigrams[string(runes[i:i+3])]++
		total++
	}
	for trigram := range trigrams {
		trigrams[trigram] /= float64(total)
	}
	return trigrams
}

func allLetters(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// scoreByCharacterFrequency rewards letters that are typical of one
// language.
func scoreByCharacterFrequency(text string) map[Language]float64 {
	scores := make(map[Language]float64)

	counts := make(map[rune]int)
	total := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			counts[r]++
			total++
		}
	}

	for char, count := range counts {
		freq := float64(count) / float64(total)
		switch {
		case strings.ContainsRune("çèêëîïœ", char):
			scores[French] += freq * 8
		case char == 'é' || char == 'à' || char == 'ù' || char == 'û' || char == 'ô':
			scores[French] += freq * 4
		case char == 'ñ':
			scores[Spanish] += freq * 10
		case strings.ContainsRune("üöäß", char):
			scores[German] += freq * 8
		case char == 'w':
			scores[English] += freq * 3
			scores[German] += freq * 2
		case char == 'k':
			scores[German] += freq * 2
			scores[English] += freq * 1
		}
	}
	return scores
}
