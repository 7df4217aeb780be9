package frlex

import (
	"sort"
	"strings"
)

// MoodUnspecified is the mood recorded for verbs whose annotation has no Mood
// feature.
const MoodUnspecified = "unspecified"

// VerbConfig configures verb analysis
type VerbConfig struct {
	ContextWindow int // Tokens kept on each side of the verb in the excerpt.
}

// DefaultVerbConfig returns standard configuration
func DefaultVerbConfig() VerbConfig {
	return VerbConfig{
		ContextWindow: 10,
	}
}

// VerbAnalyzer extracts verb occurrences and their tenses from annotated
// tokens.
type VerbAnalyzer struct {
	classifier *TenseClassifier
	config     VerbConfig
}

// NewVerbAnalyzer creates a verb analyzer
func NewVerbAnalyzer(res *Resources, config VerbConfig) *VerbAnalyzer {
	if config.ContextWindow < 0 {
		config.ContextWindow = 0
	}
	return &VerbAnalyzer{
		classifier: NewTenseClassifier(res),
		config:     config,
	}
}

// Analyze returns one VerbOccurrence per VERB or AUX token, in token order.
func (va *VerbAnalyzer) Analyze(tokens []Token) []VerbOccurrence {
	verbs := []VerbOccurrence{}
	for i := range tokens {
		tok := &tokens[i]
		if tok.POS != POSVerb && tok.POS != POSAux {
			continue
		}

		mood := tok.Morph.Mood
		if mood == "" {
			mood = MoodUnspecified
		}

		verbs = append(verbs, VerbOccurrence{
			Text:    tok.Text,
			Lemma:   tok.Lemma,
			POS:     tok.POS,
			Tag:     tok.Tag,
			Tense:   va.classifier.Classify(tok.Tag, tok.Morph),
			Mood:    mood,
			Person:  tok.Morph.Person,
			Number:  tok.Morph.Number,
			Voice:   tok.Morph.Voice,
			Context: windowContext(tokens, i, va.config.ContextWindow),
		})
	}
	return verbs
}

// windowContext joins the tokens within window positions of target, with the
// target wrapped in "**". The window ignores sentence boundaries.
func windowContext(tokens []Token, target, window int) string {
	start := target - window
	if start < 0 {
		start = 0
	}
	end := target + window + 1
	if end > len(tokens) {
		end = len(tokens)
	}
	return markedExcerpt(tokens, start, end, target)
}

// markedExcerpt joins tokens[start:end] with single spaces, marking the token
// at position target.
func markedExcerpt(tokens []Token, start, end, target int) string {
	var sb strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			sb.WriteByte(' ')
		}
		if i == target {
			sb.WriteString("**")
			sb.WriteString(tokens[i].Text)
			sb.WriteString("**")
		} else {
			sb.WriteString(tokens[i].Text)
		}
	}
	return sb.String()
}

// LabelCount is the number of items carrying a label.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TenseCounts groups verbs by tense label, sorted by label.
func TenseCounts(verbs []VerbOccurrence) []LabelCount {
	counts := make(map[string]int)
	for _, v := range verbs {
		counts[string(v.Tense)]++
	}
	return sortedCounts(counts)
}

// POSCounts groups lexical items by part of speech, sorted by tag.
func POSCounts(items []LexicalItem) []LabelCount {
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.POS]++
	}
	return sortedCounts(counts)
}

func sortedCounts(counts map[string]int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}
