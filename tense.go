package frlex

import (
	"strings"
)

// TenseLabel is the canonical tense/mood label given to a verb occurrence.
type TenseLabel string

// Fixed tense labels. Labels combining a mood with a detailed tense
// ("Indicative-Present", "Subjunctive-Imperfect", ...) are built by the
// classifier.
const (
	Indicative        TenseLabel = "Indicative"
	Conditional       TenseLabel = "Conditional"
	Subjunctive       TenseLabel = "Subjunctive"
	Imperative        TenseLabel = "Imperative"
	Infinitive        TenseLabel = "Infinitive"
	PastParticiple    TenseLabel = "PastParticiple"
	PresentParticiple TenseLabel = "PresentParticiple"

	IndicativePresent    TenseLabel = "Indicative-Present"
	IndicativeImperfect  TenseLabel = "Indicative-Imperfect"
	IndicativeSimplePast TenseLabel = "Indicative-SimplePast"
	IndicativeFuture     TenseLabel = "Indicative-Future"
	SubjunctivePresent   TenseLabel = "Subjunctive-Present"
	SubjunctiveImperfect TenseLabel = "Subjunctive-Imperfect"
)

const unresolvedPrefix = "Unresolved("

// Unresolved returns the fallback label carrying the raw tag.
func Unresolved(tag string) TenseLabel {
	return TenseLabel(unresolvedPrefix + tag + ")")
}

// IsUnresolved reports whether l is a fallback label.
func (l TenseLabel) IsUnresolved() bool {
	return strings.HasPrefix(string(l), unresolvedPrefix) && strings.HasSuffix(string(l), ")")
}

// Mood returns the mood part of the label ("Indicative" for
// "Indicative-Present").
func (l TenseLabel) Mood() TenseLabel {
	if l.IsUnresolved() {
		return l
	}
	mood, _, _ := strings.Cut(string(l), "-")
	return TenseLabel(mood)
}

var frenchMoods = map[TenseLabel]string{
	Indicative:        "Indicatif",
	Conditional:       "Conditionnel",
	Subjunctive:       "Subjonctif",
	Imperative:        "Impératif",
	Infinitive:        "Infinitif",
	PastParticiple:    "Participe Passé",
	PresentParticiple: "Participe Présent",
}

var frenchTenses = map[string]string{
	"Present":    "Présent",
	"Imperfect":  "Imparfait",
	"SimplePast": "Passé Simple",
	"Future":     "Futur",
}

// French returns the label as a French grammar book would print it, e.g.
// "Indicatif Présent" or "Temps non identifié (VX)".
func (l TenseLabel) French() string {
	if l.IsUnresolved() {
		tag := strings.TrimSuffix(strings.TrimPrefix(string(l), unresolvedPrefix), ")")
		return "Temps non identifié (" + tag + ")"
	}
	mood, detail, hasDetail := strings.Cut(string(l), "-")
	name, ok := frenchMoods[TenseLabel(mood)]
	if !ok {
		return string(l)
	}
	if !hasDetail {
		return name
	}
	if fr, ok := frenchTenses[detail]; ok {
		return name + " " + fr
	}
	return name + " " + detail
}

// TenseClassifier maps a fine tag and a feature bundle to a TenseLabel. It
// holds no mutable state and is safe for concurrent use.
type TenseClassifier struct {
	indicative  map[string]string
	subjunctive map[string]string
}

// NewTenseClassifier creates a classifier using the detailed-tense tables of
// res.
func NewTenseClassifier(res *Resources) *TenseClassifier {
	return &TenseClassifier{
		indicative:  res.indicativeTenses,
		subjunctive: res.subjunctiveTenses,
	}
}

// Classify returns the tense label for a token. Moods are checked before the
// tag heuristics; the tag is only consulted when the morphology carries no
// usable mood. Every input yields a label.
func (c *TenseClassifier) Classify(tag string, morph Features) TenseLabel {
	switch morph.Mood {
	case MoodIndicative:
		return withTense(Indicative, morph.Tense, c.indicative)
	case MoodConditional:
		// All conditional tenses collapse to one label.
		return Conditional
	case MoodSubjunctive:
		return withTense(Subjunctive, morph.Tense, c.subjunctive)
	case MoodImperative:
		return Imperative
	}

	switch {
	case tag == "VINF":
		return Infinitive
	case strings.HasPrefix(tag, "VPP"):
		return PastParticiple
	case strings.HasPrefix(tag, "VPR"):
		return PresentParticiple
	}

	// Composite tags such as "VERB__VPP".
	switch {
	case strings.Contains(tag, "VINF"):
		return Infinitive
	case strings.Contains(tag, "VPP"):
		return PastParticiple
	case strings.Contains(tag, "VPR"):
		return PresentParticiple
	}

	return Unresolved(tag)
}

func withTense(mood TenseLabel, tense string, table map[string]string) TenseLabel {
	if tense == "" {
		return mood
	}
	if detailed, ok := table[tense]; ok {
		return mood + "-" + TenseLabel(detailed)
	}
	return mood + "-" + TenseLabel(tense)
}
