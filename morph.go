package frlex

import (
	"sort"
	"strings"
)

// Morphological feature names as written by Universal Dependencies taggers.
const (
	FeatMood     = "Mood"
	FeatTense    = "Tense"
	FeatPerson   = "Person"
	FeatNumber   = "Number"
	FeatVoice    = "Voice"
	FeatAspect   = "Aspect"
	FeatVerbForm = "VerbForm"
	FeatGender   = "Gender"
)

// Mood values the tense classifier reacts to.
const (
	MoodIndicative  = "Ind"
	MoodConditional = "Cnd"
	MoodSubjunctive = "Sub"
	MoodImperative  = "Imp"
)

// Features is the morphological feature bundle of a token. Each feature has
// exactly one slot; the empty string means the annotator emitted no value.
// Features the analyzers never read are kept in Other.
type Features struct {
	Mood     string
	Tense    string
	Person   string
	Number   string
	Voice    string
	Aspect   string
	VerbForm string
	Gender   string
	Other    map[string]string
}

// ParseFeatures reads a CoNLL-U FEATS column ("Mood=Ind|Number=Sing|...").
// "_" and the empty string yield an empty bundle. Malformed pairs are
// ignored, and when a feature repeats the first value is kept.
func ParseFeatures(s string) Features {
	var f Features
	s = strings.TrimSpace(s)
	if s == "" || s == "_" {
		return f
	}
	for _, pair := range strings.Split(s, "|") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" || value == "" {
			continue
		}
		f.set(key, value)
	}
	return f
}

// FeaturesFromMap builds a bundle from a feature name to value mapping, the
// shape most annotator bindings expose.
func FeaturesFromMap(m map[string]string) Features {
	var f Features
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if m[k] != "" {
			f.set(k, m[k])
		}
	}
	return f
}

func (f *Features) set(key, value string) {
	var slot *string
	switch key {
	case FeatMood:
		slot = &f.Mood
	case FeatTense:
		slot = &f.Tense
	case FeatPerson:
		slot = &f.Person
	case FeatNumber:
		slot = &f.Number
	case FeatVoice:
		slot = &f.Voice
	case FeatAspect:
		slot = &f.Aspect
	case FeatVerbForm:
		slot = &f.VerbForm
	case FeatGender:
		slot = &f.Gender
	default:
		if f.Other == nil {
			f.Other = make(map[string]string)
		}
		if _, seen := f.Other[key]; !seen {
			f.Other[key] = value
		}
		return
	}
	if *slot == "" {
		*slot = value
	}
}

// Get returns the value of the named feature and whether it is present.
func (f Features) Get(name string) (string, bool) {
	var v string
	switch name {
	case FeatMood:
		v = f.Mood
	case FeatTense:
		v = f.Tense
	case FeatPerson:
		v = f.Person
	case FeatNumber:
		v = f.Number
	case FeatVoice:
		v = f.Voice
	case FeatAspect:
		v = f.Aspect
	case FeatVerbForm:
		v = f.VerbForm
	case FeatGender:
		v = f.Gender
	default:
		v = f.Other[name]
	}
	return v, v != ""
}

// IsEmpty reports whether no feature is set.
func (f Features) IsEmpty() bool {
	return f.String() == ""
}

// String renders the bundle in CoNLL-U FEATS order (sorted by name), without
// the "_" placeholder.
func (f Features) String() string {
	pairs := make([]string, 0, 8+len(f.Other))
	add := func(k, v string) {
		if v != "" {
			pairs = append(pairs, k+"="+v)
		}
	}
	add(FeatAspect, f.Aspect)
	add(FeatGender, f.Gender)
	add(FeatMood, f.Mood)
	add(FeatNumber, f.Number)
	add(FeatPerson, f.Person)
	add(FeatTense, f.Tense)
	add(FeatVerbForm, f.VerbForm)
	add(FeatVoice, f.Voice)
	for k, v := range f.Other {
		add(k, v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "|")
}
