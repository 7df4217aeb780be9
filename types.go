package frlex

import (
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Coarse part-of-speech tags (Universal Dependencies UPOS) used by the
// analyzers.
const (
	POSVerb        = "VERB"
	POSAux         = "AUX"
	POSNoun        = "NOUN"
	POSPropn       = "PROPN"
	POSAdj         = "ADJ"
	POSAdv         = "ADV"
	POSPunct       = "PUNCT"
	POSSpace       = "SPACE"
	POSSym         = "SYM"
	POSNum         = "NUM"
	POSDet         = "DET"
	POSPron        = "PRON"
	POSAdp         = "ADP"
	POSCconj       = "CCONJ"
	POSSconj       = "SCONJ"
	POSUnknownWord = "X"
)

// A Token represents one annotated token of a document: its surface text and
// everything the annotator says about it.
type Token struct {
	Text  string   // The token's actual content.
	Lemma string   // The token's dictionary form.
	POS   string   // The token's coarse part-of-speech tag (UPOS).
	Tag   string   // The token's fine-grained tag (e.g. "VINF", "VPPMS").
	Morph Features // The token's morphological features.

	Index         int // Position in the document's token sequence.
	SentenceStart int // First token index of the enclosing sentence.
	SentenceEnd   int // One past the last token index of the enclosing sentence.

	IsPunct bool // Set by the annotator for punctuation tokens.
	IsSpace bool // Set by the annotator for whitespace tokens.
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text       string // The sentence's tokens joined by single spaces.
	TokenStart int    // First token index
	TokenEnd   int    // One past the last token index
}

// String returns the text content of the sentence
func (s Sentence) String() string {
	return s.Text
}

// VerbOccurrence describes one verb or auxiliary found in a document.
type VerbOccurrence struct {
	Text    string     `json:"text"`
	Lemma   string     `json:"lemma"`
	POS     string     `json:"pos"`
	Tag     string     `json:"tag"`
	Tense   TenseLabel `json:"tense"`
	Mood    string     `json:"mood"`
	Person  string     `json:"person,omitempty"`
	Number  string     `json:"number,omitempty"`
	Voice   string     `json:"voice,omitempty"`
	Context string     `json:"context"`
}

// LexicalItem is one entry of the bag of important words.
type LexicalItem struct {
	SurfaceText     string   `json:"surface_text"`
	Lemma           string   `json:"lemma"`
	POS             string   `json:"pos"`
	Frequency       int      `json:"frequency"`
	ImportanceScore float64  `json:"importance_score"`
	ContextExamples []string `json:"context_examples"`
}

// DocumentMetadata contains metadata about processed documents
type DocumentMetadata struct {
	Annotator        string
	ProcessedAt      time.Time
	ProcessingTimeMs int64
	TokenCount       int
	SentenceCount    int
	FrenchConfidence float64
}

// casePool keeps French lower-casers; a cases.Caser is stateful and must not
// be shared between goroutines.
var casePool = sync.Pool{
	New: func() interface{} {
		return cases.Lower(language.French)
	},
}

// foldLemma lower-cases s with French casing rules.
func foldLemma(s string) string {
	c := casePool.Get().(cases.Caser)
	out := c.String(s)
	casePool.Put(c)
	return out
}
