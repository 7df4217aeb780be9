package frlex

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrNoAnnotator is returned by NewDocument when no annotator was given.
	ErrNoAnnotator = errors.New("frlex: no annotator configured")
	// ErrAnnotatorStatus is returned when a remote annotator answers with a
	// non-200 status.
	ErrAnnotatorStatus = errors.New("frlex: annotator returned an error status")
	// ErrEmptyLexicon is returned when a lexicon source holds no entries.
	ErrEmptyLexicon = errors.New("frlex: lexicon has no entries")
)

// An Annotator turns raw text into annotated tokens. Implementations keep the
// token order of the text, number tokens from zero and give every token the
// span of its enclosing sentence.
type Annotator interface {
	Name() string
	Annotate(ctx context.Context, text string) ([]Token, error)
}

// sentenceBuilder assembles tokens sentence by sentence, maintaining Index
// and the sentence spans.
type sentenceBuilder struct {
	tokens []Token
	start  int
}

// add appends tok to the current sentence.
func (b *sentenceBuilder) add(tok Token) {
	tok.Index = len(b.tokens)
	b.tokens = append(b.tokens, tok)
}

// closeSentence ends the current sentence. Empty sentences are ignored.
func (b *sentenceBuilder) closeSentence() {
	end := len(b.tokens)
	if end == b.start {
		return
	}
	for i := b.start; i < end; i++ {
		b.tokens[i].SentenceStart = b.start
		b.tokens[i].SentenceEnd = end
	}
	b.start = end
}

// result closes any open sentence and returns the tokens.
func (b *sentenceBuilder) result() []Token {
	b.closeSentence()
	if b.tokens == nil {
		return []Token{}
	}
	return b.tokens
}

// sentencesOf rebuilds the sentence list from token spans.
func sentencesOf(tokens []Token) []Sentence {
	var sents []Sentence
	for i := 0; i < len(tokens); {
		start, end := sentenceBounds(tokens, i)
		if start < i {
			// Spans that overlap are truncated to start here.
			start = i
		}
		words := make([]string, 0, end-start)
		for _, tok := range tokens[start:end] {
			words = append(words, tok.Text)
		}
		sents = append(sents, Sentence{
			Text:       strings.Join(words, " "),
			TokenStart: start,
			TokenEnd:   end,
		})
		i = end
	}
	return sents
}

// isPunctuation reports whether s is made only of punctuation or symbols.
func isPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// isBlank reports whether s is empty or whitespace only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
