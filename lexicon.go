package frlex

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/frlex/internal/mapped"
)

// LexiconEntry is the analysis a full-form lexicon gives for one word form.
type LexiconEntry struct {
	Lemma string
	POS   string
	Tag   string
	Morph Features
}

// Lexicon maps word forms to their analysis.
type Lexicon struct {
	entries map[string]LexiconEntry
}

// LoadLexicon reads a tab-separated full-form lexicon with the columns
// form, lemma, upos and the optional xpos and feats. Lines starting with "#"
// are comments. When a form is listed twice the first entry wins.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{entries: make(map[string]LexiconEntry)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxCoNLLULine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 3 {
			return nil, fmt.Errorf("lexicon: line %d: expected at least 3 columns, got %d", lineNo, len(cols))
		}
		form := strings.TrimSpace(cols[0])
		if form == "" {
			return nil, fmt.Errorf("lexicon: line %d: empty form", lineNo)
		}
		if _, dup := lex.entries[form]; dup {
			continue
		}
		entry := LexiconEntry{
			Lemma: column(cols, 1),
			POS:   column(cols, 2),
			Tag:   column(cols, 3),
			Morph: ParseFeatures(column(cols, 4)),
		}
		if entry.Lemma == "" {
			entry.Lemma = form
		}
		lex.entries[form] = entry
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: line %d: %w", lineNo+1, err)
	}
	if len(lex.entries) == 0 {
		return nil, ErrEmptyLexicon
	}
	return lex, nil
}

// LoadLexiconFile loads a lexicon from a memory-mapped file.
func LoadLexiconFile(path string) (*Lexicon, error) {
	f, err := mapped.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lex, err := LoadLexicon(bytes.NewReader(f.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lex, nil
}

// Lookup returns the analysis of form, trying the form as written and then
// lower-cased.
func (l *Lexicon) Lookup(form string) (LexiconEntry, bool) {
	if e, ok := l.entries[form]; ok {
		return e, true
	}
	e, ok := l.entries[foldLemma(form)]
	return e, ok
}

// Len returns the number of forms in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// LexiconAnnotator annotates text offline: punkt sentence splitting, French
// word tokenization and a dictionary lookup per word. It does not
// disambiguate; a form always receives its first lexicon analysis.
type LexiconAnnotator struct {
	lexicon   *Lexicon
	segmenter *punktSentenceTokenizer
	tokenizer Tokenizer
}

// NewLexiconAnnotator creates an annotator backed by lex. The options
// configure its word tokenizer.
func NewLexiconAnnotator(lex *Lexicon, opts ...TokenizerOptFunc) (*LexiconAnnotator, error) {
	if lex == nil || lex.Len() == 0 {
		return nil, ErrEmptyLexicon
	}
	seg, err := newPunktSentenceTokenizer()
	if err != nil {
		return nil, fmt.Errorf("lexicon annotator: %w", err)
	}
	return &LexiconAnnotator{
		lexicon:   lex,
		segmenter: seg,
		tokenizer: NewIterTokenizer(opts...),
	}, nil
}

// Name returns "lexicon".
func (la *LexiconAnnotator) Name() string { return "lexicon" }

// Annotate tokenizes text and looks every word up in the lexicon.
func (la *LexiconAnnotator) Annotate(ctx context.Context, text string) ([]Token, error) {
	var b sentenceBuilder
	for _, sent := range la.segmenter.segment(text) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, word := range la.tokenizer.Tokenize(sent) {
			b.add(la.analyze(word))
		}
		b.closeSentence()
	}
	return b.result(), nil
}

// analyze builds the token for word. Unknown words are classified by shape.
func (la *LexiconAnnotator) analyze(word string) Token {
	tok := Token{Text: word}
	if e, ok := la.lexicon.Lookup(word); ok {
		tok.Lemma = e.Lemma
		tok.POS = e.POS
		tok.Tag = e.Tag
		tok.Morph = e.Morph
	} else {
		tok.Lemma = foldLemma(word)
		switch {
		case isBlank(word):
			tok.POS = POSSpace
		case isPunctuation(word):
			tok.POS = POSPunct
		case isNumeric(word):
			tok.POS = POSNum
		default:
			tok.POS = POSUnknownWord
		}
	}
	tok.IsSpace = tok.POS == POSSpace
	tok.IsPunct = tok.POS == POSPunct || isPunctuation(word)
	return tok
}

// isNumeric reports whether word is written with digits ("12", "3,5",
// "1.000").
func isNumeric(word string) bool {
	return isDigits(strings.NewReplacer(",", "", ".", "").Replace(word))
}
