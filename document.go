package frlex

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// A DocOpt represents a setting that changes the document creation process.
//
// For example, it might select the annotator:
//
//	doc, err := frlex.NewDocument("...", frlex.UsingAnnotator(frlex.CoNLLUAnnotator{}))
type DocOpt func(doc *Document, opts *DocOpts)

// DocOpts controls the Document creation process:
type DocOpts struct {
	Annotator        Annotator              // Annotator to use (required)
	Context          context.Context        // Context for cancellation and timeouts
	Timeout          time.Duration          // Processing timeout
	ProgressCallback func(progress float64) // Progress reporting callback
	Normalize        bool                   // If true, NFC-normalize the text first
	LanguageCheck    bool                   // If true, estimate how French the text is
}

// UsingAnnotator specifies the Annotator to use.
func UsingAnnotator(a Annotator) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Annotator = a
	}
}

// WithContext sets the context for document processing
func WithContext(ctx context.Context) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Context = ctx
	}
}

// WithTimeout sets a timeout for document processing
func WithTimeout(timeout time.Duration) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Timeout = timeout
	}
}

// WithProgressCallback sets a progress reporting callback
func WithProgressCallback(callback func(float64)) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.ProgressCallback = callback
	}
}

// WithNormalization can enable (the default) or disable Unicode NFC
// normalization of the text before annotation.
func WithNormalization(include bool) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Normalize = include
	}
}

// WithLanguageCheck can enable (the default) or disable the French
// likelihood estimate stored in the metadata.
func WithLanguageCheck(include bool) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.LanguageCheck = include
	}
}

// A Document represents an annotated body of text.
type Document struct {
	Text     string
	Metadata DocumentMetadata

	sentences []Sentence
	tokens    []Token
}

// Tokens returns a copy of `doc`'s tokens.
func (doc *Document) Tokens() []Token {
	tokens := make([]Token, len(doc.tokens))
	copy(tokens, doc.tokens)
	return tokens
}

// Sentences returns `doc`'s sentences.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

// IsEmpty reports whether the annotator produced no tokens.
func (doc *Document) IsEmpty() bool {
	return len(doc.tokens) == 0
}

func defaultOpts() DocOpts {
	return DocOpts{
		Context:       context.Background(),
		Timeout:       30 * time.Second,
		Normalize:     true,
		LanguageCheck: true,
	}
}

// NewDocument annotates text according to the user-specified options.
//
// For example,
//
//	doc, err := frlex.NewDocument(text, frlex.UsingAnnotator(annotator))
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	startTime := time.Now()

	doc := Document{
		Text: text,
		Metadata: DocumentMetadata{
			ProcessedAt: startTime,
		},
	}

	base := defaultOpts()
	for _, applyOpt := range opts {
		applyOpt(&doc, &base)
	}
	if base.Annotator == nil {
		return nil, ErrNoAnnotator
	}
	doc.Metadata.Annotator = base.Annotator.Name()

	ctx := base.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if base.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, base.Timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reportProgress := func(p float64) {
		if base.ProgressCallback != nil {
			base.ProgressCallback(p)
		}
	}

	if base.Normalize {
		doc.Text = norm.NFC.String(doc.Text)
	}
	reportProgress(0.25)

	tokens, err := base.Annotator.Annotate(ctx, doc.Text)
	if err != nil {
		return nil, fmt.Errorf("annotate with %s: %w", doc.Metadata.Annotator, err)
	}
	if tokens == nil {
		tokens = []Token{}
	}
	doc.tokens = tokens
	doc.Metadata.TokenCount = len(tokens)
	reportProgress(0.5)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc.sentences = sentencesOf(tokens)
	doc.Metadata.SentenceCount = len(doc.sentences)
	reportProgress(0.75)

	if base.LanguageCheck {
		words := make([]string, 0, len(tokens))
		for i := range tokens {
			if !tokens[i].IsPunct && !tokens[i].IsSpace {
				words = append(words, tokens[i].Text)
			}
		}
		doc.Metadata.FrenchConfidence = NewLanguageDetector().FrenchConfidence(strings.Join(words, " "))
	}
	reportProgress(1.0)

	doc.Metadata.ProcessingTimeMs = time.Since(startTime).Milliseconds()
	return &doc, nil
}
