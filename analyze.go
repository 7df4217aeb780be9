package frlex

import "sync"

// Analysis holds the two results computed from one token sequence.
type Analysis struct {
	Verbs []VerbOccurrence `json:"verbs"`
	Words []LexicalItem    `json:"words"`
}

// Analyzer runs verb analysis and important-word extraction over the same
// tokens.
type Analyzer struct {
	verbs   *VerbAnalyzer
	lexical *LexicalAggregator
}

// NewAnalyzer creates an analyzer whose passes share res.
func NewAnalyzer(res *Resources, verbConfig VerbConfig, lexicalConfig LexicalConfig) *Analyzer {
	return &Analyzer{
		verbs:   NewVerbAnalyzer(res, verbConfig),
		lexical: NewLexicalAggregator(res, lexicalConfig),
	}
}

// NewFrenchAnalyzer creates an analyzer with the French tables and the
// default configurations.
func NewFrenchAnalyzer() *Analyzer {
	return NewAnalyzer(FrenchResources(), DefaultVerbConfig(), DefaultLexicalConfig())
}

// Verbs returns the verb analyzer.
func (a *Analyzer) Verbs() *VerbAnalyzer {
	return a.verbs
}

// Lexical returns the lexical aggregator.
func (a *Analyzer) Lexical() *LexicalAggregator {
	return a.lexical
}

// Analyze runs both passes concurrently with the configured word limits.
// tokens is only read.
func (a *Analyzer) Analyze(tokens []Token) Analysis {
	return a.AnalyzeWithLimits(tokens, a.lexical.config.MinFrequency, a.lexical.config.MaxItems)
}

// AnalyzeWithLimits is Analyze with an explicit frequency threshold and
// word-list size.
func (a *Analyzer) AnalyzeWithLimits(tokens []Token, minFrequency, maxItems int) Analysis {
	var (
		out Analysis
		wg  sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		out.Verbs = a.verbs.Analyze(tokens)
	}()
	go func() {
		defer wg.Done()
		out.Words = a.lexical.Aggregate(tokens, minFrequency, maxItems)
	}()
	wg.Wait()
	return out
}

// AnalyzeDocument runs Analyze over the document's tokens.
func (a *Analyzer) AnalyzeDocument(doc *Document) Analysis {
	return a.Analyze(doc.tokens)
}
