package frlex

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"gonum.org/v1/gonum/mat"
)

// LexicalConfig configures important-word extraction
type LexicalConfig struct {
	MinFrequency int  // Groups seen fewer times are dropped.
	MaxItems     int  // Result size after ranking; 0 keeps everything.
	MaxExamples  int  // Sentence excerpts collected per item.
	GroupByPOS   bool // Group by (lemma, POS) instead of lemma alone.
}

// DefaultLexicalConfig returns standard configuration
func DefaultLexicalConfig() LexicalConfig {
	return LexicalConfig{
		MinFrequency: 1,
		MaxItems:     0,
		MaxExamples:  3,
		GroupByPOS:   false,
	}
}

// LexicalAggregator builds the ranked bag of important words of a document.
type LexicalAggregator struct {
	filter *ImportanceFilter
	res    *Resources
	config LexicalConfig
}

// NewLexicalAggregator creates an aggregator backed by res.
func NewLexicalAggregator(res *Resources, config LexicalConfig) *LexicalAggregator {
	if config.MaxExamples < 0 {
		config.MaxExamples = 0
	}
	return &LexicalAggregator{
		filter: NewImportanceFilter(res),
		res:    res,
		config: config,
	}
}

// Config returns the aggregator's configuration.
func (la *LexicalAggregator) Config() LexicalConfig {
	return la.config
}

// Filter returns the eligibility filter used by the aggregator.
func (la *LexicalAggregator) Filter() *ImportanceFilter {
	return la.filter
}

// lemmaGroup accumulates the eligible occurrences of one lemma.
type lemmaGroup struct {
	key       string
	text      string
	lemma     string
	pos       string
	frequency int
	tokens    []int
}

// Extract runs Aggregate with the configured frequency threshold and size
// limit.
func (la *LexicalAggregator) Extract(tokens []Token) []LexicalItem {
	return la.Aggregate(tokens, la.config.MinFrequency, la.config.MaxItems)
}

// Aggregate groups eligible tokens by lower-cased lemma, scores every group
// seen at least minFrequency times and returns the groups ranked by
// importance score, highest first. Equal scores keep first-seen order.
// maxItems <= 0 means no limit; truncation happens after ranking.
func (la *LexicalAggregator) Aggregate(tokens []Token, minFrequency, maxItems int) []LexicalItem {
	if minFrequency < 1 {
		minFrequency = 1
	}

	keys := make([]string, len(tokens))
	for i := range tokens {
		keys[i] = la.groupKey(&tokens[i])
	}

	var groups []*lemmaGroup
	byKey := make(map[string]*lemmaGroup)
	for i := range tokens {
		tok := &tokens[i]
		if !la.filter.IsEligible(*tok) {
			continue
		}
		key := keys[i]
		g, ok := byKey[key]
		if !ok {
			g = &lemmaGroup{key: key, text: tok.Text, lemma: tok.Lemma, pos: tok.POS}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.frequency++
		g.tokens = append(g.tokens, i)
	}

	kept := groups[:0]
	for _, g := range groups {
		if g.frequency >= minFrequency {
			kept = append(kept, g)
		}
	}
	if len(kept) == 0 {
		return []LexicalItem{}
	}

	scores := la.score(kept, documentLength(tokens))
	items := make([]LexicalItem, len(kept))
	for i, g := range kept {
		items[i] = LexicalItem{
			SurfaceText:     g.text,
			Lemma:           g.lemma,
			POS:             g.pos,
			Frequency:       g.frequency,
			ImportanceScore: scores[i],
			ContextExamples: la.contextExamples(tokens, keys, g.key),
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ImportanceScore > items[j].ImportanceScore
	})
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}
	return items
}

func (la *LexicalAggregator) groupKey(tok *Token) string {
	key := foldLemma(tok.Lemma)
	if la.config.GroupByPOS {
		key += "\x00" + tok.POS
	}
	return key
}

// score computes (frequency / docLen) * lengthBonus * posBonus for every
// group, rounded to four decimals.
func (la *LexicalAggregator) score(groups []*lemmaGroup, docLen int) []float64 {
	n := len(groups)
	if docLen < 1 {
		docLen = 1
	}
	tf := make([]float64, n)
	lengthBonus := make([]float64, n)
	posBonus := make([]float64, n)
	for i, g := range groups {
		tf[i] = float64(g.frequency) / float64(docLen)
		lengthBonus[i] = math.Min(float64(utf8.RuneCountInString(g.lemma))/10, 1.0)
		posBonus[i] = la.res.POSBonus(g.pos)
	}

	var weighted, scored mat.VecDense
	weighted.MulElemVec(mat.NewVecDense(n, tf), mat.NewVecDense(n, lengthBonus))
	scored.MulElemVec(&weighted, mat.NewVecDense(n, posBonus))

	out := make([]float64, n)
	for i := range out {
		out[i] = roundScore(scored.AtVec(i))
	}
	return out
}

// contextExamples scans the whole document for sentences in which the
// group's lemma occurs, independently of eligibility.
func (la *LexicalAggregator) contextExamples(tokens []Token, keys []string, key string) []string {
	examples := []string{}
	for i := range tokens {
		if len(examples) >= la.config.MaxExamples {
			break
		}
		if keys[i] != key {
			continue
		}
		start, end := sentenceBounds(tokens, i)
		examples = append(examples, markedExcerpt(tokens, start, end, i))
	}
	return examples
}

// sentenceBounds returns the sentence span of tokens[i], clipped to the
// document. A token without a usable span is its own sentence.
func sentenceBounds(tokens []Token, i int) (int, int) {
	start, end := tokens[i].SentenceStart, tokens[i].SentenceEnd
	if start < 0 {
		start = 0
	}
	if end > len(tokens) {
		end = len(tokens)
	}
	if start > i || end <= i {
		return i, i + 1
	}
	return start, end
}

// documentLength counts tokens that are not whitespace-only.
func documentLength(tokens []Token) int {
	n := 0
	for i := range tokens {
		if tokens[i].IsSpace || strings.TrimSpace(tokens[i].Text) == "" {
			continue
		}
		n++
	}
	return n
}

func roundScore(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
