package frlex

import (
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/data"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// punktSentenceTokenizer segments text with the punkt algorithm.
type punktSentenceTokenizer struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// newPunktSentenceTokenizer loads the French punkt training data, falling
// back to the English model bundled with the segmenter when the French data
// is not available.
func newPunktSentenceTokenizer() (*punktSentenceTokenizer, error) {
	var pt punktSentenceTokenizer
	if b, err := data.Asset("data/french.json"); err == nil {
		training, err := sentences.LoadTraining(b)
		if err == nil {
			pt.tokenizer = sentences.NewSentenceTokenizer(training)
			return &pt, nil
		}
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	pt.tokenizer = tokenizer
	return &pt, nil
}

// segment splits text into sentences.
func (p *punktSentenceTokenizer) segment(text string) []string {
	var sents []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			sents = append(sents, t)
		}
	}
	return sents
}
