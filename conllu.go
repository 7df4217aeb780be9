package frlex

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// CoNLL-U column positions.
const (
	colID = iota
	colForm
	colLemma
	colUPOS
	colXPOS
	colFeats
)

// maxCoNLLULine bounds the length of a single CoNLL-U line.
const maxCoNLLULine = 1024 * 1024

// ParseCoNLLU reads tokens from CoNLL-U formatted input. Blank lines end
// sentences, comment lines are skipped, as are multiword range lines ("1-2")
// and empty nodes ("1.1"). A "_" column means the value is absent; a missing
// lemma falls back to the form.
func ParseCoNLLU(r io.Reader) ([]Token, error) {
	var b sentenceBuilder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxCoNLLULine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			b.closeSentence()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < colXPOS {
			return nil, fmt.Errorf("conllu: line %d: expected at least %d columns, got %d", lineNo, colXPOS, len(cols))
		}
		id := cols[colID]
		if strings.ContainsAny(id, "-.") {
			continue
		}

		tok := Token{
			Text:  cols[colForm],
			Lemma: column(cols, colLemma),
			POS:   column(cols, colUPOS),
			Tag:   column(cols, colXPOS),
			Morph: ParseFeatures(column(cols, colFeats)),
		}
		if tok.Lemma == "" {
			tok.Lemma = tok.Text
		}
		tok.IsSpace = tok.POS == POSSpace || isBlank(tok.Text)
		tok.IsPunct = tok.POS == POSPunct || isPunctuation(tok.Text)
		b.add(tok)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("conllu: line %d: %w", lineNo+1, err)
	}
	return b.result(), nil
}

// column returns cols[i], or "" when the column is missing or "_".
func column(cols []string, i int) string {
	if i >= len(cols) {
		return ""
	}
	v := strings.TrimSpace(cols[i])
	if v == "_" {
		return ""
	}
	return v
}

// CoNLLUAnnotator treats its input text as CoNLL-U produced by an external
// tagger.
type CoNLLUAnnotator struct{}

// Name returns "conllu".
func (CoNLLUAnnotator) Name() string { return "conllu" }

// Annotate parses text as CoNLL-U.
func (CoNLLUAnnotator) Annotate(ctx context.Context, text string) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseCoNLLU(strings.NewReader(text))
}
