package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tsawler/frlex"
	"github.com/tsawler/frlex/report"
)

// frenchWarnThreshold is the French confidence below which the input is
// reported as probably not French.
const frenchWarnThreshold = 0.3

type config struct {
	Input     string
	Annotator string
	Lexicon   string
	UDPipeURL string

	VerbsOut string
	WordsOut string
	HTMLOut  string

	MinFrequency      int
	MaxWords          int
	Window            int
	FrenchLabels      bool
	ExtendedStopwords bool
	GroupByPOS        bool
}

// runner performs one end-to-end analysis. Failures are logged and the run
// goes on with whatever is left.
type runner struct {
	cfg    config
	out    io.Writer
	logger *slog.Logger
}

func (r *runner) run() frlex.Analysis {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(r.out, "French Text Processing Suite")
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, "1. Verb Extraction with Tense Analysis")
	fmt.Fprintln(r.out, "2. Bag-of-Words Extraction")
	fmt.Fprintln(r.out, rule)

	doc := r.annotate()
	var tokens []frlex.Token
	if doc != nil {
		tokens = doc.Tokens()
	}

	analysis := r.analyzer().Analyze(tokens)

	fmt.Fprintln(r.out, "\nSTARTING VERB EXTRACTION...")
	fmt.Fprintln(r.out, strings.Repeat("-", 40))
	report.PrintVerbSummary(r.out, analysis.Verbs, r.cfg.FrenchLabels)
	if len(analysis.Verbs) > 0 {
		r.save(r.cfg.VerbsOut, analysis.Verbs)
		fmt.Fprintf(r.out, "Verb analysis complete! Results saved to %s\n", r.cfg.VerbsOut)
	} else {
		fmt.Fprintln(r.out, "No verbs were extracted from the text.")
	}

	fmt.Fprintln(r.out, "\n\nSTARTING BAG-OF-WORDS EXTRACTION...")
	fmt.Fprintln(r.out, strings.Repeat("-", 40))
	report.PrintWordSummary(r.out, analysis.Words)
	if len(analysis.Words) > 0 {
		r.save(r.cfg.WordsOut, analysis.Words)
		fmt.Fprintf(r.out, "Bag-of-Words analysis complete! Results saved to %s\n", r.cfg.WordsOut)
	} else {
		fmt.Fprintln(r.out, "No important words were extracted from the text.")
	}

	if r.cfg.HTMLOut != "" {
		r.writeHTML(doc, analysis)
	}

	report.PrintRunSummary(r.out, r.cfg.Input, len(analysis.Verbs), len(analysis.Words), r.cfg.VerbsOut, r.cfg.WordsOut)
	fmt.Fprintln(r.out, "\nAll analyses completed successfully!")
	return analysis
}

// annotate reads and annotates the input file. It returns nil when either
// step fails.
func (r *runner) annotate() *frlex.Document {
	text, err := report.ReadText(r.cfg.Input)
	if err != nil {
		r.logger.Error("cannot read input file", "input", r.cfg.Input, "error", err)
		return nil
	}

	annotator, err := r.newAnnotator()
	if err != nil {
		r.logger.Error("cannot create annotator", "annotator", r.cfg.Annotator, "error", err)
		return nil
	}

	start := time.Now()
	doc, err := frlex.NewDocument(text,
		frlex.UsingAnnotator(annotator),
		frlex.WithContext(context.Background()),
		frlex.WithTimeout(5*time.Minute),
		frlex.WithProgressCallback(func(p float64) {
			r.logger.Debug("annotation progress", "progress", p)
		}),
	)
	if err != nil {
		r.logger.Error("annotation failed", "input", r.cfg.Input, "error", err)
		return nil
	}

	r.logger.Info("annotated",
		"input", r.cfg.Input,
		"annotator", doc.Metadata.Annotator,
		"tokens", doc.Metadata.TokenCount,
		"sentences", doc.Metadata.SentenceCount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if !doc.IsEmpty() && doc.Metadata.FrenchConfidence < frenchWarnThreshold {
		r.logger.Warn("input does not look like French text",
			"input", r.cfg.Input,
			"french_confidence", doc.Metadata.FrenchConfidence,
		)
	}
	return doc
}

func (r *runner) newAnnotator() (frlex.Annotator, error) {
	switch r.cfg.Annotator {
	case "lexicon":
		lex, err := frlex.LoadLexiconFile(r.cfg.Lexicon)
		if err != nil {
			return nil, err
		}
		return frlex.NewLexiconAnnotator(lex)
	case "udpipe":
		return frlex.NewUDPipeAnnotator(r.cfg.UDPipeURL)
	case "conllu":
		return frlex.CoNLLUAnnotator{}, nil
	default:
		return nil, fmt.Errorf("unknown annotator %q", r.cfg.Annotator)
	}
}

func (r *runner) analyzer() *frlex.Analyzer {
	res := frlex.FrenchResources()
	if r.cfg.ExtendedStopwords {
		res = res.WithExtendedStopwords()
	}
	lexical := frlex.DefaultLexicalConfig()
	lexical.MinFrequency = r.cfg.MinFrequency
	lexical.MaxItems = r.cfg.MaxWords
	lexical.GroupByPOS = r.cfg.GroupByPOS
	return frlex.NewAnalyzer(res, frlex.VerbConfig{ContextWindow: r.cfg.Window}, lexical)
}

func (r *runner) save(path string, v interface{}) {
	if err := report.SaveJSON(path, v); err != nil {
		r.logger.Error("cannot save results", "output", path, "error", err)
		return
	}
	r.logger.Debug("results saved", "output", path)
}

func (r *runner) writeHTML(doc *frlex.Document, analysis frlex.Analysis) {
	f, err := os.Create(r.cfg.HTMLOut)
	if err != nil {
		r.logger.Error("cannot create HTML report", "output", r.cfg.HTMLOut, "error", err)
		return
	}
	defer f.Close()

	page := report.Page{Input: r.cfg.Input, Analysis: analysis}
	if doc != nil {
		page.Metadata = doc.Metadata
	}
	if err := report.WriteHTML(f, page); err != nil {
		r.logger.Error("cannot write HTML report", "output", r.cfg.HTMLOut, "error", err)
	}
}
