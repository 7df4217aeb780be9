// Command frlex analyzes a French text file: verbs with their tenses and the
// bag of important words.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tsawler/frlex"
	"github.com/tsawler/frlex/report"
)

func main() {
	cfg := config{}
	flag.StringVar(&cfg.Input, "input", getEnv("FRLEX_INPUT", "data/text.txt"), "text file to analyze")
	flag.StringVar(&cfg.Annotator, "annotator", getEnv("FRLEX_ANNOTATOR", "lexicon"), "annotator: lexicon, udpipe or conllu")
	flag.StringVar(&cfg.Lexicon, "lexicon", getEnv("FRLEX_LEXICON", "data/lexicon_fr.tsv"), "full-form lexicon for the lexicon annotator")
	flag.StringVar(&cfg.UDPipeURL, "udpipe-url", getEnv("FRLEX_UDPIPE_URL", frlex.DefaultUDPipeURL), "UDPipe REST endpoint")
	flag.StringVar(&cfg.VerbsOut, "verbs-out", report.VerbResultsFile, "verb results file")
	flag.StringVar(&cfg.WordsOut, "words-out", report.WordResultsFile, "bag-of-words results file")
	flag.StringVar(&cfg.HTMLOut, "html", "", "optional HTML report file")
	flag.IntVar(&cfg.MinFrequency, "min-frequency", 1, "minimum lemma frequency")
	flag.IntVar(&cfg.MaxWords, "max-words", 50, "maximum number of important words (0 for all)")
	flag.IntVar(&cfg.Window, "window", frlex.DefaultVerbConfig().ContextWindow, "verb context window in tokens")
	flag.BoolVar(&cfg.FrenchLabels, "french-labels", false, "print tense labels in French")
	flag.BoolVar(&cfg.ExtendedStopwords, "extended-stopwords", false, "extend the stopword list with the stopwords library")
	flag.BoolVar(&cfg.GroupByPOS, "group-by-pos", false, "group words by lemma and part of speech")
	logFormat := flag.String("log-format", getEnv("FRLEX_LOG_FORMAT", "text"), "log format: text or json")
	flag.Parse()

	if cfg.MinFrequency < 1 {
		fmt.Fprintln(os.Stderr, "min-frequency must be at least 1")
		os.Exit(2)
	}
	if cfg.MaxWords < 0 {
		fmt.Fprintln(os.Stderr, "max-words must not be negative")
		os.Exit(2)
	}

	logger := newLogger(*logFormat, parseLogLevel(getEnv("FRLEX_LOG_LEVEL", "info")))
	slog.SetDefault(logger)

	r := &runner{cfg: cfg, out: os.Stdout, logger: logger}
	r.run()
}

func newLogger(format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
