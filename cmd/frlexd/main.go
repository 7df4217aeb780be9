// Command frlexd serves the French verb and word analyses over HTTP.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/tsawler/frlex"
	"github.com/tsawler/frlex/internal/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	addr := flag.String("addr", getEnv("FRLEX_ADDR", ":8080"), "listen address")
	annotatorName := flag.String("annotator", getEnv("FRLEX_ANNOTATOR", "udpipe"), "annotator: lexicon, udpipe or conllu")
	lexiconPath := flag.String("lexicon", getEnv("FRLEX_LEXICON", "data/lexicon_fr.tsv"), "full-form lexicon for the lexicon annotator")
	udpipeURL := flag.String("udpipe-url", getEnv("FRLEX_UDPIPE_URL", frlex.DefaultUDPipeURL), "UDPipe REST endpoint")
	extended := flag.Bool("extended-stopwords", false, "extend the stopword list with the stopwords library")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(getEnv("FRLEX_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	annotator, err := newAnnotator(*annotatorName, *lexiconPath, *udpipeURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize annotator: %v\n", err)
		os.Exit(1)
	}

	res := frlex.FrenchResources()
	if *extended {
		res = res.WithExtendedStopwords()
	}
	analyzer := frlex.NewAnalyzer(res, frlex.DefaultVerbConfig(), frlex.DefaultLexicalConfig())

	logger.Info("starting frlexd",
		"version", Version,
		"addr", *addr,
		"annotator", annotator.Name(),
		"stopwords", res.StopWordCount(),
	)

	handler := server.NewHandler(annotator, analyzer, logger)
	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler.Routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func newAnnotator(name, lexiconPath, udpipeURL string) (frlex.Annotator, error) {
	switch name {
	case "lexicon":
		lex, err := frlex.LoadLexiconFile(lexiconPath)
		if err != nil {
			return nil, err
		}
		return frlex.NewLexiconAnnotator(lex)
	case "udpipe":
		return frlex.NewUDPipeAnnotator(udpipeURL)
	case "conllu":
		return frlex.CoNLLUAnnotator{}, nil
	default:
		return nil, fmt.Errorf("unknown annotator %q", name)
	}
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
