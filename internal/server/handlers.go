// Package server exposes the analyzers over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/tsawler/frlex"
	"github.com/tsawler/frlex/report"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 4 << 20

// Handler holds HTTP handlers for the analysis API.
type Handler struct {
	annotator frlex.Annotator
	analyzer  *frlex.Analyzer
	timeout   time.Duration
	logger    *slog.Logger
}

// NewHandler creates a Handler that annotates with annotator and analyzes
// with analyzer.
func NewHandler(annotator frlex.Annotator, analyzer *frlex.Analyzer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		annotator: annotator,
		analyzer:  analyzer,
		timeout:   60 * time.Second,
		logger:    logger,
	}
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze", h.handleAnalyze)
	mux.HandleFunc("POST /api/verbs", h.handleVerbs)
	mux.HandleFunc("POST /api/words", h.handleWords)
	mux.HandleFunc("POST /api/report", h.handleReport)
	mux.HandleFunc("GET /health", h.handleHealth)
}

// Routes returns the API wrapped in the CORS middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)
}

type analyzeRequest struct {
	Text         string `json:"text"`
	MinFrequency *int   `json:"min_frequency,omitempty"`
	MaxWords     *int   `json:"max_words,omitempty"`
}

type analyzeResponse struct {
	Verbs       []frlex.VerbOccurrence `json:"verbs"`
	Words       []frlex.LexicalItem    `json:"words"`
	TenseCounts []frlex.LabelCount     `json:"tense_counts"`
	POSCounts   []frlex.LabelCount     `json:"pos_counts"`
	Scores      *report.ScoreStats     `json:"scores,omitempty"`
	Metadata    metadataJSON           `json:"metadata"`
}

type metadataJSON struct {
	Annotator        string  `json:"annotator"`
	TokenCount       int     `json:"token_count"`
	SentenceCount    int     `json:"sentence_count"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
	FrenchConfidence float64 `json:"french_confidence"`
}

func toMetadataJSON(m frlex.DocumentMetadata) metadataJSON {
	return metadataJSON{
		Annotator:        m.Annotator,
		TokenCount:       m.TokenCount,
		SentenceCount:    m.SentenceCount,
		ProcessingTimeMs: m.ProcessingTimeMs,
		FrenchConfidence: m.FrenchConfidence,
	}
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, doc, ok := h.annotate(w, r)
	if !ok {
		return
	}
	minFreq, maxWords := h.limits(req)
	a := h.analyzer.AnalyzeWithLimits(doc.Tokens(), minFreq, maxWords)
	stats := report.Scores(a.Words)

	writeJSON(w, http.StatusOK, analyzeResponse{
		Verbs:       a.Verbs,
		Words:       a.Words,
		TenseCounts: frlex.TenseCounts(a.Verbs),
		POSCounts:   frlex.POSCounts(a.Words),
		Scores:      &stats,
		Metadata:    toMetadataJSON(doc.Metadata),
	})
}

func (h *Handler) handleVerbs(w http.ResponseWriter, r *http.Request) {
	_, doc, ok := h.annotate(w, r)
	if !ok {
		return
	}
	verbs := h.analyzer.Verbs().Analyze(doc.Tokens())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"verbs":        verbs,
		"tense_counts": frlex.TenseCounts(verbs),
		"metadata":     toMetadataJSON(doc.Metadata),
	})
}

func (h *Handler) handleWords(w http.ResponseWriter, r *http.Request) {
	req, doc, ok := h.annotate(w, r)
	if !ok {
		return
	}
	minFreq, maxWords := h.limits(req)
	words := h.analyzer.Lexical().Aggregate(doc.Tokens(), minFreq, maxWords)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"words":      words,
		"pos_counts": frlex.POSCounts(words),
		"scores":     report.Scores(words),
		"metadata":   toMetadataJSON(doc.Metadata),
	})
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	req, doc, ok := h.annotate(w, r)
	if !ok {
		return
	}
	minFreq, maxWords := h.limits(req)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := report.WriteHTML(w, report.Page{
		Metadata: doc.Metadata,
		Analysis: h.analyzer.AnalyzeWithLimits(doc.Tokens(), minFreq, maxWords),
	})
	if err != nil {
		h.logger.Error("report failed", "error", err)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"annotator": h.annotator.Name(),
	})
}

// annotate decodes the request and annotates its text. On failure it writes
// the error response and returns false.
func (h *Handler) annotate(w http.ResponseWriter, r *http.Request) (analyzeRequest, *frlex.Document, bool) {
	var req analyzeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return req, nil, false
	}
	if req.MinFrequency != nil && *req.MinFrequency < 1 {
		writeError(w, http.StatusBadRequest, "min_frequency must be at least 1")
		return req, nil, false
	}

	start := time.Now()
	doc, err := frlex.NewDocument(req.Text,
		frlex.UsingAnnotator(h.annotator),
		frlex.WithContext(r.Context()),
		frlex.WithTimeout(h.timeout),
	)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			status = http.StatusGatewayTimeout
		}
		h.logger.Error("annotation failed",
			"path", r.URL.Path,
			"annotator", h.annotator.Name(),
			"error", err,
		)
		writeError(w, status, err.Error())
		return req, nil, false
	}

	h.logger.Debug("annotated",
		"path", r.URL.Path,
		"tokens", doc.Metadata.TokenCount,
		"sentences", doc.Metadata.SentenceCount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return req, doc, true
}

// limits returns the frequency threshold and word-list size for req,
// falling back to the analyzer's configuration.
func (h *Handler) limits(req analyzeRequest) (int, int) {
	cfg := h.analyzer.Lexical().Config()
	minFreq, maxWords := cfg.MinFrequency, cfg.MaxItems
	if req.MinFrequency != nil {
		minFreq = *req.MinFrequency
	}
	if req.MaxWords != nil {
		maxWords = *req.MaxWords
	}
	return minFreq, maxWords
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := report.WriteJSON(w, v); err != nil {
		slog.Default().Debug("write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"message": message,
		},
	})
}
