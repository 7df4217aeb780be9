package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tsawler/frlex"
)

const exampleCoNLLU = "1\tJe\tje\tPRON\tCLS\tNumber=Sing|Person=1\n" +
	"2\tmange\tmanger\tVERB\tV\tMood=Ind|Number=Sing|Person=1|Tense=Pres|VerbForm=Fin\n" +
	"3\tune\tun\tDET\tDET\tDefinite=Ind|Gender=Fem|Number=Sing\n" +
	"4\tpomme\tpomme\tNOUN\tNC\tGender=Fem|Number=Sing\n" +
	"5\t.\t.\tPUNCT\tPONCT\t_\n" +
	"\n" +
	"1\tTu\ttu\tPRON\tCLS\tNumber=Sing|Person=2\n" +
	"2\tmangeais\tmanger\tVERB\tV\tMood=Ind|Number=Sing|Person=2|Tense=Imp|VerbForm=Fin\n" +
	"3\tdu\tde\tDET\tDET\tDefinite=Def|Gender=Masc|Number=Sing\n" +
	"4\tpain\tpain\tNOUN\tNC\tGender=Masc|Number=Sing\n" +
	"5\t.\t.\tPUNCT\tPONCT\t_\n"

type failingAnnotator struct{ err error }

func (f failingAnnotator) Name() string { return "failing" }

func (f failingAnnotator) Annotate(ctx context.Context, text string) ([]frlex.Token, error) {
	return nil, f.err
}

func newTestServer(t *testing.T, annotator frlex.Annotator) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewHandler(annotator, frlex.NewFrenchAnalyzer(), logger).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatal(err)
		}
	}
	resp, err := http.Post(srv.URL+path, "application/json", &buf)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHandleAnalyze(t *testing.T) {
	srv := newTestServer(t, frlex.CoNLLUAnnotator{})

	resp := post(t, srv, "/api/analyze", map[string]string{"text": exampleCoNLLU})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got analyzeResponse
	decode(t, resp, &got)

	if len(got.Verbs) != 2 || got.Verbs[0].Tense != frlex.IndicativePresent || got.Verbs[1].Tense != frlex.IndicativeImperfect {
		t.Errorf("Verbs = %+v", got.Verbs)
	}
	if len(got.Words) != 3 || got.Words[0].Lemma != "manger" {
		t.Errorf("Words = %+v", got.Words)
	}
	if len(got.TenseCounts) != 2 || len(got.POSCounts) != 2 {
		t.Errorf("Counts = %+v %+v", got.TenseCounts, got.POSCounts)
	}
	if got.Scores == nil || got.Scores.Count != 3 {
		t.Errorf("Scores = %+v", got.Scores)
	}
	if got.Metadata.Annotator != "conllu" || got.Metadata.TokenCount != 10 || got.Metadata.SentenceCount != 2 {
		t.Errorf("Metadata = %+v", got.Metadata)
	}
}

func TestHandleAnalyzeLimits(t *testing.T) {
	srv := newTestServer(t, frlex.CoNLLUAnnotator{})

	resp := post(t, srv, "/api/analyze", `{"text": `+jsonString(exampleCoNLLU)+`, "min_frequency": 2}`)
	var got analyzeResponse
	decode(t, resp, &got)
	if len(got.Words) != 1 || got.Words[0].Lemma != "manger" {
		t.Errorf("min_frequency 2: %+v", got.Words)
	}

	resp = post(t, srv, "/api/analyze", `{"text": `+jsonString(exampleCoNLLU)+`, "max_words": 2}`)
	got = analyzeResponse{}
	decode(t, resp, &got)
	if len(got.Words) != 2 {
		t.Errorf("max_words 2: %+v", got.Words)
	}
}

func TestHandleAnalyzeEmptyText(t *testing.T) {
	srv := newTestServer(t, frlex.CoNLLUAnnotator{})

	resp := post(t, srv, "/api/analyze", `{"text": ""}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"verbs": []`) || !strings.Contains(string(body), `"words": []`) {
		t.Errorf("Expected empty lists:\n%s", body)
	}
}

func TestHandleVerbsAndWords(t *testing.T) {
	srv := newTestServer(t, frlex.CoNLLUAnnotator{})

	var verbs struct {
		Verbs       []frlex.VerbOccurrence `json:"verbs"`
		TenseCounts []frlex.LabelCount     `json:"tense_counts"`
	}
	decode(t, post(t, srv, "/api/verbs", map[string]string{"text": exampleCoNLLU}), &verbs)
	if len(verbs.Verbs) != 2 || verbs.Verbs[1].Context != "Je mange une pomme . Tu **mangeais** du pain ." {
		t.Errorf("Verbs = %+v", verbs.Verbs)
	}
	if len(verbs.TenseCounts) != 2 {
		t.Errorf("TenseCounts = %+v", verbs.TenseCounts)
	}

	var words struct {
		Words     []frlex.LexicalItem `json:"words"`
		POSCounts []frlex.LabelCount  `json:"pos_counts"`
	}
	decode(t, post(t, srv, "/api/words", map[string]interface{}{"text": exampleCoNLLU, "max_words": 1}), &words)
	if len(words.Words) != 1 || words.Words[0].Lemma != "manger" {
		t.Errorf("Words = %+v", words.Words)
	}
	if len(words.POSCounts) != 1 || words.POSCounts[0].Label != frlex.POSVerb {
		t.Errorf("POSCounts = %+v", words.POSCounts)
	}
}

func TestHandleReport(t *testing.T) {
	srv := newTestServer(t, frlex.CoNLLUAnnotator{})

	resp := post(t, srv, "/api/report", map[string]string{"text": exampleCoNLLU})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "<b>mange</b>") {
		t.Errorf("Expected the marked verb in the report:\n%s", body)
	}
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name      string
		annotator frlex.Annotator
		body      string
		status    int
		message   string
	}{
		{"invalid JSON", frlex.CoNLLUAnnotator{}, `{"text":`, http.StatusBadRequest, "invalid request body"},
		{"min frequency", frlex.CoNLLUAnnotator{}, `{"text": "x", "min_frequency": 0}`, http.StatusBadRequest, "min_frequency"},
		{"annotator failure", failingAnnotator{errors.New("boom")}, `{"text": "Je mange."}`, http.StatusBadGateway, "boom"},
		{"annotator timeout", failingAnnotator{context.DeadlineExceeded}, `{"text": "Je mange."}`, http.StatusGatewayTimeout, "deadline"},
		{"malformed CoNLL-U", frlex.CoNLLUAnnotator{}, `{"text": "1\tJe"}`, http.StatusBadGateway, "conllu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.annotator)
			resp := post(t, srv, "/api/analyze", tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("Status = %d, want %d", resp.StatusCode, tt.status)
			}

			var got struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}
			decode(t, resp, &got)
			if !strings.Contains(got.Error.Message, tt.message) {
				t.Errorf("Message = %q, want it to contain %q", got.Error.Message, tt.message)
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, frlex.CoNLLUAnnotator{})

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got map[string]string
	decode(t, resp, &got)
	if got["status"] != "healthy" || got["annotator"] != "conllu" {
		t.Errorf("Health = %v", got)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, frlex.CoNLLUAnnotator{})

	resp, err := http.Get(srv.URL + "/api/analyze")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Status = %d, want 405", resp.StatusCode)
	}
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, frlex.CoNLLUAnnotator{})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/analyze", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
		t.Errorf("Access-Control-Allow-Methods = %q", got)
	}
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
