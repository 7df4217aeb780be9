package frlex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeUDPipe answers like the UDPipe service, tagging every
// whitespace-separated word as X and every input line as a sentence.
type fakeUDPipe struct {
	mu     sync.Mutex
	chunks []string
	status int
}

func (f *fakeUDPipe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if f.status != 0 {
		http.Error(w, "model not found", f.status)
		return
	}
	if _, ok := r.PostForm["tokenizer"]; !ok {
		http.Error(w, "tokenizer not requested", http.StatusBadRequest)
		return
	}
	if _, ok := r.PostForm["tagger"]; !ok {
		http.Error(w, "tagger not requested", http.StatusBadRequest)
		return
	}

	data := r.PostForm.Get("data")
	f.mu.Lock()
	f.chunks = append(f.chunks, data)
	f.mu.Unlock()

	var sb strings.Builder
	for _, line := range strings.Split(data, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		for i, word := range words {
			fmt.Fprintf(&sb, "%d\t%s\t%s\tX\t_\t_\t0\tdep\t_\t_\n", i+1, word, strings.ToLower(word))
		}
		sb.WriteString("\n")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"model":  r.PostForm.Get("model"),
		"result": sb.String(),
	})
}

func newTestUDPipe(t *testing.T, fake *fakeUDPipe) *UDPipeAnnotator {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	annotator, err := NewUDPipeAnnotator(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return annotator
}

func TestUDPipeAnnotator(t *testing.T) {
	fake := &fakeUDPipe{}
	annotator := newTestUDPipe(t, fake)

	tokens, err := annotator.Annotate(context.Background(), "Je mange une pomme.")
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if len(fake.chunks) != 1 {
		t.Errorf("Expected 1 request, got %d", len(fake.chunks))
	}
	if len(tokens) != 4 {
		t.Fatalf("Expected 4 tokens, got %d", len(tokens))
	}
	if tokens[3].Text != "pomme." || tokens[3].Lemma != "pomme." {
		t.Errorf("Last token = %+v", tokens[3])
	}
	if annotator.Name() != "udpipe" {
		t.Errorf("Name() = %q", annotator.Name())
	}
}

func TestUDPipeAnnotatorChunks(t *testing.T) {
	fake := &fakeUDPipe{}
	annotator := newTestUDPipe(t, fake)
	annotator.MaxChunkBytes = 30

	text := "Je mange une pomme. Tu mangeais du pain. Il boit de l'eau."
	tokens, err := annotator.Annotate(context.Background(), text)
	if err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}
	if len(fake.chunks) < 2 {
		t.Fatalf("Expected several requests, got %q", fake.chunks)
	}
	for _, chunk := range fake.chunks {
		if len(chunk) > annotator.MaxChunkBytes {
			t.Errorf("Chunk %q exceeds %d bytes", chunk, annotator.MaxChunkBytes)
		}
	}

	if len(tokens) != 12 {
		t.Fatalf("Expected 12 tokens, got %d", len(tokens))
	}
	for i, tok := range tokens {
		if tok.Index != i {
			t.Errorf("Token %d has Index %d", i, tok.Index)
		}
		if tok.SentenceStart > i || tok.SentenceEnd <= i || tok.SentenceEnd > len(tokens) {
			t.Errorf("Token %d has span [%d,%d)", i, tok.SentenceStart, tok.SentenceEnd)
		}
	}
	if got := len(sentencesOf(tokens)); got != 3 {
		t.Errorf("Expected 3 sentences, got %d", got)
	}
}

func TestUDPipeAnnotatorStatus(t *testing.T) {
	annotator := newTestUDPipe(t, &fakeUDPipe{status: http.StatusBadRequest})

	_, err := annotator.Annotate(context.Background(), "Bonjour.")
	if !errors.Is(err, ErrAnnotatorStatus) {
		t.Errorf("Annotate() error = %v, want ErrAnnotatorStatus", err)
	}
}

func TestUDPipeAnnotatorEmpty(t *testing.T) {
	fake := &fakeUDPipe{}
	annotator := newTestUDPipe(t, fake)

	tokens, err := annotator.Annotate(context.Background(), "  \n ")
	if err != nil {
		t.Fatal(err)
	}
	if tokens == nil || len(tokens) != 0 {
		t.Errorf("Expected no tokens, got %#v", tokens)
	}
	if len(fake.chunks) != 0 {
		t.Errorf("Expected no request, got %d", len(fake.chunks))
	}
}

func TestUDPipeAnnotatorCancelled(t *testing.T) {
	annotator := newTestUDPipe(t, &fakeUDPipe{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := annotator.Annotate(ctx, "Bonjour."); !errors.Is(err, context.Canceled) {
		t.Errorf("Annotate() error = %v, want context.Canceled", err)
	}
}

func TestNewUDPipeAnnotatorInvalidURL(t *testing.T) {
	if _, err := NewUDPipeAnnotator("not a url"); err == nil {
		t.Error("Expected an error for an invalid endpoint")
	}
	a, err := NewUDPipeAnnotator("")
	if err != nil {
		t.Fatal(err)
	}
	if a.URL != DefaultUDPipeURL || a.Model != DefaultUDPipeModel {
		t.Errorf("Defaults = %q, %q", a.URL, a.Model)
	}
}
