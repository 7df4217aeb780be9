package frlex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultUDPipeURL is the public UDPipe REST endpoint.
	DefaultUDPipeURL = "https://lindat.mff.cuni.cz/services/udpipe/api/process"
	// DefaultUDPipeModel selects the service's default French model.
	DefaultUDPipeModel = "french"
	// DefaultMaxChunkBytes bounds the size of a single request body.
	DefaultMaxChunkBytes = 64 * 1024
)

// UDPipeAnnotator annotates text with a UDPipe REST service. Long texts are
// sent in sentence-aligned chunks, in order.
type UDPipeAnnotator struct {
	URL           string
	Model         string
	MaxChunkBytes int
	Client        *http.Client

	segmenter *punktSentenceTokenizer
}

// NewUDPipeAnnotator creates an annotator for the service at endpoint, or at
// DefaultUDPipeURL when endpoint is empty.
func NewUDPipeAnnotator(endpoint string) (*UDPipeAnnotator, error) {
	if endpoint == "" {
		endpoint = DefaultUDPipeURL
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("udpipe: invalid endpoint: %w", err)
	}
	seg, err := newPunktSentenceTokenizer()
	if err != nil {
		return nil, fmt.Errorf("udpipe: %w", err)
	}
	return &UDPipeAnnotator{
		URL:           endpoint,
		Model:         DefaultUDPipeModel,
		MaxChunkBytes: DefaultMaxChunkBytes,
		Client:        &http.Client{Timeout: 60 * time.Second},
		segmenter:     seg,
	}, nil
}

// Name returns "udpipe".
func (ua *UDPipeAnnotator) Name() string { return "udpipe" }

// Annotate sends text to the service and parses the CoNLL-U reply.
func (ua *UDPipeAnnotator) Annotate(ctx context.Context, text string) ([]Token, error) {
	tokens := []Token{}
	for _, chunk := range ua.chunks(text) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		toks, err := ua.process(ctx, chunk)
		if err != nil {
			return nil, err
		}
		offset := len(tokens)
		for _, tok := range toks {
			tok.Index += offset
			tok.SentenceStart += offset
			tok.SentenceEnd += offset
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

// chunks splits text into pieces of at most MaxChunkBytes made of whole
// sentences. A sentence longer than the limit is sent alone.
func (ua *UDPipeAnnotator) chunks(text string) []string {
	if isBlank(text) {
		return nil
	}
	limit := ua.MaxChunkBytes
	if limit <= 0 || len(text) <= limit {
		return []string{text}
	}

	var out []string
	var cur strings.Builder
	for _, s := range ua.segmenter.segment(text) {
		if cur.Len() > 0 && cur.Len()+1+len(s) > limit {
			out = append(out, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(s)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

type udpipeResponse struct {
	Model  string `json:"model"`
	Result string `json:"result"`
}

// process annotates one chunk.
func (ua *UDPipeAnnotator) process(ctx context.Context, chunk string) ([]Token, error) {
	form := url.Values{}
	form.Set("data", chunk)
	form.Set("model", ua.Model)
	form.Set("tokenizer", "")
	form.Set("tagger", "")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ua.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("udpipe: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	client := ua.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("udpipe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("udpipe: %w: %d %s", ErrAnnotatorStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var reply udpipeResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("udpipe: decode reply: %w", err)
	}
	toks, err := ParseCoNLLU(strings.NewReader(reply.Result))
	if err != nil {
		return nil, fmt.Errorf("udpipe: %w", err)
	}
	return toks, nil
}
