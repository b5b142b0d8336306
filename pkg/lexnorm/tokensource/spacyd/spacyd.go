// Package spacyd calls a spaCy tagger sidecar over HTTP JSON. The
// sidecar loads the statistical model once as a process-wide singleton;
// this client is the explicit dependency the pipeline is constructed
// with instead of ambient global state.
package spacyd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/clinlex/lexnorm/pkg/lexnorm/internalerr"
	"github.com/clinlex/lexnorm/pkg/lexnorm/token"
)

// Client calls the sidecar's /tokenize endpoint.
type Client struct {
	BaseURL string

	HTTPClient *http.Client
}

type tokenizeRequest struct {
	Texts []string `json:"texts"`
}

type wireToken struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     string `json:"pos"`
	IsAlpha bool   `json:"is_alpha"`
	IsPunct bool   `json:"is_punct"`
	IsSpace bool   `json:"is_space"`
	LikeNum bool   `json:"like_num"`
}

type tokenizeResponse struct {
	Docs [][]wireToken `json:"docs"`

	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Tokenize tags a single text.
func (c *Client) Tokenize(ctx context.Context, text string) ([]token.Token, error) {
	docs, err := c.TokenizeBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return docs[0], nil
}

// TokenizeBatch tags several texts in one round trip. The sidecar must
// answer with exactly one token sequence per input, in input order;
// anything else is a contract violation.
func (c *Client) TokenizeBatch(ctx context.Context, texts []string) ([][]token.Token, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("spacyd: base URL required: %w", internalerr.ErrInvalidConfig)
	}
	if len(texts) == 0 {
		return [][]token.Token{}, nil
	}

	payload, err := c.send(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(payload.Docs) != len(texts) {
		return nil, fmt.Errorf("spacyd: %d docs for %d texts: %w", len(payload.Docs), len(texts), internalerr.ErrContract)
	}

	docs := make([][]token.Token, len(payload.Docs))
	for i, wire := range payload.Docs {
		toks := make([]token.Token, len(wire))
		for j, w := range wire {
			toks[j] = token.Token{
				Text:           w.Text,
				Lemma:          w.Lemma,
				POS:            w.POS,
				IsAlpha:        w.IsAlpha,
				IsPunctOrSpace: w.IsPunct || w.IsSpace,
				LikeNum:        w.LikeNum,
			}
		}
		docs[i] = toks
	}
	return docs, nil
}

func (c *Client) send(ctx context.Context, texts []string) (*tokenizeResponse, error) {
	reqBody, err := json.Marshal(tokenizeRequest{Texts: texts})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/tokenize", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spacyd: HTTP %d", resp.StatusCode)
	}
	var payload tokenizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("spacyd error: %s", payload.Error.Message)
	}
	return &payload, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}
