package spacyd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinlex/lexnorm/pkg/lexnorm/internalerr"
	"github.com/clinlex/lexnorm/pkg/lexnorm/token"
)

func TestTokenizeBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tokenize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req tokenizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if len(req.Texts) != 2 {
			t.Errorf("got %d texts, want 2", len(req.Texts))
		}

		json.NewEncoder(w).Encode(tokenizeResponse{Docs: [][]wireToken{
			{
				{Text: "No", Lemma: "no", POS: "ADV", IsAlpha: true},
				{Text: "toma", Lemma: "tomar", POS: "VERB", IsAlpha: true},
				{Text: ".", IsPunct: true},
			},
			{
				{Text: "120/80", LikeNum: true},
			},
		}})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	docs, err := c.TokenizeBatch(context.Background(), []string{"No toma.", "120/80"})
	if err != nil {
		t.Fatal(err)
	}

	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	want := token.Token{Text: "toma", Lemma: "tomar", POS: token.PosVerb, IsAlpha: true}
	if docs[0][1] != want {
		t.Errorf("docs[0][1] = %+v, want %+v", docs[0][1], want)
	}
	if !docs[0][2].IsPunctOrSpace {
		t.Error("punctuation flag should map to IsPunctOrSpace")
	}
	if !docs[1][0].LikeNum {
		t.Error("like_num should carry through")
	}
}

func TestTokenizeSingle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(tokenizeResponse{Docs: [][]wireToken{
			{{Text: "agua", Lemma: "agua", POS: "NOUN", IsAlpha: true}},
		}})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	toks, err := c.Tokenize(context.Background(), "agua")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Text != "agua" {
		t.Errorf("toks = %+v", toks)
	}
}

func TestTokenizeBatchCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(tokenizeResponse{Docs: [][]wireToken{}})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	_, err := c.TokenizeBatch(context.Background(), []string{"uno", "dos"})
	if !errors.Is(err, internalerr.ErrContract) {
		t.Errorf("doc count mismatch should be a contract violation, got %v", err)
	}
}

func TestSidecarError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"message": "model not loaded"}}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.TokenizeBatch(context.Background(), []string{"x"}); err == nil {
		t.Error("sidecar error payload should fail the call")
	}
}

func TestHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.TokenizeBatch(context.Background(), []string{"x"}); err == nil {
		t.Error("non-200 should fail the call")
	}
}

func TestMissingBaseURL(t *testing.T) {
	c := &Client{}
	if _, err := c.TokenizeBatch(context.Background(), []string{"x"}); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("missing base URL should be a configuration error, got %v", err)
	}
}

func TestEmptyBatch(t *testing.T) {
	c := &Client{BaseURL: "http://unused.invalid"}
	docs, err := c.TokenizeBatch(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 0 {
		t.Errorf("empty batch should not hit the network and yield empty, got %v", docs)
	}
}
