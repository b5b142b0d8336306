// Package lexnorm normalizes tagged natural-language tokens into a
// clean, stable vocabulary while preserving negation and quantities.
package lexnorm

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/clinlex/lexnorm/pkg/lexnorm/internalerr"
	"github.com/clinlex/lexnorm/pkg/lexnorm/pipeline"
	"github.com/clinlex/lexnorm/pkg/lexnorm/store"
	"github.com/clinlex/lexnorm/pkg/lexnorm/token"
	"github.com/clinlex/lexnorm/pkg/lexnorm/tokensource"
)

// Engine is the main normalization facade: it drives texts through the
// external tagger and the normalization pipeline, and optionally
// persists the results.
type Engine struct {
	pipeline *pipeline.Pipeline
	tokens   tokensource.Source
	store    store.Store

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures an Engine instance.
type Options struct {
	// Pipeline is the normalization pipeline. Required.
	Pipeline *pipeline.Pipeline

	// Tokens is the external tagger boundary. Required for the
	// text-level methods; token-level normalization works without it.
	Tokens tokensource.Source

	// Store persists ingested documents. Optional.
	Store store.Store
}

// New creates an Engine with the given dependencies.
func New(opts Options) (*Engine, error) {
	if opts.Pipeline == nil {
		return nil, fmt.Errorf("engine requires a pipeline: %w", internalerr.ErrInvalidConfig)
	}
	return &Engine{
		pipeline: opts.Pipeline,
		tokens:   opts.Tokens,
		store:    opts.Store,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close shuts down the engine's store, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// NormalizeTokens normalizes an already-tagged token sequence.
func (e *Engine) NormalizeTokens(toks []token.Token) (string, error) {
	return e.pipeline.Normalize(toks)
}

// NormalizeText tags and normalizes a single text.
func (e *Engine) NormalizeText(ctx context.Context, text string) (string, error) {
	docs, err := e.NormalizeTexts(ctx, []string{text})
	if err != nil {
		return "", err
	}
	return docs[0], nil
}

// NormalizeTexts tags and normalizes a batch of texts, returning one
// normalized document per input, in input order.
func (e *Engine) NormalizeTexts(ctx context.Context, texts []string) ([]string, error) {
	if e.tokens == nil {
		return nil, fmt.Errorf("engine has no token source: %w", internalerr.ErrInvalidConfig)
	}
	if len(texts) == 0 {
		return []string{}, nil
	}

	batches, err := e.tokens.TokenizeBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	if len(batches) != len(texts) {
		return nil, fmt.Errorf("tagger returned %d sequences for %d texts: %w",
			len(batches), len(texts), internalerr.ErrContract)
	}
	return e.pipeline.NormalizeAll(batches)
}

// Ingest normalizes a text and persists the result under a fresh ULID.
func (e *Engine) Ingest(ctx context.Context, source, text string) (store.Doc, error) {
	if e.store == nil {
		return store.Doc{}, fmt.Errorf("engine has no store: %w", internalerr.ErrInvalidConfig)
	}

	normalized, err := e.NormalizeText(ctx, text)
	if err != nil {
		return store.Doc{}, err
	}

	doc := store.Doc{
		ID:         e.newID(),
		Source:     source,
		Text:       text,
		Normalized: normalized,
		Tokens:     strings.Fields(normalized),
		CreatedAt:  time.Now().UTC(),
	}
	if err := e.store.UpsertDoc(ctx, doc); err != nil {
		return store.Doc{}, fmt.Errorf("persist doc: %w", err)
	}
	return doc, nil
}

// FindByToken returns previously ingested documents whose normalized
// output contains the token.
func (e *Engine) FindByToken(ctx context.Context, tok string, limit int) ([]store.Doc, error) {
	if e.store == nil {
		return nil, fmt.Errorf("engine has no store: %w", internalerr.ErrInvalidConfig)
	}
	return e.store.GetDocsByToken(ctx, tok, limit)
}

func (e *Engine) newID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ulid.MustNew(ulid.Now(), e.entropy).String()
}
