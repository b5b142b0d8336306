// Package memstore is an in-memory implementation of store.Store for
// tests and throwaway runs.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/clinlex/lexnorm/pkg/lexnorm/internalerr"
	"github.com/clinlex/lexnorm/pkg/lexnorm/store"
)

// Store is an in-memory store.Store.
type Store struct {
	mu   sync.RWMutex
	docs map[string]store.Doc
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{docs: make(map[string]store.Doc)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertDoc inserts or replaces a document by ID.
func (s *Store) UpsertDoc(ctx context.Context, d store.Doc) error {
	if d.ID == "" {
		return fmt.Errorf("doc ID required: %w", internalerr.ErrInvalidInput)
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[d.ID] = copyDoc(d)
	return nil
}

// GetDoc returns a document by ID.
func (s *Store) GetDoc(ctx context.Context, id string) (store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if doc, ok := s.docs[id]; ok {
		return copyDoc(doc), nil
	}
	return store.Doc{}, fmt.Errorf("doc %s: %w", id, internalerr.ErrNotFound)
}

// GetDocsByToken returns documents containing the token, newest first.
func (s *Store) GetDocsByToken(ctx context.Context, tok string, limit int) ([]store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []store.Doc
	for _, d := range s.docs {
		for _, t := range d.Tokens {
			if t == tok {
				docs = append(docs, copyDoc(d))
				break
			}
		}
	}
	return trimNewest(docs, limit), nil
}

// Recent returns the most recently created documents, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]store.Doc, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, copyDoc(d))
	}
	return trimNewest(docs, limit), nil
}

func trimNewest(docs []store.Doc, limit int) []store.Doc {
	if limit <= 0 {
		limit = 10
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	if len(docs) > limit {
		docs = docs[:limit]
	}
	return docs
}

func copyDoc(d store.Doc) store.Doc {
	out := d
	out.Tokens = append([]string(nil), d.Tokens...)
	return out
}
