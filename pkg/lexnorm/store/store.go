// Package store defines persistence for normalized documents.
package store

import (
	"context"
	"time"
)

// Store persists normalized documents and answers token lookups.
type Store interface {
	Close() error

	// UpsertDoc inserts or replaces a document by ID.
	UpsertDoc(ctx context.Context, d Doc) error

	// GetDoc fetches a document by ID; internalerr.ErrNotFound when absent.
	GetDoc(ctx context.Context, id string) (Doc, error)

	// GetDocsByToken returns documents whose normalized output contains
	// the token, newest first, up to limit.
	GetDocsByToken(ctx context.Context, tok string, limit int) ([]Doc, error)

	// Recent returns the most recently created documents, newest first.
	Recent(ctx context.Context, limit int) ([]Doc, error)
}

// Doc is a stored normalization result.
type Doc struct {
	ID         string // ULID assigned at ingest
	Source     string // where the text came from (file, URL, batch name)
	Text       string // original raw text
	Normalized string // space-joined normalized document
	Tokens     []string
	CreatedAt  time.Time
}
