// Package sqlite persists normalized documents in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/clinlex/lexnorm/pkg/lexnorm/internalerr"
	"github.com/clinlex/lexnorm/pkg/lexnorm/store"
)

// sqliteStore implements store.Store over a single SQLite file.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite database with WAL mode
// enabled and the schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	source TEXT,
	text TEXT NOT NULL,
	normalized TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS doc_tokens (
	doc_id TEXT NOT NULL,
	token TEXT NOT NULL,
	UNIQUE(doc_id, token),
	FOREIGN KEY(doc_id) REFERENCES docs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_doc_tokens_token ON doc_tokens(token);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertDoc inserts or replaces a document and its token index.
func (s *sqliteStore) UpsertDoc(ctx context.Context, d store.Doc) error {
	if d.ID == "" {
		return fmt.Errorf("doc ID required: %w", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO docs (id, source, text, normalized, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	source=excluded.source,
	text=excluded.text,
	normalized=excluded.normalized,
	created_at=excluded.created_at;
`
	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	if _, err := tx.ExecContext(ctx, stmt, d.ID, d.Source, d.Text, d.Normalized,
		createdAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return err
	}

	if err := replaceDocTokens(ctx, tx, d.ID, uniqueStrings(d.Tokens)); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceDocTokens(ctx context.Context, tx *sql.Tx, docID string, tokens []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM doc_tokens WHERE doc_id=?`, docID); err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO doc_tokens (doc_id, token) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, docID, tok); err != nil {
			return err
		}
	}
	return nil
}

// GetDoc fetches a document by ID.
func (s *sqliteStore) GetDoc(ctx context.Context, id string) (store.Doc, error) {
	const stmt = `SELECT id, source, text, normalized, created_at FROM docs WHERE id=?`
	d, err := scanDoc(s.db.QueryRowContext(ctx, stmt, id))
	if errors.Is(err, sql.ErrNoRows) {
		return store.Doc{}, fmt.Errorf("doc %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return store.Doc{}, err
	}
	if err := s.loadTokens(ctx, &d); err != nil {
		return store.Doc{}, err
	}
	return d, nil
}

// GetDocsByToken returns documents containing the token, newest first.
func (s *sqliteStore) GetDocsByToken(ctx context.Context, tok string, limit int) ([]store.Doc, error) {
	if limit <= 0 {
		limit = 10
	}
	const stmt = `
SELECT d.id, d.source, d.text, d.normalized, d.created_at
FROM docs d
JOIN doc_tokens t ON t.doc_id = d.id
WHERE t.token = ?
ORDER BY d.created_at DESC
LIMIT ?`
	return s.queryDocs(ctx, stmt, tok, limit)
}

// Recent returns the most recently created documents, newest first.
func (s *sqliteStore) Recent(ctx context.Context, limit int) ([]store.Doc, error) {
	if limit <= 0 {
		limit = 10
	}
	const stmt = `SELECT id, source, text, normalized, created_at FROM docs ORDER BY created_at DESC LIMIT ?`
	return s.queryDocs(ctx, stmt, limit)
}

func (s *sqliteStore) queryDocs(ctx context.Context, stmt string, args ...any) ([]store.Doc, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []store.Doc
	for rows.Next() {
		d, err := scanDoc(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range docs {
		if err := s.loadTokens(ctx, &docs[i]); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

func (s *sqliteStore) loadTokens(ctx context.Context, d *store.Doc) error {
	rows, err := s.db.QueryContext(ctx, `SELECT token FROM doc_tokens WHERE doc_id=? ORDER BY token`, d.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var tok string
		if err := rows.Scan(&tok); err != nil {
			return err
		}
		d.Tokens = append(d.Tokens, tok)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDoc(row rowScanner) (store.Doc, error) {
	var d store.Doc
	var createdAt string
	if err := row.Scan(&d.ID, &d.Source, &d.Text, &d.Normalized, &createdAt); err != nil {
		return store.Doc{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Doc{}, fmt.Errorf("parse created_at: %w", err)
	}
	d.CreatedAt = ts
	return d, nil
}

func uniqueStrings(in []string) []string {
	set := make(map[string]struct{}, len(in))
	var out []string
	for _, val := range in {
		if val == "" {
			continue
		}
		if _, ok := set[val]; ok {
			continue
		}
		set[val] = struct{}{}
		out = append(out, val)
	}
	return out
}
