package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/clinlex/lexnorm/pkg/lexnorm/internalerr"
	"github.com/clinlex/lexnorm/pkg/lexnorm/store"
)

func openTest(t *testing.T) store.Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "lexnorm.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsertAndGet(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	doc := store.Doc{
		ID:         "01HZX0000000000000000000A1",
		Source:     "notes.txt",
		Text:       "La mamá no toma agua",
		Normalized: "mamá no tomar agua",
		Tokens:     []string{"mamá", "no", "tomar", "agua"},
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.UpsertDoc(ctx, doc); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetDoc(ctx, doc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Normalized != doc.Normalized || got.Source != doc.Source {
		t.Errorf("got %+v", got)
	}
	if len(got.Tokens) != 4 {
		t.Errorf("tokens = %v", got.Tokens)
	}
}

func TestUpsertReplaces(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	doc := store.Doc{ID: "id1", Text: "uno", Normalized: "uno", Tokens: []string{"uno"}}
	if err := s.UpsertDoc(ctx, doc); err != nil {
		t.Fatal(err)
	}
	doc.Normalized = "dos"
	doc.Tokens = []string{"dos"}
	if err := s.UpsertDoc(ctx, doc); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetDoc(ctx, "id1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Normalized != "dos" || len(got.Tokens) != 1 || got.Tokens[0] != "dos" {
		t.Errorf("replace failed: %+v", got)
	}
}

func TestUpsertRequiresID(t *testing.T) {
	s := openTest(t)
	err := s.UpsertDoc(context.Background(), store.Doc{Text: "x", Normalized: "x"})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("missing ID should fail, got %v", err)
	}
}

func TestGetDocNotFound(t *testing.T) {
	s := openTest(t)
	_, err := s.GetDoc(context.Background(), "missing")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDocsByToken(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, tokens := range [][]string{
		{"fiebre", "alta"},
		{"fiebre", "leve"},
		{"tos"},
	} {
		doc := store.Doc{
			ID:         []string{"a", "b", "c"}[i],
			Text:       "t",
			Normalized: "n",
			Tokens:     tokens,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		if err := s.UpsertDoc(ctx, doc); err != nil {
			t.Fatal(err)
		}
	}

	docs, err := s.GetDocsByToken(ctx, "fiebre", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	// Newest first.
	if docs[0].ID != "b" || docs[1].ID != "a" {
		t.Errorf("order = %s, %s", docs[0].ID, docs[1].ID)
	}

	docs, err = s.GetDocsByToken(ctx, "ausente", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 0 {
		t.Errorf("unknown token should match nothing, got %d", len(docs))
	}
}

func TestRecent(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		doc := store.Doc{
			ID:         string(rune('a' + i)),
			Text:       "t",
			Normalized: "n",
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		if err := s.UpsertDoc(ctx, doc); err != nil {
			t.Fatal(err)
		}
	}

	docs, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 || docs[0].ID != "e" {
		t.Errorf("recent = %+v", docs)
	}
}
