// Command lexnorm normalizes texts read from a file or stdin, one text
// per line, using an external spaCy tagger sidecar. With --db the
// results are also persisted to a SQLite corpus store.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clinlex/lexnorm/pkg/lexnorm"
	"github.com/clinlex/lexnorm/pkg/lexnorm/config"
	"github.com/clinlex/lexnorm/pkg/lexnorm/store"
	sqlitestore "github.com/clinlex/lexnorm/pkg/lexnorm/store/sqlite"
	"github.com/clinlex/lexnorm/pkg/lexnorm/tokensource/spacyd"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (optional; built-in defaults otherwise)")
		tokenizer  = flag.String("tokenizer", "", "Base URL of the spaCy tagger sidecar (required)")
		inputPath  = flag.String("input", "", "Input file, one text per line (default stdin)")
		dbPath     = flag.String("db", "", "SQLite database to ingest results into (optional)")
		source     = flag.String("source", "stdin", "Source label stored with ingested documents")
	)
	flag.Parse()

	if *tokenizer == "" {
		log.Fatal("--tokenizer required")
	}

	ctx := context.Background()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal("Failed to load configuration:", err)
		}
		cfg = loaded
	}

	v, pipe, err := cfg.Build()
	if err != nil {
		log.Fatal("Failed to build pipeline:", err)
	}
	stats := v.Size()
	log.Printf("Vocabulary: %d stopwords, %d overrides, %d negation terms",
		stats.Stopwords, stats.Overrides, stats.Negation)

	var st store.Store
	if *dbPath != "" {
		st, err = sqlitestore.Open(ctx, *dbPath)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
	}

	engine, err := lexnorm.New(lexnorm.Options{
		Pipeline: pipe,
		Tokens:   &spacyd.Client{BaseURL: *tokenizer},
		Store:    st,
	})
	if err != nil {
		log.Fatal("Failed to create engine:", err)
	}
	defer engine.Close()

	texts, err := readTexts(*inputPath)
	if err != nil {
		log.Fatal("Failed to read input:", err)
	}

	if st != nil {
		for _, text := range texts {
			doc, err := engine.Ingest(ctx, *source, text)
			if err != nil {
				log.Fatal("Failed to ingest:", err)
			}
			fmt.Printf("%s\t%s\n", doc.ID, doc.Normalized)
		}
		log.Printf("Ingested %d documents into %s", len(texts), *dbPath)
		return
	}

	docs, err := engine.NormalizeTexts(ctx, texts)
	if err != nil {
		log.Fatal("Failed to normalize:", err)
	}
	for _, doc := range docs {
		fmt.Println(doc)
	}
}

func readTexts(path string) ([]string, error) {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var texts []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			texts = append(texts, line)
		}
	}
	return texts, scanner.Err()
}
