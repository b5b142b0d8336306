// Package pipeline normalizes tagged token sequences into a clean
// vocabulary: stopwords dropped, negation and quantities preserved,
// surface forms resolved to canonical lemmas.
package pipeline

import (
	"fmt"
	"strings"
	"sync"

	"github.com/clinlex/lexnorm/pkg/lexnorm/internalerr"
	"github.com/clinlex/lexnorm/pkg/lexnorm/token"
	"github.com/clinlex/lexnorm/pkg/lexnorm/vocab"
)

// NumericPolicy selects what happens to a token classified as numeric.
type NumericPolicy int

const (
	// NumericPreserve passes the original numeric text through.
	NumericPreserve NumericPolicy = iota
	// NumericPlaceholder rewrites every quantity to PlaceholderMark.
	NumericPlaceholder
)

// PlaceholderMark is the generic quantity marker emitted under
// NumericPlaceholder.
const PlaceholderMark = "<num>"

// ParseNumericPolicy maps the configuration spelling of a policy to
// its value. Accepted: "preserve", "placeholder".
func ParseNumericPolicy(s string) (NumericPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "preserve":
		return NumericPreserve, nil
	case "placeholder":
		return NumericPlaceholder, nil
	}
	return 0, fmt.Errorf("unknown numeric policy %q: %w", s, internalerr.ErrInvalidConfig)
}

// Options configures a Pipeline at construction time.
type Options struct {
	// Numeric selects the quantity output policy.
	Numeric NumericPolicy

	// FoldOutput emits kept tokens accent-folded instead of under
	// their original spelling. Matching is folded either way.
	FoldOutput bool

	// Workers bounds the concurrency of NormalizeAll. Zero or
	// negative means DefaultWorkers.
	Workers int
}

// DefaultWorkers is the NormalizeAll concurrency when Options.Workers
// is unset.
const DefaultWorkers = 4

// Pipeline applies the normalization rules over token sequences. It
// holds no mutable state beyond the immutable vocabulary it was built
// with, so one Pipeline may serve concurrent callers.
type Pipeline struct {
	vocab      *vocab.Vocabulary
	policy     NumericPolicy
	foldOutput bool
	workers    int
}

// New builds a Pipeline over a validated vocabulary.
func New(v *vocab.Vocabulary, opts Options) (*Pipeline, error) {
	if v == nil {
		return nil, fmt.Errorf("pipeline requires a vocabulary: %w", internalerr.ErrInvalidConfig)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pipeline{
		vocab:      v,
		policy:     opts.Numeric,
		foldOutput: opts.FoldOutput,
		workers:    workers,
	}, nil
}

// Normalize classifies every token and joins the kept outputs with
// single spaces. An empty sequence yields an empty string. A token
// violating the producer contract (empty surface text) fails the whole
// document immediately.
func (p *Pipeline) Normalize(toks []token.Token) (string, error) {
	var kept []string
	for i, t := range toks {
		if err := t.Validate(); err != nil {
			return "", fmt.Errorf("token %d: %w", i, err)
		}
		if _, out := p.Classify(t); out != "" {
			kept = append(kept, out)
		}
	}
	// Collapse any residual whitespace runs inside kept outputs.
	return strings.Join(strings.Fields(strings.Join(kept, " ")), " "), nil
}

// NormalizeAll normalizes a batch of token sequences concurrently and
// returns one document per input, in input order. Order is preserved
// by writing results at their input index, not by completion order.
func (p *Pipeline) NormalizeAll(batches [][]token.Token) ([]string, error) {
	if len(batches) == 0 {
		return []string{}, nil
	}

	results := make([]string, len(batches))
	indexes := make(chan int)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	workers := p.workers
	if workers > len(batches) {
		workers = len(batches)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				doc, err := p.Normalize(batches[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("document %d: %w", i, err)
					}
					mu.Unlock()
					continue
				}
				results[i] = doc
			}
		}()
	}

	for i := range batches {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
