// Package tokensource defines the boundary with the external
// tokenizer/lemmatizer. The normalization core never parses text
// itself; it consumes tagged tokens from a Source injected at
// construction, which keeps pipelines testable with fake producers.
package tokensource

import (
	"context"

	"github.com/clinlex/lexnorm/pkg/lexnorm/token"
)

// Source produces an ordered, finite token sequence per input text.
// Implementations own the only slow call in the system, so they take a
// context for cancellation and timeouts; the in-memory core does not.
type Source interface {
	// Tokenize tags a single text.
	Tokenize(ctx context.Context, text string) ([]token.Token, error)

	// TokenizeBatch tags several texts and returns one sequence per
	// input, in input order.
	TokenizeBatch(ctx context.Context, texts []string) ([][]token.Token, error)
}
