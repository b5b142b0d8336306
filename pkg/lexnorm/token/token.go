package token

import (
	"fmt"

	"github.com/clinlex/lexnorm/pkg/lexnorm/internalerr"
)

// Coarse part-of-speech tags as emitted by the external tagger.
// The pipeline only needs to distinguish verbs and auxiliaries from
// everything else; other values pass through untouched.
const (
	PosVerb = "VERB"
	PosAux  = "AUX"
)

// Token is a single lexical unit produced by the external
// tokenizer/lemmatizer. It is read-only to this library: the pipeline
// derives values from it but never mutates it.
type Token struct {
	// Text is the original surface string. Never empty for a valid token.
	Text string

	// Lemma is the tagger's candidate base form. May be empty, in which
	// case resolution falls back to the lowercased surface text.
	Lemma string

	// POS is the coarse part-of-speech tag (e.g. "VERB", "NOUN").
	POS string

	// IsAlpha reports whether the tagger classified the token as
	// purely alphabetic.
	IsAlpha bool

	// IsPunctOrSpace reports whether the token is punctuation or
	// whitespace.
	IsPunctOrSpace bool

	// LikeNum is the tagger's own numeric-looking judgement. The
	// numeric classifier extends it with a clinical-format grammar.
	LikeNum bool
}

// Validate checks the collaborator contract for a produced token.
// A token with an empty surface string is a contract violation and is
// rejected immediately rather than silently coerced.
func (t Token) Validate() error {
	if t.Text == "" {
		return fmt.Errorf("token with empty surface text: %w", internalerr.ErrContract)
	}
	return nil
}
