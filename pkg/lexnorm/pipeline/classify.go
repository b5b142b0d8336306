package pipeline

import (
	"strings"

	"github.com/clinlex/lexnorm/pkg/lexnorm/fold"
	"github.com/clinlex/lexnorm/pkg/lexnorm/numeric"
	"github.com/clinlex/lexnorm/pkg/lexnorm/token"
)

// Disposition is the classification outcome for a single token.
type Disposition int

const (
	// Skip drops punctuation, whitespace, and anything neither
	// alphabetic nor numeric.
	Skip Disposition = iota
	// Numeric marks a quantity; its output depends on the numeric policy.
	Numeric
	// Negation marks a polarity term that always survives filtering.
	Negation
	// Stopword drops a low-value token.
	Stopword
	// Content keeps a regular token under its resolved lemma.
	Content
)

func (d Disposition) String() string {
	switch d {
	case Skip:
		return "SKIP"
	case Numeric:
		return "NUMERIC"
	case Negation:
		return "NEGATION"
	case Stopword:
		return "STOPWORD"
	case Content:
		return "CONTENT"
	}
	return "UNKNOWN"
}

// Resolve decides the canonical surface form for a token, first match
// wins: explicit override on the lowercased surface, then the tagger's
// lemma, then the lowercased surface itself.
//
// The verb/auxiliary branch currently behaves like the general one;
// it is kept separate as the seam where POS-specific handling lands.
func (p *Pipeline) Resolve(t token.Token) string {
	lw := strings.ToLower(t.Text)
	if canonical, ok := p.vocab.Override(lw); ok {
		return canonical
	}
	if t.POS == token.PosVerb || t.POS == token.PosAux {
		if t.Lemma != "" {
			return strings.ToLower(t.Lemma)
		}
		return lw
	}
	if t.Lemma != "" {
		return strings.ToLower(t.Lemma)
	}
	return lw
}

// Classify assigns a disposition and the output text for one token.
// Output is empty exactly for Skip and Stopword. The decision order is
// fixed: punctuation, numerics, negation, stopwords, content.
//
// Stopword and negation matching happens on the accent-folded
// lowercase resolved lemma, so accented spellings of configured terms
// match. Kept output is the unfolded resolved lemma unless the
// pipeline was built with FoldOutput.
func (p *Pipeline) Classify(t token.Token) (Disposition, string) {
	if t.IsPunctOrSpace || (!t.IsAlpha && !numeric.IsNumeric(t)) {
		return Skip, ""
	}

	if numeric.IsNumeric(t) {
		if p.policy == NumericPlaceholder {
			return Numeric, PlaceholderMark
		}
		return Numeric, t.Text
	}

	resolved := p.Resolve(t)
	if resolved == "" {
		return Skip, ""
	}

	form := fold.Accents(resolved)
	out := resolved
	if p.foldOutput {
		out = form
	}

	if p.vocab.IsNegation(form) {
		return Negation, out
	}
	if p.vocab.IsStopword(form) {
		return Stopword, ""
	}
	return Content, out
}
