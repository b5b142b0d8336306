// Package vocab holds the immutable vocabulary a normalization pipeline
// is constructed with: the stopword set, the surface-form lemma
// overrides, and the negation terms that must survive filtering.
package vocab

import (
	"fmt"
	"strings"

	"github.com/clinlex/lexnorm/pkg/lexnorm/fold"
	"github.com/clinlex/lexnorm/pkg/lexnorm/internalerr"
)

// negationParticle is never allowed into the stopword set, whatever the
// source collections say. Dropping it would flip sentence polarity.
const negationParticle = "no"

// LemmaGroup maps a canonical lemma to the surface forms that should
// normalize to it.
//
// Groups are applied in declaration order and the mapping is inverted
// variant -> canonical. When the same surface form appears under two
// canonicals, the later group wins. Keeping groups in a slice rather
// than a map makes that precedence deterministic.
type LemmaGroup struct {
	Canonical string
	Variants  []string
}

// Vocabulary is the validated, read-only view over the three
// configuration collections. All lookups use pre-computed case-folded
// structures built once here, so a single Vocabulary is safe to share
// across concurrent pipeline invocations.
type Vocabulary struct {
	// stopwords and negation are keyed by the comparison form:
	// lowercased and accent-folded.
	stopwords map[string]struct{}
	negation  map[string]struct{}

	// overrides is keyed by the lowercased surface form, unfolded.
	overrides map[string]string
}

// New validates the three collections and builds the derived lookup
// structures. All three must be non-nil; a nil collection means the
// loader upstream failed its job, and construction fails immediately
// rather than deferring the problem to the first token.
func New(stopwords []string, lemmas []LemmaGroup, negation []string) (*Vocabulary, error) {
	if stopwords == nil {
		return nil, fmt.Errorf("stopwords collection is nil: %w", internalerr.ErrInvalidConfig)
	}
	if lemmas == nil {
		return nil, fmt.Errorf("lemmas collection is nil: %w", internalerr.ErrInvalidConfig)
	}
	if negation == nil {
		return nil, fmt.Errorf("negation collection is nil: %w", internalerr.ErrInvalidConfig)
	}

	v := &Vocabulary{
		stopwords: make(map[string]struct{}, len(stopwords)),
		negation:  make(map[string]struct{}, len(negation)),
		overrides: make(map[string]string),
	}

	for _, w := range stopwords {
		key := comparisonForm(w)
		if key == "" || key == negationParticle {
			continue
		}
		v.stopwords[key] = struct{}{}
	}

	for i, group := range lemmas {
		canonical := strings.ToLower(strings.TrimSpace(group.Canonical))
		if canonical == "" {
			return nil, fmt.Errorf("lemma group %d has empty canonical form: %w", i, internalerr.ErrInvalidConfig)
		}
		if group.Variants == nil {
			return nil, fmt.Errorf("lemma group %q has nil variants list: %w", canonical, internalerr.ErrInvalidConfig)
		}
		for _, variant := range group.Variants {
			key := strings.ToLower(strings.TrimSpace(variant))
			if key == "" {
				continue
			}
			// Later groups overwrite earlier ones.
			v.overrides[key] = canonical
		}
	}

	for _, w := range negation {
		if key := comparisonForm(w); key != "" {
			v.negation[key] = struct{}{}
		}
	}

	return v, nil
}

// comparisonForm lowercases and accent-folds a term. Stopword and
// negation matching happens in this space so that "Ningún" and
// "ningun" are the same word.
func comparisonForm(s string) string {
	return fold.Accents(strings.ToLower(strings.TrimSpace(s)))
}

// IsStopword reports whether the comparison form is a stopword.
// The argument must already be lowercased and accent-folded.
func (v *Vocabulary) IsStopword(form string) bool {
	_, ok := v.stopwords[form]
	return ok
}

// IsNegation reports whether the comparison form is a negation term to
// always retain. The argument must already be lowercased and folded.
func (v *Vocabulary) IsNegation(form string) bool {
	_, ok := v.negation[form]
	return ok
}

// Override returns the canonical lemma for a lowercased surface form,
// if one was configured.
func (v *Vocabulary) Override(lowerSurface string) (string, bool) {
	canonical, ok := v.overrides[lowerSurface]
	return canonical, ok
}

// Stats summarizes the vocabulary contents, mainly for startup logging.
type Stats struct {
	Stopwords int
	Overrides int
	Negation  int
}

// Size returns collection sizes after validation and derivation.
func (v *Vocabulary) Size() Stats {
	return Stats{
		Stopwords: len(v.stopwords),
		Overrides: len(v.overrides),
		Negation:  len(v.negation),
	}
}
