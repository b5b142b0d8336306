package vocab

import (
	"errors"
	"testing"

	"github.com/clinlex/lexnorm/pkg/lexnorm/internalerr"
)

func TestNewRejectsNilCollections(t *testing.T) {
	cases := []struct {
		name      string
		stopwords []string
		lemmas    []LemmaGroup
		negation  []string
	}{
		{"nil stopwords", nil, []LemmaGroup{}, []string{}},
		{"nil lemmas", []string{}, nil, []string{}},
		{"nil negation", []string{}, []LemmaGroup{}, nil},
	}

	for _, tc := range cases {
		_, err := New(tc.stopwords, tc.lemmas, tc.negation)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: error should wrap ErrInvalidConfig, got %v", tc.name, err)
		}
	}
}

func TestNewRejectsMalformedLemmaGroups(t *testing.T) {
	_, err := New([]string{}, []LemmaGroup{{Canonical: "", Variants: []string{"x"}}}, []string{})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("empty canonical should fail construction, got %v", err)
	}

	_, err = New([]string{}, []LemmaGroup{{Canonical: "checar", Variants: nil}}, []string{})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("nil variants should fail construction, got %v", err)
	}
}

func TestNegationParticleNeverStopword(t *testing.T) {
	v, err := New([]string{"no", "No", "la", "y"}, []LemmaGroup{}, []string{"no"})
	if err != nil {
		t.Fatal(err)
	}

	if v.IsStopword("no") {
		t.Error(`"no" must never be a stopword`)
	}
	if !v.IsStopword("la") {
		t.Error(`"la" should be a stopword`)
	}
	if !v.IsNegation("no") {
		t.Error(`"no" should be a negation term`)
	}
}

func TestStopwordsFoldedForComparison(t *testing.T) {
	v, err := New([]string{"Ningún", "también"}, []LemmaGroup{}, []string{})
	if err != nil {
		t.Fatal(err)
	}

	if !v.IsStopword("ningun") {
		t.Error("accented stopword should match its folded form")
	}
	if !v.IsStopword("tambien") {
		t.Error("accented stopword should match its folded form")
	}
	if v.IsStopword("ningún") {
		t.Error("lookups use the folded space only")
	}
}

func TestOverrideInversion(t *testing.T) {
	v, err := New([]string{}, []LemmaGroup{
		{Canonical: "checar", Variants: []string{"checo", "checas", "checa"}},
	}, []string{})
	if err != nil {
		t.Fatal(err)
	}

	got, ok := v.Override("checo")
	if !ok || got != "checar" {
		t.Errorf("Override(checo) = %q, %v; want checar, true", got, ok)
	}
	if _, ok := v.Override("checar"); ok {
		t.Error("canonical form itself is not a variant key")
	}
}

func TestOverrideLastGroupWins(t *testing.T) {
	v, err := New([]string{}, []LemmaGroup{
		{Canonical: "tomar", Variants: []string{"toma"}},
		{Canonical: "tomo", Variants: []string{"toma"}},
	}, []string{})
	if err != nil {
		t.Fatal(err)
	}

	got, _ := v.Override("toma")
	if got != "tomo" {
		t.Errorf("later-declared group should win: got %q, want tomo", got)
	}
}

func TestSize(t *testing.T) {
	v, err := New(
		[]string{"la", "el", "no"},
		[]LemmaGroup{{Canonical: "checar", Variants: []string{"checo", "checas"}}},
		[]string{"no", "ni"},
	)
	if err != nil {
		t.Fatal(err)
	}

	s := v.Size()
	if s.Stopwords != 2 { // "no" excluded
		t.Errorf("Stopwords = %d, want 2", s.Stopwords)
	}
	if s.Overrides != 2 {
		t.Errorf("Overrides = %d, want 2", s.Overrides)
	}
	if s.Negation != 2 {
		t.Errorf("Negation = %d, want 2", s.Negation)
	}
}
