// Package config loads the normalization vocabulary and pipeline
// settings from YAML and constructs the runtime components.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clinlex/lexnorm/pkg/lexnorm/pipeline"
	"github.com/clinlex/lexnorm/pkg/lexnorm/vocab"
)

// LemmaGroup is the YAML form of a canonical lemma with its surface
// variants. Groups are an ordered list, not a map: when the same
// variant appears under two canonicals, the later group wins, and list
// order makes that deterministic.
type LemmaGroup struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

// Config is the statically-shaped configuration record.
//
// Expected format:
//
//	stopwords: [paciente, refiere]
//	lemmas:
//	  - canonical: checar
//	    variants: [checo, checas, checa]
//	negation: [regular]
//	numeric: placeholder
type Config struct {
	// Stopwords are extra stopwords unioned with the built-in base set.
	Stopwords []string `yaml:"stopwords"`

	// Lemmas are surface-form override groups, applied in order.
	Lemmas []LemmaGroup `yaml:"lemmas"`

	// Negation are extra negation terms unioned with the built-in set.
	Negation []string `yaml:"negation"`

	// Numeric is the quantity output policy: "preserve" (default) or
	// "placeholder".
	Numeric string `yaml:"numeric"`

	// FoldOutput emits kept tokens accent-folded.
	FoldOutput bool `yaml:"fold_output"`

	// Workers bounds batch concurrency; zero means the pipeline default.
	Workers int `yaml:"workers"`
}

// Default returns a configuration carrying only the built-in base
// vocabulary and default policies.
func Default() Config {
	return Config{
		Stopwords: []string{},
		Lemmas:    []LemmaGroup{},
		Negation:  []string{},
	}
}

// Load reads a YAML configuration file. Collections omitted from the
// file are normalized to empty so that downstream construction never
// sees nil.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Stopwords == nil {
		cfg.Stopwords = []string{}
	}
	if cfg.Lemmas == nil {
		cfg.Lemmas = []LemmaGroup{}
	}
	if cfg.Negation == nil {
		cfg.Negation = []string{}
	}
	return cfg, nil
}

// Build validates the configuration and constructs the vocabulary and
// pipeline. User stopwords and negation terms are unioned with the
// built-in base lists; lemma groups come from the configuration alone.
func (c Config) Build() (*vocab.Vocabulary, *pipeline.Pipeline, error) {
	policy, err := pipeline.ParseNumericPolicy(c.Numeric)
	if err != nil {
		return nil, nil, err
	}

	stopwords := append(append([]string{}, BaseStopwords...), c.Stopwords...)
	negation := append(append([]string{}, BaseNegation...), c.Negation...)

	// Groups pass through unfixed: a group with no variants list is
	// malformed and vocabulary construction rejects it.
	groups := make([]vocab.LemmaGroup, len(c.Lemmas))
	for i, g := range c.Lemmas {
		groups[i] = vocab.LemmaGroup{Canonical: g.Canonical, Variants: g.Variants}
	}

	v, err := vocab.New(stopwords, groups, negation)
	if err != nil {
		return nil, nil, err
	}

	p, err := pipeline.New(v, pipeline.Options{
		Numeric:    policy,
		FoldOutput: c.FoldOutput,
		Workers:    c.Workers,
	})
	if err != nil {
		return nil, nil, err
	}
	return v, p, nil
}
