// Package association turns arbitrary terms into short concrete visual
// phrases for image-generation prompts.
//
// Generation walks a fixed chain and stops at the first hit:
//
//	historical figure → lexicon → concrete word → metaphor → fallback
//
// The chain always produces a phrase. Collaborator failures degrade to string
// distance; panics degrade to a distinct fallback phrase.
package association

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
)

// Threshold is the similarity a concrete word or metaphor must exceed.
const Threshold = 0.2

// Stage identifies which link of the chain produced a phrase.
type Stage string

const (
	StageFigure   Stage = "figure"
	StageLexicon  Stage = "lexicon"
	StageConcrete Stage = "concrete"
	StageMetaphor Stage = "metaphor"
	StageFallback Stage = "fallback"
	StageError    Stage = "error"
)

// Association is a generated phrase plus how it was reached.
type Association struct {
	Term   string  `json:"term"`
	Phrase string  `json:"association"`
	Stage  Stage   `json:"stage"`
	Match  string  `json:"match,omitempty"`
	Score  float64 `json:"score,omitempty"`
}

// Options configures a Generator. Zero values pick defaults.
type Options struct {
	Lookup        SynonymLookup
	Picker        AdjectivePicker
	LookupTimeout time.Duration
}

// Generator produces figurative associations. Safe for concurrent use.
type Generator struct {
	tables  *Tables
	matcher *Matcher
	picker  AdjectivePicker
}

// New creates a Generator over tables (DefaultTables when nil).
func New(tables *Tables, opts Options) *Generator {
	if tables == nil {
		tables = DefaultTables()
	}
	picker := opts.Picker
	if picker == nil {
		picker = NewRandomPicker(rand.Uint64())
	}
	return &Generator{
		tables:  tables,
		matcher: NewMatcher(opts.Lookup, opts.LookupTimeout),
		picker:  picker,
	}
}

// Tables returns the reference tables in use.
func (g *Generator) Tables() *Tables { return g.tables }

// Matcher returns the similarity matcher in use.
func (g *Generator) Matcher() *Matcher { return g.matcher }

// Generate returns the figurative association for term.
func (g *Generator) Generate(ctx context.Context, term string) string {
	return g.Associate(ctx, term).Phrase
}

// Associate is Generate with the stage and matched entry attached.
func (g *Generator) Associate(ctx context.Context, term string) (a Association) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("association panicked", "term", term, "panic", r)
			a = Association{Term: term, Phrase: errorPhrase(term), Stage: StageError}
		}
	}()

	lowered := strings.ToLower(term)
	if phrase, ok := g.tables.matchFigure(lowered); ok {
		return Association{Term: term, Phrase: phrase, Stage: StageFigure}
	}

	key := strings.TrimSpace(lowered)
	if phrase, ok := g.tables.lexicon[key]; ok {
		return Association{
			Term:   term,
			Phrase: fmt.Sprintf("%s symbolizing %s", phrase, term),
			Stage:  StageLexicon,
			Match:  key,
		}
	}

	if best, ok := g.best(ctx, key, g.tables.pool); ok {
		cat, _ := g.tables.CategoryOf(best.Word)
		adj := cat.Adjectives[g.picker.Pick(len(cat.Adjectives))]
		return Association{
			Term:   term,
			Phrase: fmt.Sprintf("a %s %s representing %s", adj, best.Word, term),
			Stage:  StageConcrete,
			Match:  best.Word,
			Score:  best.Similarity,
		}
	}

	if best, ok := g.best(ctx, key, g.tables.patterns); ok {
		return Association{
			Term:   term,
			Phrase: fmt.Sprintf("%s symbolizing %s", g.tables.visualOf[best.Word], term),
			Stage:  StageMetaphor,
			Match:  best.Word,
			Score:  best.Similarity,
		}
	}

	return Association{Term: term, Phrase: fallbackPhrase(term), Stage: StageFallback}
}

// best returns the top candidate when it clears Threshold.
func (g *Generator) best(ctx context.Context, word string, candidates []string) (SimilarityResult, bool) {
	results := g.matcher.FindSimilarWords(ctx, word, candidates, 1)
	if len(results) == 0 || !confident(results[0].Similarity) {
		return SimilarityResult{}, false
	}
	return results[0], true
}

func confident(score float64) bool {
	return score > Threshold
}

func fallbackPhrase(term string) string {
	return `a symbolic representation of "` + term + `"`
}

func errorPhrase(term string) string {
	return `a visual representation of "` + term + `"`
}
