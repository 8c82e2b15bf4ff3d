// Package thesaurus provides synonym lookups for the association generator:
// a local SQLite store, a remote LLM-backed service, and wrappers that cache
// and rate-limit either one.
package thesaurus

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lazypower/loci/internal/association"
	"github.com/lazypower/loci/internal/store"
)

// Lemma normalizes a word for storage and lookup: NFC, lowercase, trimmed,
// underscores turned into spaces, runs of spaces collapsed.
func Lemma(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Store looks words up in the local synset tables.
type Store struct {
	db *store.DB
}

// NewStore creates a Store lookup over db.
func NewStore(db *store.DB) *Store {
	return &Store{db: db}
}

// Lookup returns one synonym set per stored synset containing word.
func (s *Store) Lookup(ctx context.Context, word string) ([]association.SynonymSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lemma := Lemma(word)
	if lemma == "" {
		return nil, nil
	}
	synsets, err := s.db.SynsetsForLemma(lemma)
	if err != nil {
		return nil, fmt.Errorf("thesaurus lookup %q: %w", lemma, err)
	}
	out := make([]association.SynonymSet, len(synsets))
	for i, ss := range synsets {
		out[i] = association.SynonymSet{Synonyms: ss.Lemmas}
	}
	return out, nil
}

// None never knows any synonyms.
type None struct{}

func (None) Lookup(context.Context, string) ([]association.SynonymSet, error) { return nil, nil }
