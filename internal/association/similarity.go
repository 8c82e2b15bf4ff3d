package association

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Synonym scores used when the thesaurus knows the word.
const (
	scoreExactSynonym = 0.9
	scoreWordOverlap  = 0.7
	scoreSynonymPart  = 0.6
)

// SynonymSet is one sense of a word: the lemmas that share it.
type SynonymSet struct {
	Synonyms []string `json:"synonyms"`
}

// SynonymLookup resolves a word to its synonym sets. Implementations may be
// slow or unavailable; callers treat any error like an empty result.
type SynonymLookup interface {
	Lookup(ctx context.Context, word string) ([]SynonymSet, error)
}

// SimilarityResult is a scored candidate.
type SimilarityResult struct {
	Word       string  `json:"word"`
	Similarity float64 `json:"similarity"`
}

// Matcher ranks candidate words against an input word, preferring thesaurus
// overlap and falling back to edit distance.
type Matcher struct {
	lookup  SynonymLookup
	timeout time.Duration
}

// NewMatcher creates a Matcher. A nil lookup means string distance only.
// A non-positive timeout disables the per-lookup deadline.
func NewMatcher(lookup SynonymLookup, timeout time.Duration) *Matcher {
	return &Matcher{lookup: lookup, timeout: timeout}
}

// FindSimilarWords returns up to topN candidates ranked by similarity to word.
func (m *Matcher) FindSimilarWords(ctx context.Context, word string, candidates []string, topN int) []SimilarityResult {
	synonyms := m.synonyms(ctx, word)
	if len(synonyms) == 0 {
		return rankByDistance(word, candidates, topN)
	}

	results := make([]SimilarityResult, 0, len(candidates))
	for _, c := range candidates {
		if s := synonymScore(word, c, synonyms); s > 0 {
			results = append(results, SimilarityResult{Word: c, Similarity: s})
		}
	}
	if len(results) == 0 {
		return rankByDistance(word, candidates, topN)
	}
	sortResults(results)
	return limit(results, topN)
}

// synonyms collects the normalized union of every synonym set for word.
// Lookup failures and timeouts yield nil.
func (m *Matcher) synonyms(ctx context.Context, word string) []string {
	if m.lookup == nil {
		return nil
	}
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	sets, err := m.lookup.Lookup(ctx, word)
	if err != nil {
		slog.Debug("synonym lookup failed, using edit distance", "word", word, "error", err)
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	for _, set := range sets {
		for _, s := range set.Synonyms {
			s = normalizeSynonym(s)
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func normalizeSynonym(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return strings.ToLower(strings.TrimSpace(s))
}

func synonymScore(word, candidate string, synonyms []string) float64 {
	score := 0.0
	for _, s := range synonyms {
		if s == candidate {
			score = scoreExactSynonym
			break
		}
	}
	if strings.Contains(word, candidate) || strings.Contains(candidate, word) {
		score = max(score, scoreWordOverlap)
	}
	for _, s := range synonyms {
		if strings.Contains(s, candidate) || strings.Contains(candidate, s) {
			score = max(score, scoreSynonymPart)
		}
	}
	return score
}

// rankByDistance scores every candidate by normalized edit distance. Unlike
// the thesaurus path it keeps zero scores.
func rankByDistance(word string, candidates []string, topN int) []SimilarityResult {
	results := make([]SimilarityResult, len(candidates))
	for i, c := range candidates {
		results[i] = SimilarityResult{Word: c, Similarity: StringSimilarity(word, c)}
	}
	sortResults(results)
	return limit(results, topN)
}

// StringSimilarity is 1 - distance/maxLen, computed as (maxLen-distance)/maxLen
// so that exact ratios such as 1/5 come out exact. Lengths count runes.
func StringSimilarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	d := Levenshtein(a, b)
	return float64(longest-d) / float64(longest)
}

// Levenshtein returns the edit distance between a and b, counted in runes.
func Levenshtein(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

func sortResults(results []SimilarityResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
}

func limit(results []SimilarityResult, n int) []SimilarityResult {
	if n > 0 && len(results) > n {
		return results[:n]
	}
	return results
}
