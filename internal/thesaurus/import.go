package thesaurus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/lazypower/loci/internal/store"
)

// ImportStats summarizes an import run.
type ImportStats struct {
	Read    int `json:"read"`
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// ParseSynsets decodes a synset dump. Two shapes are accepted:
//
//	{"synsets": [["freedom", "liberty"], ...]}
//	[["freedom", "liberty"], ...]
func ParseSynsets(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read synsets: %w", err)
	}
	data = bytes.TrimSpace(data)

	var wrapped struct {
		Synsets [][]string `json:"synsets"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Synsets != nil {
		return wrapped.Synsets, nil
	}

	var bare [][]string
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parse synsets as object or array: %w", err)
	}
	return bare, nil
}

// Import loads a synset dump into db. Lemmas are normalized with Lemma;
// synsets already present are skipped.
func Import(db *store.DB, source string, r io.Reader) (ImportStats, error) {
	sets, err := ParseSynsets(r)
	if err != nil {
		return ImportStats{}, err
	}

	var stats ImportStats
	for _, set := range sets {
		stats.Read++
		lemmas := make([]string, 0, len(set))
		for _, w := range set {
			lemmas = append(lemmas, Lemma(w))
		}
		added, err := db.AddSynset(source, lemmas)
		if err != nil {
			return stats, fmt.Errorf("import synset %d: %w", stats.Read, err)
		}
		if added {
			stats.Added++
		} else {
			stats.Skipped++
		}
	}

	slog.Info("thesaurus import finished", "source", source, "read", stats.Read, "added", stats.Added, "skipped", stats.Skipped)
	return stats, nil
}
