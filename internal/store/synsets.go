package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Synset is a group of lemmas that share one sense.
type Synset struct {
	ID        int64
	Source    string
	Lemmas    []string
	CreatedAt int64
}

// fingerprint identifies a synset by its sorted lemma set.
func fingerprint(lemmas []string) string {
	sorted := append([]string(nil), lemmas...)
	sort.Strings(sorted)
	sum := sha256.Sum256([]byte(strings.Join(sorted, "\x00")))
	return hex.EncodeToString(sum[:])
}

// AddSynset stores a synset. Lemmas must already be normalized; blanks and
// repeats are dropped. Returns false when an identical synset exists or
// fewer than one lemma remains.
func (db *DB) AddSynset(source string, lemmas []string) (bool, error) {
	var clean []string
	seen := make(map[string]bool, len(lemmas))
	for _, l := range lemmas {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		clean = append(clean, l)
	}
	if len(clean) == 0 {
		return false, nil
	}
	if source == "" {
		source = "import"
	}

	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin add synset: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO synsets (source, fingerprint, created_at) VALUES (?, ?, ?)
		ON CONFLICT(fingerprint) DO NOTHING
	`, source, fingerprint(clean), time.Now().UnixMilli())
	if err != nil {
		return false, fmt.Errorf("insert synset: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("synset id: %w", err)
	}

	for i, l := range clean {
		if _, err := tx.Exec(
			"INSERT INTO synset_lemmas (synset_id, lemma, position) VALUES (?, ?, ?)",
			id, l, i,
		); err != nil {
			return false, fmt.Errorf("insert lemma %q: %w", l, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit synset: %w", err)
	}
	return true, nil
}

// SynsetsForLemma returns every synset containing lemma, oldest first,
// with lemmas in their stored order.
func (db *DB) SynsetsForLemma(lemma string) ([]Synset, error) {
	rows, err := db.Query(`
		SELECT s.id, s.source, s.created_at, l.lemma
		FROM synsets s
		JOIN synset_lemmas l ON l.synset_id = s.id
		WHERE s.id IN (SELECT synset_id FROM synset_lemmas WHERE lemma = ?)
		ORDER BY s.id, l.position
	`, lemma)
	if err != nil {
		return nil, fmt.Errorf("synsets for lemma: %w", err)
	}
	defer rows.Close()

	var out []Synset
	for rows.Next() {
		var (
			id        int64
			source    string
			createdAt int64
			l         string
		)
		if err := rows.Scan(&id, &source, &createdAt, &l); err != nil {
			return nil, fmt.Errorf("scan synset: %w", err)
		}
		if len(out) == 0 || out[len(out)-1].ID != id {
			out = append(out, Synset{ID: id, Source: source, CreatedAt: createdAt})
		}
		last := &out[len(out)-1]
		last.Lemmas = append(last.Lemmas, l)
	}
	return out, rows.Err()
}

// CountSynsets returns the number of stored synsets.
func (db *DB) CountSynsets() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM synsets").Scan(&n); err != nil {
		return 0, fmt.Errorf("count synsets: %w", err)
	}
	return n, nil
}

// CountLemmas returns the number of distinct lemmas.
func (db *DB) CountLemmas() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(DISTINCT lemma) FROM synset_lemmas").Scan(&n); err != nil {
		return 0, fmt.Errorf("count lemmas: %w", err)
	}
	return n, nil
}
