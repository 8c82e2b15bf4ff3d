package store

import (
	"fmt"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "synsets: groups of lemmas sharing one sense",
		SQL: `
CREATE TABLE synsets (
    id         INTEGER PRIMARY KEY,
    source     TEXT NOT NULL DEFAULT 'import',
    created_at INTEGER NOT NULL
);

CREATE TABLE synset_lemmas (
    synset_id  INTEGER NOT NULL,
    lemma      TEXT NOT NULL CHECK (length(lemma) > 0),
    position   INTEGER NOT NULL,

    PRIMARY KEY (synset_id, lemma),
    FOREIGN KEY (synset_id) REFERENCES synsets(id) ON DELETE CASCADE
);

CREATE INDEX idx_lemmas_lemma ON synset_lemmas(lemma);
`,
	},
	{
		Version:     2,
		Description: "synsets: fingerprint to skip duplicate imports",
		SQL: `
ALTER TABLE synsets ADD COLUMN fingerprint TEXT;
CREATE UNIQUE INDEX idx_synsets_fingerprint ON synsets(fingerprint);
`,
	},
}

func (db *DB) migrate() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the current schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&version)
	return version, err
}
