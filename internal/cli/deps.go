package cli

import (
	"fmt"

	"github.com/lazypower/loci/internal/association"
	"github.com/lazypower/loci/internal/config"
	"github.com/lazypower/loci/internal/llm"
	"github.com/lazypower/loci/internal/store"
	"github.com/lazypower/loci/internal/thesaurus"
)

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

func openDB(cfg config.Config) (*store.DB, error) {
	dbPath := cfg.Database.Path
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve db path: %w", err)
		}
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// buildLookup assembles the configured synonym source. Remote lookups are
// rate limited beneath the cache so hits do not spend budget. Returns nil
// for provider "none".
func buildLookup(cfg config.Config, db *store.DB) (association.SynonymLookup, error) {
	var base association.SynonymLookup
	switch cfg.Thesaurus.Provider {
	case "none":
		return nil, nil
	case "sqlite":
		base = thesaurus.NewStore(db)
	case "llm":
		client, err := llm.NewClient(cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("llm thesaurus: %w", err)
		}
		base = thesaurus.NewLimited(thesaurus.NewLLM(client), cfg.Thesaurus.RatePerMinute, 0)
	default:
		return nil, fmt.Errorf("unknown thesaurus provider: %q", cfg.Thesaurus.Provider)
	}
	return thesaurus.NewCached(base, cfg.Thesaurus.CacheSize, cfg.Thesaurus.CacheTTL, cfg.Thesaurus.Timeout), nil
}

func buildGenerator(cfg config.Config, lookup association.SynonymLookup) (*association.Generator, error) {
	var tables *association.Tables
	if cfg.Generator.Tables != "" {
		var err error
		if tables, err = association.LoadTables(cfg.Generator.Tables); err != nil {
			return nil, err
		}
	}

	opts := association.Options{
		Lookup:        lookup,
		LookupTimeout: cfg.Thesaurus.Timeout,
	}
	if cfg.Generator.Seed != 0 {
		opts.Picker = association.NewRandomPicker(cfg.Generator.Seed)
	}
	return association.New(tables, opts), nil
}

// app is the wired program shared by the commands.
type app struct {
	cfg    config.Config
	db     *store.DB
	lookup association.SynonymLookup
	gen    *association.Generator
}

// newApp loads config and wires the database, lookup and generator.
func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	lookup, err := buildLookup(cfg, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	gen, err := buildGenerator(cfg, lookup)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &app{cfg: cfg, db: db, lookup: lookup, gen: gen}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
