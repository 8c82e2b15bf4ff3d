package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all loci configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Thesaurus ThesaurusConfig `yaml:"thesaurus"`
	LLM       LLMConfig       `yaml:"llm"`
	Generator GeneratorConfig `yaml:"generator"`
}

type ServerConfig struct {
	Bind          string `yaml:"bind"`
	Port          int    `yaml:"port"`
	RatePerMinute int    `yaml:"rate_per_minute"` // per client IP, 0 disables
	RateBurst     int    `yaml:"rate_burst"`
	BatchLimit    int    `yaml:"batch_limit"` // max terms per batch request
	Concurrency   int    `yaml:"concurrency"` // parallel generations per batch request
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type ThesaurusConfig struct {
	Provider      string        `yaml:"provider"` // "sqlite", "llm", "none"
	Timeout       time.Duration `yaml:"timeout"`
	CacheSize     int           `yaml:"cache_size"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	RatePerMinute int           `yaml:"rate_per_minute"` // remote lookups only, 0 disables
}

type LLMConfig struct {
	Provider       string `yaml:"provider"` // "openai", "anthropic", "claude-cli", "ollama"
	Model          string `yaml:"model"`
	OllamaURL      string `yaml:"ollama_url"`
	OllamaModel    string `yaml:"ollama_model"`
	OpenAIKey      string `yaml:"openai_key"`
	OpenAIURL      string `yaml:"openai_url"`
	AnthropicKey   string `yaml:"anthropic_key"`
	AnthropicModel string `yaml:"anthropic_model"` // also used by claude-cli
	AnthropicURL   string `yaml:"anthropic_url"`
	ClaudePath     string `yaml:"claude_path"` // claude binary, default "claude" on PATH
}

type GeneratorConfig struct {
	Tables string `yaml:"tables"` // YAML table override file, empty for built-ins
	Seed   uint64 `yaml:"seed"`   // adjective RNG seed, 0 for random

	// Threshold is informational: matches must score above 0.2. Any other
	// value is rejected.
	Threshold float64 `yaml:"threshold"`
}

// SimilarityThreshold is the fixed similarity cutoff of the generator.
const SimilarityThreshold = 0.2

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind:          "127.0.0.1",
			Port:          37778,
			RatePerMinute: 600,
			RateBurst:     20,
			BatchLimit:    100,
			Concurrency:   8,
		},
		Database: DatabaseConfig{
			Path: "", // resolved at runtime via store.DefaultDBPath()
		},
		Thesaurus: ThesaurusConfig{
			Provider:  "sqlite",
			Timeout:   2 * time.Second,
			CacheSize: 4096,
			CacheTTL:  time.Hour,
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
		},
		Generator: GeneratorConfig{
			Threshold: SimilarityThreshold,
		},
	}
}

// DefaultPath returns ~/.loci/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".loci", "config.yaml"), nil
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LOCI_DB"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("LOCI_THESAURUS"); v != "" {
		c.Thesaurus.Provider = v
	}
	if v := os.Getenv("LOCI_TABLES"); v != "" {
		c.Generator.Tables = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.LLM.OpenAIKey == "" {
		c.LLM.OpenAIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" && c.LLM.AnthropicKey == "" {
		c.LLM.AnthropicKey = v
	}
}

// Validate rejects settings the rest of the program cannot handle.
func (c *Config) Validate() error {
	switch c.Thesaurus.Provider {
	case "sqlite", "llm", "none":
	default:
		return fmt.Errorf("unknown thesaurus provider: %q", c.Thesaurus.Provider)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Thesaurus.Timeout < 0 {
		return fmt.Errorf("negative thesaurus timeout")
	}
	if c.Server.Concurrency < 0 {
		return fmt.Errorf("negative server concurrency")
	}
	if t := c.Generator.Threshold; t != 0 && t != SimilarityThreshold {
		return fmt.Errorf("generator threshold is fixed at %v, got %v", SimilarityThreshold, t)
	}
	return nil
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
