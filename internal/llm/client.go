package llm

import (
	"context"
	"fmt"

	"github.com/lazypower/loci/internal/config"
)

// Client is the interface for LLM providers.
type Client interface {
	Complete(ctx context.Context, prompt string) (*Response, error)
}

// JSONClient is implemented by providers that can constrain output to a
// JSON schema.
type JSONClient interface {
	Client
	CompleteJSON(ctx context.Context, prompt string, schema Schema) (*Response, error)
}

// Schema names a JSON schema for structured output.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the result of an LLM completion.
type Response struct {
	Content    string
	Provider   string
	TokensUsed int
}

// NewClient creates an LLM client based on the config provider setting.
func NewClient(cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY or config")
		}
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		return NewOpenAI(cfg.OpenAIKey, model, cfg.OpenAIURL), nil
	case "anthropic":
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("anthropic provider requires ANTHROPIC_API_KEY or config")
		}
		model := cfg.AnthropicModel
		if model == "" {
			model = "claude-3-5-haiku-latest"
		}
		return NewAnthropic(cfg.AnthropicKey, model, cfg.AnthropicURL), nil
	case "claude-cli":
		model := cfg.AnthropicModel
		if model == "" {
			model = "haiku"
		}
		return NewClaudeCLI(cfg.ClaudePath, model), nil
	case "ollama":
		url := cfg.OllamaURL
		if url == "" {
			url = "http://localhost:11434"
		}
		model := cfg.OllamaModel
		if model == "" {
			model = "llama3.2"
		}
		return NewOllama(url, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
