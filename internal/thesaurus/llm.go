package thesaurus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lazypower/loci/internal/association"
	"github.com/lazypower/loci/internal/llm"
)

type sense struct {
	Synonyms []string `json:"synonyms"`
}

type senseList struct {
	Senses []sense `json:"senses"`
}

var senseSchema = llm.Schema{
	Name:        "Senses",
	Description: "Word senses with their synonyms",
	Definition:  llm.GenerateSchema[senseList](),
}

// LLM asks a language model for synonyms.
type LLM struct {
	client llm.Client
}

// NewLLM creates a lookup backed by client. Structured output is used when
// the client supports it.
func NewLLM(client llm.Client) *LLM {
	return &LLM{client: client}
}

// Lookup asks the model for the senses of word.
func (l *LLM) Lookup(ctx context.Context, word string) ([]association.SynonymSet, error) {
	lemma := Lemma(word)
	if lemma == "" {
		return nil, nil
	}

	prompt := llm.SynonymPrompt(lemma)
	var (
		resp *llm.Response
		err  error
	)
	if jc, ok := l.client.(llm.JSONClient); ok {
		resp, err = jc.CompleteJSON(ctx, prompt, senseSchema)
	} else {
		resp, err = l.client.Complete(ctx, prompt)
	}
	if err != nil {
		return nil, fmt.Errorf("llm synonyms for %q: %w", lemma, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("llm synonyms for %q: empty response", lemma)
	}

	senses, err := parseSenses(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("llm synonyms for %q: %w", lemma, err)
	}

	var out []association.SynonymSet
	for _, s := range senses {
		var syns []string
		for _, w := range s.Synonyms {
			if w = Lemma(w); w != "" {
				syns = append(syns, w)
			}
		}
		if len(syns) > 0 {
			out = append(out, association.SynonymSet{Synonyms: syns})
		}
	}
	return out, nil
}

// parseSenses extracts the senses object from a model reply, tolerating
// code fences and surrounding prose.
func parseSenses(content string) ([]sense, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		lines := strings.Split(content, "\n")
		if len(lines) > 2 {
			content = strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	var out senseList
	if err := json.Unmarshal([]byte(content), &out); err == nil {
		return out.Senses, nil
	}

	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output (len=%d)", len(content))
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &out); err != nil {
		return nil, fmt.Errorf("decode model output: %w", err)
	}
	return out.Senses, nil
}
