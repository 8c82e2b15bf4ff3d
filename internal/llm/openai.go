package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// OpenAI calls the OpenAI Responses API.
type OpenAI struct {
	client *openai.Client
	model  string
	waits  []time.Duration
}

// NewOpenAI creates a new OpenAI client. baseURL may be empty.
func NewOpenAI(apiKey, model, baseURL string) *OpenAI {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0), // retries are handled by callWithRetry
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAI{
		client: &client,
		model:  model,
		waits:  []time.Duration{500 * time.Millisecond, 2 * time.Second},
	}
}

// Complete sends a free-form prompt.
func (o *OpenAI) Complete(ctx context.Context, prompt string) (*Response, error) {
	return o.create(ctx, o.params(prompt))
}

// CompleteJSON sends a prompt whose output must match schema.
func (o *OpenAI) CompleteJSON(ctx context.Context, prompt string, schema Schema) (*Response, error) {
	params := o.params(prompt)
	params.Text = responses.ResponseTextConfigParam{
		Format: responses.ResponseFormatTextConfigUnionParam{
			OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
				Name:        schema.Name,
				Schema:      schema.Definition,
				Strict:      openai.Bool(true),
				Description: openai.String(schema.Description),
				Type:        "json_schema",
			},
		},
	}
	return o.create(ctx, params)
}

func (o *OpenAI) params(prompt string) responses.ResponseNewParams {
	return responses.ResponseNewParams{
		Model:           o.model,
		MaxOutputTokens: openai.Int(512),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
	}
}

func (o *OpenAI) create(ctx context.Context, params responses.ResponseNewParams) (*Response, error) {
	resp, err := o.callWithRetry(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai responses api: %w", err)
	}
	return &Response{
		Content:    resp.OutputText(),
		Provider:   "openai",
		TokensUsed: int(resp.Usage.TotalTokens),
	}, nil
}

// callWithRetry retries rate-limit and server errors, giving up early when
// ctx ends.
func (o *OpenAI) callWithRetry(ctx context.Context, params responses.ResponseNewParams) (*responses.Response, error) {
	for attempt := 0; ; attempt++ {
		resp, err := o.client.Responses.New(ctx, params)
		if err == nil {
			return resp, nil
		}
		if attempt >= len(o.waits) || !retryable(err) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(o.waits[attempt]):
		}
	}
}

func retryable(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	s := strings.ToLower(err.Error())
	for _, marker := range []string{"429", "rate limit", "too many requests", "500", "502", "503", "internal server error", "server_error"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
