// Package llm wraps the OpenAI-compatible chat completions API behind a
// request/response interface with a JSON-only mode and model fallback.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/conductorhq/conductor/pkg/config"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat turn.
type Message struct {
	Role    string
	Content string
}

// Request describes one completion call.
type Request struct {
	Messages    []Message
	Temperature *float64
	MaxTokens   int

	// JSONOnly constrains the response to a JSON object via
	// response_format. Callers still re-validate: providers only
	// guarantee syntax, not shape.
	JSONOnly bool

	// APIKey overrides the configured key for this call. The memory
	// writer passes the user's decrypted key here.
	APIKey string

	// Model overrides the configured primary model.
	Model string
}

// Usage reports token consumption for one call.
type Usage struct {
	Prompt     int
	Completion int
}

// Response is a completed chat turn.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// Client is the outbound LLM transport.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// OpenAIClient calls an OpenAI-compatible chat completions endpoint,
// retrying once with the fallback model on transport or API errors.
type OpenAIClient struct {
	client openai.Client
	config *config.LLMConfig
}

// NewOpenAIClient creates a client for the configured endpoint. A custom
// base URL points at any OpenAI-compatible provider.
func NewOpenAIClient(cfg *config.LLMConfig) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIClient{
		client: openai.NewClient(opts...),
		config: cfg,
	}
}

// Compile-time interface assertion.
var _ Client = (*OpenAIClient)(nil)

// Complete performs one chat completion. The primary model is tried
// first; on error the configured fallback model (when set and different)
// gets one attempt before the call fails.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (*Response, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("llm request has no messages")
	}

	primary := req.Model
	if primary == "" {
		primary = c.config.Model
	}

	resp, err := c.complete(ctx, req, primary)
	if err == nil {
		return resp, nil
	}

	fallback := c.config.FallbackModel
	if fallback == "" || fallback == primary {
		return nil, err
	}

	slog.Warn("Primary model failed, retrying with fallback",
		"model", primary, "fallback", fallback, "error", err)

	resp, fbErr := c.complete(ctx, req, fallback)
	if fbErr != nil {
		return nil, fmt.Errorf("primary %s: %w; fallback %s: %v", primary, err, fallback, fbErr)
	}
	return resp, nil
}

// complete performs a single attempt against one model.
func (c *OpenAIClient) complete(ctx context.Context, req Request, model string) (*Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: convertMessages(req.Messages),
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.JSONOnly {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	var callOpts []option.RequestOption
	if req.APIKey != "" {
		callOpts = append(callOpts, option.WithAPIKey(req.APIKey))
	}

	resp, err := c.client.Chat.Completions.New(callCtx, params, callOpts...)
	if err != nil {
		return nil, fmt.Errorf("chat completion with %s failed: %w", model, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion with %s returned no choices", model)
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: Usage{
			Prompt:     int(resp.Usage.PromptTokens),
			Completion: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

// convertMessages maps chat turns to the OpenAI message union.
func convertMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
