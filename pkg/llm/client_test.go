package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/config"
)

// capturedRequest is the subset of the chat completions body the tests
// assert on.
type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
	MaxCompletionTokens int     `json:"max_completion_tokens"`
	Temperature         float64 `json:"temperature"`
}

func completionJSON(model, content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   model,
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     42,
			"completion_tokens": 7,
			"total_tokens":      49,
		},
	})
	return string(body)
}

func testLLMConfig(serverURL string) *config.LLMConfig {
	return &config.LLMConfig{
		BaseURL: serverURL,
		APIKey:  "default-key",
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	}
}

func TestCompleteJSONMode(t *testing.T) {
	var got capturedRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionJSON("gpt-4o-mini", `{"type":"finish"}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(testLLMConfig(server.URL))

	temp := 0.2
	resp, err := client.Complete(context.Background(), Request{
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a coordinator."},
			{Role: RoleUser, Content: `{"task":"do the thing"}`},
		},
		Temperature: &temp,
		MaxTokens:   1024,
		JSONOnly:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"type":"finish"}`, resp.Content)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, 42, resp.Usage.Prompt)
	assert.Equal(t, 7, resp.Usage.Completion)

	assert.Equal(t, "Bearer default-key", authHeader)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
	assert.Equal(t, 1024, got.MaxCompletionTokens)
	assert.InDelta(t, 0.2, got.Temperature, 0.001)
}

func TestCompletePerCallKeyOverride(t *testing.T) {
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionJSON("gpt-4o-mini", "ok"))
	}))
	defer server.Close()

	client := NewOpenAIClient(testLLMConfig(server.URL))

	_, err := client.Complete(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		APIKey:   "user-supplied-key",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer user-supplied-key", authHeader)
}

func TestCompleteFallsBackOnPrimaryError(t *testing.T) {
	modelsSeen := []string{}

	// Keyed on model so the SDK's own retry behavior cannot skew the
	// test: the primary model always errors, the fallback always works.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req capturedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		modelsSeen = append(modelsSeen, req.Model)

		w.Header().Set("Content-Type", "application/json")
		if req.Model == "gpt-4o-mini" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"message":"model overloaded","type":"invalid_request_error"}}`)
			return
		}
		fmt.Fprint(w, completionJSON("gpt-4o", "fallback answer"))
	}))
	defer server.Close()

	cfg := testLLMConfig(server.URL)
	cfg.FallbackModel = "gpt-4o"
	client := NewOpenAIClient(cfg)

	resp, err := client.Complete(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "fallback answer", resp.Content)
	assert.Contains(t, modelsSeen, "gpt-4o-mini")
	assert.Contains(t, modelsSeen, "gpt-4o")
}

func TestCompleteNoFallbackConfigured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"bad request","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	client := NewOpenAIClient(testLLMConfig(server.URL))

	_, err := client.Complete(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpt-4o-mini")
}

func TestCompleteRejectsEmptyRequest(t *testing.T) {
	client := NewOpenAIClient(testLLMConfig("http://localhost:0"))

	_, err := client.Complete(context.Background(), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no messages")
}
