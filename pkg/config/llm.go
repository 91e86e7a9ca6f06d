package config

import (
	"fmt"
	"time"
)

// LLMConfig contains the model endpoint settings. The same client serves
// run iterations, output validation, and the memory writer; the memory
// writer swaps in the user's own key when one is stored.
type LLMConfig struct {
	// BaseURL overrides the OpenAI-compatible endpoint. Empty uses the
	// provider default.
	BaseURL string

	// APIKey is the system key used for run execution.
	APIKey string

	// Model is the primary chat model.
	Model string

	// FallbackModel is tried once when the primary model errors.
	FallbackModel string

	// Timeout bounds a single completion request.
	Timeout time.Duration
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Model:         "gpt-4o-mini",
		FallbackModel: "gpt-4o",
		Timeout:       60 * time.Second,
	}
}

func loadLLMConfig() LLMConfig {
	def := DefaultLLMConfig()
	return LLMConfig{
		BaseURL:       getEnv("LLM_BASE_URL", ""),
		APIKey:        getEnv("LLM_API_KEY", ""),
		Model:         getEnv("LLM_MODEL", def.Model),
		FallbackModel: getEnv("LLM_FALLBACK_MODEL", def.FallbackModel),
		Timeout:       time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", int(def.Timeout/time.Second))) * time.Second,
	}
}

// Validate checks model names and timeout range.
func (c LLMConfig) Validate() error {
	if c.Model == "" {
		return NewValidationError("llm", "LLM_MODEL", fmt.Errorf("must not be empty"))
	}
	if c.Timeout < time.Second || c.Timeout > 10*time.Minute {
		return NewValidationError("llm", "LLM_TIMEOUT_SECONDS",
			fmt.Errorf("must be between 1 and 600, got %d", c.Timeout/time.Second))
	}
	return nil
}
