// Package config loads and validates runtime configuration from the
// environment. Every knob is a flat env var; main loads an optional .env
// file via godotenv before calling Load. Database settings live in
// pkg/database and are loaded separately.
package config

import (
	"encoding/hex"
	"fmt"
)

// Config is the umbrella configuration object returned by Load and
// threaded through the application.
type Config struct {
	// Server holds HTTP API settings.
	Server ServerConfig

	// Engine holds the run-loop knobs: iteration budgets, transcript
	// window, retry counts, runtime cap.
	Engine EngineConfig

	// LLM holds the model endpoint settings.
	LLM LLMConfig

	// Queue holds worker pool and polling configuration.
	Queue *QueueConfig

	// Scheduler holds trigger dispatcher configuration.
	Scheduler SchedulerConfig

	// Memory holds memory-writer and context rotation settings.
	Memory MemoryConfig

	// Delivery holds outbound provider settings.
	Delivery DeliveryConfig

	// Retention controls cleanup of old runs, jobs, and messages.
	Retention *RetentionConfig

	// EncryptionKey is the hex-encoded 32-byte AES key used to decrypt
	// stored user LLM API keys. Empty disables per-user keys.
	EncryptionKey string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment, applying defaults for
// everything not set, and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server:        loadServerConfig(),
		Engine:        loadEngineConfig(),
		LLM:           loadLLMConfig(),
		Queue:         loadQueueConfig(),
		Scheduler:     loadSchedulerConfig(),
		Memory:        loadMemoryConfig(),
		Delivery:      loadDeliveryConfig(),
		Retention:     loadRetentionConfig(),
		EncryptionKey: getEnv("ENCRYPTION_KEY", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section and returns the first error found.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	if err := c.Queue.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	if err := c.Memory.Validate(); err != nil {
		return err
	}
	if err := c.Retention.Validate(); err != nil {
		return err
	}

	if c.EncryptionKey != "" {
		raw, err := hex.DecodeString(c.EncryptionKey)
		if err != nil {
			return NewValidationError("config", "ENCRYPTION_KEY", fmt.Errorf("not valid hex: %w", err))
		}
		if len(raw) != 32 {
			return NewValidationError("config", "ENCRYPTION_KEY",
				fmt.Errorf("must decode to 32 bytes, got %d", len(raw)))
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return NewValidationError("config", "LOG_LEVEL",
			fmt.Errorf("must be one of debug, info, warn, error: got %q", c.LogLevel))
	}

	return nil
}
