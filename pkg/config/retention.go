package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// RunRetentionDays is how many days to keep terminal runs (and their
	// steps, via cascade) before deletion.
	RunRetentionDays int

	// JobTTL is the maximum age of completed or failed queue jobs before
	// deletion.
	JobTTL time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RunRetentionDays: 90,
		JobTTL:           24 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}
}

func loadRetentionConfig() *RetentionConfig {
	def := DefaultRetentionConfig()
	return &RetentionConfig{
		RunRetentionDays: getEnvInt("RUN_RETENTION_DAYS", def.RunRetentionDays),
		JobTTL:           getEnvDuration("QUEUE_JOB_TTL", def.JobTTL),
		CleanupInterval:  getEnvDuration("CLEANUP_INTERVAL", def.CleanupInterval),
	}
}

// Validate checks retention ranges.
func (c *RetentionConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("retention configuration is nil")
	}
	if c.RunRetentionDays < 1 {
		return NewValidationError("retention", "RUN_RETENTION_DAYS",
			fmt.Errorf("must be at least 1, got %d", c.RunRetentionDays))
	}
	if c.JobTTL < time.Hour {
		return NewValidationError("retention", "QUEUE_JOB_TTL",
			fmt.Errorf("must be at least 1h, got %s", c.JobTTL))
	}
	if c.CleanupInterval < time.Minute {
		return NewValidationError("retention", "CLEANUP_INTERVAL",
			fmt.Errorf("must be at least 1m, got %s", c.CleanupInterval))
	}
	return nil
}
