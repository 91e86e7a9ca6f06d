package config

import (
	"fmt"
	"time"
)

// SchedulerConfig contains trigger dispatcher configuration.
type SchedulerConfig struct {
	// TriggerScanInterval is how often the dispatcher scans for due
	// triggers.
	TriggerScanInterval time.Duration

	// TriggerBatchSize is the max number of due triggers fired per scan.
	TriggerBatchSize int
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		TriggerScanInterval: 15 * time.Second,
		TriggerBatchSize:    50,
	}
}

func loadSchedulerConfig() SchedulerConfig {
	def := DefaultSchedulerConfig()
	return SchedulerConfig{
		TriggerScanInterval: getEnvDuration("TRIGGER_SCAN_INTERVAL", def.TriggerScanInterval),
		TriggerBatchSize:    getEnvInt("TRIGGER_BATCH_SIZE", def.TriggerBatchSize),
	}
}

// Validate checks scan interval and batch size ranges.
func (c SchedulerConfig) Validate() error {
	if c.TriggerScanInterval < time.Second {
		return NewValidationError("scheduler", "TRIGGER_SCAN_INTERVAL",
			fmt.Errorf("must be at least 1s, got %s", c.TriggerScanInterval))
	}
	if c.TriggerBatchSize < 1 || c.TriggerBatchSize > 1000 {
		return NewValidationError("scheduler", "TRIGGER_BATCH_SIZE",
			fmt.Errorf("must be between 1 and 1000, got %d", c.TriggerBatchSize))
	}
	return nil
}
