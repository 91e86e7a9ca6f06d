package config

import (
	"fmt"
	"time"
)

// EngineConfig contains the run-loop knobs. Iteration budgets bound how
// many LLM turns a run may take; the hard cap bounds set_run_limits
// extensions; the runtime cap bounds wall-clock time per claim.
type EngineConfig struct {
	// MaxIterations is the default iteration budget per run.
	MaxIterations int

	// MinIterations is the floor below which set_run_limits cannot shrink
	// the budget.
	MinIterations int

	// MaxIterationsHardCap bounds budget extensions requested by the
	// agent via set_run_limits.
	MaxIterationsHardCap int

	// TranscriptLimit is the max number of transcript entries included
	// in the LLM payload.
	TranscriptLimit int

	// TranscriptTokenLimit is the token-estimate cap for the trimmed
	// transcript window.
	TranscriptTokenLimit int

	// MaxJSONRetries is how many times an unparseable LLM response is
	// retried before the iteration fails.
	MaxJSONRetries int

	// MaxToolRetries is how many times a failed tool call is retried
	// before the step is recorded as failed.
	MaxToolRetries int

	// MaxRuntime caps wall-clock time for one engine claim.
	MaxRuntime time.Duration

	// MaxSubagentsPerSpawn bounds one spawn_subagents command.
	MaxSubagentsPerSpawn int

	// WatchdogDelay is the wake delay scheduled for a parent after it
	// spawns subagents.
	WatchdogDelay time.Duration

	// DebugPrompts logs full prompts and raw responses at debug level.
	DebugPrompts bool
}

// DefaultEngineConfig returns the built-in engine defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxIterations:        12,
		MinIterations:        4,
		MaxIterationsHardCap: 40,
		TranscriptLimit:      40,
		TranscriptTokenLimit: 6000,
		MaxJSONRetries:       2,
		MaxToolRetries:       2,
		MaxRuntime:           5 * time.Minute,
		MaxSubagentsPerSpawn: 3,
		WatchdogDelay:        30 * time.Second,
		DebugPrompts:         false,
	}
}

func loadEngineConfig() EngineConfig {
	def := DefaultEngineConfig()
	return EngineConfig{
		MaxIterations:        getEnvInt("RUN_MAX_ITERATIONS", def.MaxIterations),
		MinIterations:        getEnvInt("RUN_MIN_ITERATIONS", def.MinIterations),
		MaxIterationsHardCap: getEnvInt("RUN_MAX_ITERATIONS_HARD_CAP", def.MaxIterationsHardCap),
		TranscriptLimit:      getEnvInt("RUN_TRANSCRIPT_LIMIT", def.TranscriptLimit),
		TranscriptTokenLimit: getEnvInt("RUN_TRANSCRIPT_TOKEN_LIMIT", def.TranscriptTokenLimit),
		MaxJSONRetries:       getEnvInt("RUN_MAX_JSON_RETRIES", def.MaxJSONRetries),
		MaxToolRetries:       getEnvInt("RUN_MAX_TOOL_RETRIES", def.MaxToolRetries),
		MaxRuntime:           time.Duration(getEnvInt("RUN_MAX_RUNTIME_MS", int(def.MaxRuntime/time.Millisecond))) * time.Millisecond,
		MaxSubagentsPerSpawn: getEnvInt("RUN_MAX_SUBAGENTS_PER_SPAWN", def.MaxSubagentsPerSpawn),
		WatchdogDelay:        getEnvDuration("RUN_WATCHDOG_DELAY", def.WatchdogDelay),
		DebugPrompts:         getEnvBool("RUN_DEBUG_PROMPTS", def.DebugPrompts),
	}
}

// Validate checks iteration budget ordering and ranges.
func (c EngineConfig) Validate() error {
	if c.MinIterations < 1 {
		return NewValidationError("engine", "RUN_MIN_ITERATIONS",
			fmt.Errorf("must be at least 1, got %d", c.MinIterations))
	}
	if c.MaxIterations < c.MinIterations {
		return NewValidationError("engine", "RUN_MAX_ITERATIONS",
			fmt.Errorf("must be >= min iterations (%d), got %d", c.MinIterations, c.MaxIterations))
	}
	if c.MaxIterationsHardCap < c.MaxIterations {
		return NewValidationError("engine", "RUN_MAX_ITERATIONS_HARD_CAP",
			fmt.Errorf("must be >= max iterations (%d), got %d", c.MaxIterations, c.MaxIterationsHardCap))
	}
	if c.TranscriptLimit < 1 {
		return NewValidationError("engine", "RUN_TRANSCRIPT_LIMIT",
			fmt.Errorf("must be at least 1, got %d", c.TranscriptLimit))
	}
	if c.MaxRuntime < time.Second {
		return NewValidationError("engine", "RUN_MAX_RUNTIME_MS",
			fmt.Errorf("must be at least 1000, got %d", c.MaxRuntime/time.Millisecond))
	}
	if c.MaxSubagentsPerSpawn < 1 || c.MaxSubagentsPerSpawn > 10 {
		return NewValidationError("engine", "RUN_MAX_SUBAGENTS_PER_SPAWN",
			fmt.Errorf("must be between 1 and 10, got %d", c.MaxSubagentsPerSpawn))
	}
	return nil
}
