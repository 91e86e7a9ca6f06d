package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"API_PORT", "LOG_LEVEL", "ENCRYPTION_KEY",
	"RUN_MAX_ITERATIONS", "RUN_MIN_ITERATIONS", "RUN_MAX_ITERATIONS_HARD_CAP",
	"RUN_TRANSCRIPT_LIMIT", "RUN_TRANSCRIPT_TOKEN_LIMIT",
	"RUN_MAX_JSON_RETRIES", "RUN_MAX_TOOL_RETRIES", "RUN_MAX_RUNTIME_MS",
	"RUN_MAX_SUBAGENTS_PER_SPAWN", "RUN_WATCHDOG_DELAY", "RUN_DEBUG_PROMPTS",
	"LLM_BASE_URL", "LLM_API_KEY", "LLM_MODEL", "LLM_FALLBACK_MODEL", "LLM_TIMEOUT_SECONDS",
	"WORKER_CONCURRENCY", "QUEUE_POLL_INTERVAL", "QUEUE_POLL_JITTER", "QUEUE_DRAIN_TIMEOUT",
	"HEARTBEAT_INTERVAL", "ORPHAN_SCAN_INTERVAL", "ORPHAN_THRESHOLD",
	"TRIGGER_SCAN_INTERVAL", "TRIGGER_BATCH_SIZE",
	"MEMORY_WRITER_MAX_MESSAGES", "MAX_TURNS_PER_CONTEXT",
	"RUN_RETENTION_DAYS", "QUEUE_JOB_TTL", "CLEANUP_INTERVAL",
	"DISCORD_BOT_TOKEN",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range configEnvKeys {
			os.Unsetenv(key)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Equal(t, 12, cfg.Engine.MaxIterations)
	assert.Equal(t, 4, cfg.Engine.MinIterations)
	assert.Equal(t, 40, cfg.Engine.MaxIterationsHardCap)
	assert.Equal(t, 40, cfg.Engine.TranscriptLimit)
	assert.Equal(t, 6000, cfg.Engine.TranscriptTokenLimit)
	assert.Equal(t, 2, cfg.Engine.MaxJSONRetries)
	assert.Equal(t, 2, cfg.Engine.MaxToolRetries)
	assert.Equal(t, 5*time.Minute, cfg.Engine.MaxRuntime)
	assert.Equal(t, 30*time.Second, cfg.Engine.WatchdogDelay)
	assert.False(t, cfg.Engine.DebugPrompts)

	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "gpt-4o", cfg.LLM.FallbackModel)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)

	assert.Equal(t, 5, cfg.Queue.WorkerConcurrency)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Queue.PollIntervalJitter)
	assert.Equal(t, 30*time.Second, cfg.Queue.DrainTimeout)
	assert.Equal(t, 1*time.Minute, cfg.Queue.OrphanScanInterval)
	assert.Equal(t, 2*time.Minute, cfg.Queue.OrphanThreshold)

	assert.Equal(t, 15*time.Second, cfg.Scheduler.TriggerScanInterval)
	assert.Equal(t, 25, cfg.Memory.WriterMaxMessages)
	assert.Equal(t, 30, cfg.Memory.MaxTurnsPerContext)
	assert.Equal(t, 90, cfg.Retention.RunRetentionDays)

	assert.False(t, cfg.Delivery.DiscordEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	clearConfigEnv(t)

	os.Setenv("RUN_MAX_ITERATIONS", "20")
	os.Setenv("RUN_MAX_RUNTIME_MS", "120000")
	os.Setenv("WORKER_CONCURRENCY", "10")
	os.Setenv("QUEUE_POLL_INTERVAL", "2s")
	os.Setenv("LLM_MODEL", "gpt-4.1-mini")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("DISCORD_BOT_TOKEN", "token-123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Engine.MaxIterations)
	assert.Equal(t, 2*time.Minute, cfg.Engine.MaxRuntime)
	assert.Equal(t, 10, cfg.Queue.WorkerConcurrency)
	assert.Equal(t, 2*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.Model)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Delivery.DiscordEnabled())
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{
			name:    "max iterations below min",
			key:     "RUN_MAX_ITERATIONS",
			value:   "2",
			wantErr: "RUN_MAX_ITERATIONS",
		},
		{
			name:    "hard cap below max",
			key:     "RUN_MAX_ITERATIONS_HARD_CAP",
			value:   "5",
			wantErr: "RUN_MAX_ITERATIONS_HARD_CAP",
		},
		{
			name:    "worker concurrency too high",
			key:     "WORKER_CONCURRENCY",
			value:   "100",
			wantErr: "WORKER_CONCURRENCY",
		},
		{
			name:    "orphan threshold below heartbeat",
			key:     "ORPHAN_THRESHOLD",
			value:   "10s",
			wantErr: "ORPHAN_THRESHOLD",
		},
		{
			name:    "bad log level",
			key:     "LOG_LEVEL",
			value:   "verbose",
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "encryption key not hex",
			key:     "ENCRYPTION_KEY",
			value:   "not-hex",
			wantErr: "ENCRYPTION_KEY",
		},
		{
			name:    "encryption key wrong length",
			key:     "ENCRYPTION_KEY",
			value:   "deadbeef",
			wantErr: "ENCRYPTION_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			os.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidEncryptionKey(t *testing.T) {
	clearConfigEnv(t)
	// 32 bytes hex-encoded
	os.Setenv("ENCRYPTION_KEY", "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Len(t, cfg.EncryptionKey, 64)
}

func TestValidationErrorUnwrap(t *testing.T) {
	inner := ErrInvalidValue
	err := NewValidationError("queue", "WORKER_CONCURRENCY", inner)

	assert.Contains(t, err.Error(), "queue")
	assert.Contains(t, err.Error(), "WORKER_CONCURRENCY")
	assert.ErrorIs(t, err, inner)
}
