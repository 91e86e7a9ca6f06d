package config

import "fmt"

// MemoryConfig contains memory-writer and context rotation settings.
type MemoryConfig struct {
	// WriterMaxMessages is how many recent messages the writer loads
	// when no explicit segment is supplied.
	WriterMaxMessages int

	// MaxTurnsPerContext is how many inbound turns a context may hold
	// before it rotates and a memory-write job is enqueued for the
	// closed segment.
	MaxTurnsPerContext int
}

// DefaultMemoryConfig returns the built-in memory defaults.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		WriterMaxMessages:  25,
		MaxTurnsPerContext: 30,
	}
}

func loadMemoryConfig() MemoryConfig {
	def := DefaultMemoryConfig()
	return MemoryConfig{
		WriterMaxMessages:  getEnvInt("MEMORY_WRITER_MAX_MESSAGES", def.WriterMaxMessages),
		MaxTurnsPerContext: getEnvInt("MAX_TURNS_PER_CONTEXT", def.MaxTurnsPerContext),
	}
}

// Validate checks message and turn count ranges.
func (c MemoryConfig) Validate() error {
	if c.WriterMaxMessages < 1 || c.WriterMaxMessages > 200 {
		return NewValidationError("memory", "MEMORY_WRITER_MAX_MESSAGES",
			fmt.Errorf("must be between 1 and 200, got %d", c.WriterMaxMessages))
	}
	if c.MaxTurnsPerContext < 1 {
		return NewValidationError("memory", "MAX_TURNS_PER_CONTEXT",
			fmt.Errorf("must be at least 1, got %d", c.MaxTurnsPerContext))
	}
	return nil
}
