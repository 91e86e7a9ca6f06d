package models

// Memory modules accepted by the memory writer. (userId, module, key) is
// unique among non-archived items.
const (
	MemoryModuleIdentity      = "identity"
	MemoryModulePreferences   = "preferences"
	MemoryModuleConstraints   = "constraints"
	MemoryModuleProjects      = "projects"
	MemoryModuleRelationships = "relationships"
	MemoryModuleEnvironment   = "environment"
	MemoryModuleRecentContext = "recent_context"
)

// MemoryModules is the set of valid module names.
var MemoryModules = map[string]bool{
	MemoryModuleIdentity:      true,
	MemoryModulePreferences:   true,
	MemoryModuleConstraints:   true,
	MemoryModuleProjects:      true,
	MemoryModuleRelationships: true,
	MemoryModuleEnvironment:   true,
	MemoryModuleRecentContext: true,
}

// Memory op verbs produced by the writer model.
const (
	MemoryOpAdd    = "add"
	MemoryOpUpdate = "update"
	MemoryOpDelete = "delete"
	MemoryOpTouch  = "touch"
)

// MemoryOp is one operation proposed by the memory-writer model after
// normalisation. Level and Confidence default when the model omits them.
type MemoryOp struct {
	Op         string   `json:"op"`
	ID         string   `json:"id,omitempty"`
	Module     string   `json:"module,omitempty"`
	Key        string   `json:"key,omitempty"`
	Value      string   `json:"value,omitempty"`
	Level      *int     `json:"level,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Pin        bool     `json:"pin,omitempty"`
}

// MemoryLevelCap bounds one memory level: at most MaxItems non-archived
// items, each value truncated to MaxChars on write.
type MemoryLevelCap struct {
	MaxItems int
	MaxChars int
}

// MemoryLevelCaps maps level 0..5 to its cap. Lower levels hold fewer,
// shorter, more identity-critical facts.
var MemoryLevelCaps = map[int]MemoryLevelCap{
	0: {MaxItems: 4, MaxChars: 50},
	1: {MaxItems: 8, MaxChars: 120},
	2: {MaxItems: 10, MaxChars: 180},
	3: {MaxItems: 12, MaxChars: 200},
	4: {MaxItems: 12, MaxChars: 240},
	5: {MaxItems: 6, MaxChars: 300},
}

// MemoryWriteResult summarises one writer invocation.
type MemoryWriteResult struct {
	Skipped     bool   `json:"skipped"`
	SkipReason  string `json:"skip_reason,omitempty"`
	Applied     int    `json:"applied"`
	SkippedOps  int    `json:"skipped_ops"`
	Archived    int    `json:"archived"`
	RawResponse string `json:"raw_response,omitempty"`
}

// Memory writer skip reasons. These are structured results, not errors.
const (
	MemorySkipDisabled      = "memory_disabled"
	MemorySkipMissingAPIKey = "missing_api_key"
	MemorySkipInvalidAPIKey = "invalid_api_key"
	MemorySkipNoMessages    = "no_messages"
)
