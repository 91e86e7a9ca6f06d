// Package models defines the shared plain-data types exchanged between the
// engine, queue, services, and API layers: run input/state blobs, spawn
// specs, memory operations, and queue job payload helpers.
package models

import "time"

// Run kinds stored on the run row.
const (
	RunKindCoordinator = "coordinator"
	RunKindSubagent    = "subagent"
)

// Role identifies the command surface available to a run.
type Role string

const (
	RoleCoordinator Role = "coordinator"
	RoleSubagent    Role = "subagent"
	RoleSubsubagent Role = "subsubagent"
)

// DeriveRole maps (kind, agentLevel) to the role that governs which
// commands the run may execute. A subagent at level >= 2 is a
// subsubagent and must never spawn further children.
func DeriveRole(kind string, agentLevel int) Role {
	if kind == RunKindCoordinator {
		return RoleCoordinator
	}
	if agentLevel >= 2 {
		return RoleSubsubagent
	}
	return RoleSubagent
}

// RunInput is the JSON document stored in runs.input. It carries the
// spawn-time parameters plus the engine scratch state that survives
// across claims.
type RunInput struct {
	State          RunState       `json:"state"`
	Context        []ContextEntry `json:"context,omitempty"`
	AgentLevel     int            `json:"agentLevel"`
	AllowSubagents bool           `json:"allowSubagents,omitempty"`
	RetryOf        string         `json:"retryOf,omitempty"`
}

// RunState is engine scratch state, rewritten atomically with the
// owning run row and mutated only by the engine that claimed the run.
type RunState struct {
	Queue                    []string     `json:"queue,omitempty"`
	Inbox                    []InboxEntry `json:"inbox,omitempty"`
	WaitingForParent         bool         `json:"waitingForParent,omitempty"`
	AutoRecoverySpawned      bool         `json:"autoRecoverySpawned,omitempty"`
	LastRequestParentMessage string       `json:"lastRequestParentMessage,omitempty"`
	RequestParentRepeatCount int          `json:"requestParentRepeatCount,omitempty"`
	LastBlockReason          string       `json:"lastBlockReason,omitempty"`
	LastBlockDetail          string       `json:"lastBlockDetail,omitempty"`
}

// InboxEntry is one message exchanged between a parent run and a child
// run, appended to the receiver's state.inbox.
type InboxEntry struct {
	FromRunID string    `json:"fromRunId"`
	Message   string    `json:"message"`
	At        time.Time `json:"at"`
}

// ContextEntry seeds the conversation window of a spawned run.
type ContextEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SpawnSpec describes one child run requested by a spawn command.
// AgentLevel is optional; when nil the child runs at parent level + 1.
type SpawnSpec struct {
	Profile    string         `json:"profile,omitempty"`
	Task       string         `json:"task"`
	Tools      []string       `json:"tools,omitempty"`
	Context    []ContextEntry `json:"context,omitempty"`
	AgentLevel *int           `json:"agentLevel,omitempty"`
}

// Wake reasons recorded on waiting runs and carried by wake jobs.
const (
	WakeReasonSubagentWatchdog = "subagent_watchdog"
	WakeReasonWaitingForParent = "waiting_for_parent"
	WakeReasonParentReply      = "parent_reply"
	WakeReasonSubagentDone     = "subagent_done"
	WakeReasonSleep            = "sleep"
	WakeReasonCron             = "cron"
)
