// Package tools provides the tool registry, argument validation, and the
// policy engine gating tool execution. Tools are bundles of named commands;
// the engine invokes them as "tool.command" with a JSON args object.
package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/conductorhq/conductor/ent"
)

// Store is the slice of the data layer exposed to tool handlers.
// *services.MemoryService satisfies it.
type Store interface {
	Search(ctx context.Context, userID, query string, limit int) ([]*ent.MemoryItem, error)
	ListActive(ctx context.Context, userID string) ([]*ent.MemoryItem, error)
}

// ToolContext carries the per-invocation identity and dependencies a
// handler may use. Handlers must not retain it past the call.
type ToolContext struct {
	TenantID  string
	AgentID   string
	RunID     string
	UserID    string
	ChannelID string
	Store     Store
	Logger    *slog.Logger
	Config    map[string]any // per-user tool config, validated against ConfigSchema
}

// Result is the outcome of one command invocation.
type Result struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Handler executes one command. Domain failures go into Result with
// Success=false; a returned error means the handler itself broke.
type Handler func(ctx context.Context, tc ToolContext, args map[string]any) (Result, error)

// Command is one invocable operation of a tool.
type Command struct {
	Name        string
	Description string
	ArgsSchema  string // JSON Schema; empty means the command takes no arguments
	Handler     Handler
}

// Tool is a named bundle of commands plus its access policy.
type Tool struct {
	Name             string
	ShortDescription string
	LongDescription  string
	Commands         []Command
	ConfigSchema     string // JSON Schema for per-user tool config, optional
	Pinned           bool   // always offered to agents regardless of selection
	Important        bool   // surfaced first in tool listings
	Policy           ToolPolicy
}

// SplitName splits a qualified "tool.command" name.
func SplitName(name string) (toolName, commandName string, err error) {
	parts := strings.SplitN(strings.TrimSpace(name), ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("tool name %q is not of the form tool.command", name)
	}
	return parts[0], parts[1], nil
}
