package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DeniedByPolicy is the failure reason recorded when policy blocks a call.
const DeniedByPolicy = "Denied by policy"

// Registry resolves qualified command names and executes them behind
// policy and argument validation. Registration happens at startup;
// lookups are concurrency-safe.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]*Tool
	schemas map[string]*jsonschema.Schema // "tool.command" → compiled args schema
	policy  *PolicyEngine
}

// NewRegistry creates a registry. policy may be nil, which allows
// everything.
func NewRegistry(policy *PolicyEngine) *Registry {
	if policy == nil {
		policy = NewPolicyEngine()
	}
	return &Registry{
		tools:   make(map[string]*Tool),
		schemas: make(map[string]*jsonschema.Schema),
		policy:  policy,
	}
}

// Register adds a tool, compiling every command's argument schema once.
// Duplicate tool names and invalid schemas are rejected.
func (r *Registry) Register(tool Tool) error {
	if tool.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if strings.Contains(tool.Name, ".") {
		return fmt.Errorf("tool name %q must not contain dots", tool.Name)
	}
	if len(tool.Commands) == 0 {
		return fmt.Errorf("tool %q declares no commands", tool.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("tool %q is already registered", tool.Name)
	}

	compiled := make(map[string]*jsonschema.Schema, len(tool.Commands))
	seen := make(map[string]bool, len(tool.Commands))
	for _, cmd := range tool.Commands {
		if cmd.Name == "" || cmd.Handler == nil {
			return fmt.Errorf("tool %q: command needs a name and a handler", tool.Name)
		}
		if seen[cmd.Name] {
			return fmt.Errorf("tool %q: duplicate command %q", tool.Name, cmd.Name)
		}
		seen[cmd.Name] = true
		if cmd.ArgsSchema == "" {
			continue
		}
		qualified := tool.Name + "." + cmd.Name
		schema, err := jsonschema.CompileString(qualified+".args.schema.json", cmd.ArgsSchema)
		if err != nil {
			return fmt.Errorf("tool %q: compile args schema for %q: %w", tool.Name, cmd.Name, err)
		}
		compiled[qualified] = schema
	}

	t := tool
	r.tools[t.Name] = &t
	for name, schema := range compiled {
		r.schemas[name] = schema
	}
	return nil
}

// Resolve looks up a qualified "tool.command" name.
func (r *Registry) Resolve(name string) (*Tool, *Command, error) {
	toolName, commandName, err := SplitName(name)
	if err != nil {
		return nil, nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[toolName]
	if !ok {
		return nil, nil, fmt.Errorf("unknown tool %q. Registered tools: %s", toolName, strings.Join(r.toolNamesLocked(), ", "))
	}
	for i := range tool.Commands {
		if tool.Commands[i].Name == commandName {
			return tool, &tool.Commands[i], nil
		}
	}
	return nil, nil, fmt.Errorf("tool %q has no command %q. Commands: %s", toolName, commandName, strings.Join(commandNames(tool), ", "))
}

// Execute resolves, policy-checks, validates, and runs one command.
// Failures of any of those stages come back as an unsuccessful Result
// rather than a Go error, so callers can persist them as tool output.
func (r *Registry) Execute(ctx context.Context, tc ToolContext, name string, args map[string]any, profile string) (Result, error) {
	tool, cmd, err := r.Resolve(name)
	if err != nil {
		return Result{Success: false, Error: err.Error()}, nil
	}

	decision := r.policy.Evaluate(tc.TenantID, tc.AgentID, tool.Name, cmd.Name, args, profile, tool)
	switch decision {
	case DecisionDeny:
		return Result{Success: false, Error: DeniedByPolicy}, nil
	case DecisionApprove:
		if tc.Logger != nil {
			tc.Logger.Info("Tool call requires approval, treating as denied",
				"tool", tool.Name, "command", cmd.Name, "profile", profile)
		}
		return Result{Success: false, Error: DeniedByPolicy + " (approval required)"}, nil
	}

	if args == nil {
		args = map[string]any{}
	}
	if err := r.validateArgs(tool.Name+"."+cmd.Name, args); err != nil {
		return Result{Success: false, Error: fmt.Sprintf("invalid arguments: %s", err)}, nil
	}

	result, err := cmd.Handler(ctx, tc, args)
	if err != nil {
		return Result{Success: false, Error: err.Error()}, nil
	}
	return result, nil
}

// validateArgs checks args against the command's compiled schema. Args are
// round-tripped through JSON so handler-crafted values (ints, structs)
// validate the same as wire values.
func (r *Registry) validateArgs(qualified string, args map[string]any) error {
	r.mu.RLock()
	schema, ok := r.schemas[qualified]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	payload, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode args: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fmt.Errorf("decode args: %w", err)
	}
	return schema.Validate(decoded)
}

// Get returns a registered tool by bare name.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools, important ones first, then
// alphabetical.
func (r *Registry) List() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

// Describe renders "- tool.command: description" lines for the named
// tools plus every pinned tool, for inclusion in a system prompt.
// Unknown names are skipped.
func (r *Registry) Describe(names []string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	include := make(map[string]bool, len(names))
	for _, n := range names {
		// Accept both bare tool names and qualified tool.command names.
		if toolName, _, err := SplitName(n); err == nil {
			include[toolName] = true
		} else {
			include[strings.TrimSpace(n)] = true
		}
	}

	var lines []string
	for _, tool := range r.listLocked() {
		if !tool.Pinned && !include[tool.Name] {
			continue
		}
		for _, cmd := range tool.Commands {
			lines = append(lines, fmt.Sprintf("- %s.%s: %s", tool.Name, cmd.Name, cmd.Description))
		}
	}
	return strings.Join(lines, "\n")
}

// DescribeAll renders every registered tool, for runs without an
// allowed-tools restriction.
func (r *Registry) DescribeAll() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var lines []string
	for _, tool := range r.listLocked() {
		for _, cmd := range tool.Commands {
			lines = append(lines, fmt.Sprintf("- %s.%s: %s", tool.Name, cmd.Name, cmd.Description))
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Registry) listLocked() []*Tool {
	out := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Important != out[j].Important {
			return out[i].Important
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *Registry) toolNamesLocked() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func commandNames(tool *Tool) []string {
	names := make([]string, 0, len(tool.Commands))
	for _, c := range tool.Commands {
		names = append(names, c.Name)
	}
	return names
}
