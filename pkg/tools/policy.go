package tools

import "strings"

// Decision is a policy evaluation outcome. Approve is recorded but treated
// as deny at execution time; approval flows live outside this process.
type Decision string

const (
	DecisionAllow   Decision = "allow"
	DecisionDeny    Decision = "deny"
	DecisionApprove Decision = "approve"
)

// PolicyRule binds one command pattern to an effect. Command is a command
// name or "*".
type PolicyRule struct {
	Command string   `json:"command"`
	Effect  Decision `json:"effect"`
}

// ToolPolicy is the access policy a tool declares for itself.
type ToolPolicy struct {
	Rules   []PolicyRule `json:"rules,omitempty"`
	Default Decision     `json:"default,omitempty"` // empty falls through to the engine default
}

// ProfilePolicy is a named agent-level policy. Entries are qualified
// "tool.command" names, "tool.*" wildcards, or bare tool names.
type ProfilePolicy struct {
	Name  string   `json:"name"`
	Deny  []string `json:"deny,omitempty"`
	Allow []string `json:"allow,omitempty"`
}

// PolicyEngine evaluates tool access. Deny rules always win over allow
// rules; tool-level rules are checked before profile lists.
type PolicyEngine struct {
	profiles map[string]ProfilePolicy
}

// NewPolicyEngine creates an engine with the given profiles. An unknown
// profile name at evaluation time simply skips the profile steps.
func NewPolicyEngine(profiles ...ProfilePolicy) *PolicyEngine {
	e := &PolicyEngine{profiles: make(map[string]ProfilePolicy, len(profiles))}
	for _, p := range profiles {
		e.profiles[p.Name] = p
	}
	return e
}

// AddProfile registers or replaces a named profile.
func (e *PolicyEngine) AddProfile(p ProfilePolicy) {
	e.profiles[p.Name] = p
}

// Evaluate runs the decision pipeline for one command invocation:
// tool deny rules, profile deny list, tool allow/approve rules, profile
// allow list, tool default, engine default (allow).
func (e *PolicyEngine) Evaluate(tenantID, agentID, toolName, commandName string, args map[string]any, profile string, tool *Tool) Decision {
	var pol ToolPolicy
	if tool != nil {
		pol = tool.Policy
	}

	for _, r := range pol.Rules {
		if r.Effect == DecisionDeny && matchCommand(r.Command, commandName) {
			return DecisionDeny
		}
	}

	prof, hasProfile := e.profiles[profile]
	if hasProfile {
		for _, entry := range prof.Deny {
			if matchQualified(entry, toolName, commandName) {
				return DecisionDeny
			}
		}
	}

	for _, r := range pol.Rules {
		if (r.Effect == DecisionAllow || r.Effect == DecisionApprove) && matchCommand(r.Command, commandName) {
			return r.Effect
		}
	}

	if hasProfile {
		for _, entry := range prof.Allow {
			if matchQualified(entry, toolName, commandName) {
				return DecisionAllow
			}
		}
	}

	if pol.Default != "" {
		return pol.Default
	}
	return DecisionAllow
}

func matchCommand(pattern, command string) bool {
	return pattern == "*" || pattern == command
}

// matchQualified matches a profile entry against a tool.command pair.
// Accepted forms: "tool.command", "tool.*", bare "tool".
func matchQualified(entry, toolName, commandName string) bool {
	entry = strings.TrimSpace(entry)
	if entry == toolName || entry == toolName+".*" {
		return true
	}
	return entry == toolName+"."+commandName
}
