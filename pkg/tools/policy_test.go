package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePipeline(t *testing.T) {
	engine := NewPolicyEngine(
		ProfilePolicy{
			Name:  "restricted",
			Deny:  []string{"memory.*"},
			Allow: []string{"clock.now"},
		},
		ProfilePolicy{
			Name:  "reader",
			Allow: []string{"memory"},
		},
	)

	tests := []struct {
		name     string
		tool     Tool
		command  string
		profile  string
		expected Decision
	}{
		{
			name:     "engine default allows",
			tool:     Tool{Name: "clock"},
			command:  "now",
			profile:  "",
			expected: DecisionAllow,
		},
		{
			name: "tool deny rule wins over profile allow",
			tool: Tool{Name: "clock", Policy: ToolPolicy{
				Rules: []PolicyRule{{Command: "now", Effect: DecisionDeny}},
			}},
			command:  "now",
			profile:  "restricted",
			expected: DecisionDeny,
		},
		{
			name: "profile deny wins over tool allow rule",
			tool: Tool{Name: "memory", Policy: ToolPolicy{
				Rules: []PolicyRule{{Command: "search", Effect: DecisionAllow}},
			}},
			command:  "search",
			profile:  "restricted",
			expected: DecisionDeny,
		},
		{
			name: "tool approve rule surfaces",
			tool: Tool{Name: "memory", Policy: ToolPolicy{
				Rules: []PolicyRule{{Command: "search", Effect: DecisionApprove}},
			}},
			command:  "search",
			profile:  "",
			expected: DecisionApprove,
		},
		{
			name: "wildcard deny rule covers every command",
			tool: Tool{Name: "memory", Policy: ToolPolicy{
				Rules: []PolicyRule{{Command: "*", Effect: DecisionDeny}},
			}},
			command:  "list",
			profile:  "",
			expected: DecisionDeny,
		},
		{
			name:     "bare tool name in profile allow matches all commands",
			tool:     Tool{Name: "memory"},
			command:  "list",
			profile:  "reader",
			expected: DecisionAllow,
		},
		{
			name:     "tool default deny applies when nothing matches",
			tool:     Tool{Name: "memory", Policy: ToolPolicy{Default: DecisionDeny}},
			command:  "search",
			profile:  "",
			expected: DecisionDeny,
		},
		{
			name:     "profile allow beats tool default deny",
			tool:     Tool{Name: "clock", Policy: ToolPolicy{Default: DecisionDeny}},
			command:  "now",
			profile:  "restricted",
			expected: DecisionAllow,
		},
		{
			name:     "unknown profile falls through to engine default",
			tool:     Tool{Name: "clock"},
			command:  "now",
			profile:  "nonexistent",
			expected: DecisionAllow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate("tenant-1", "agent-1", tt.tool.Name, tt.command, nil, tt.profile, &tt.tool)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchQualified(t *testing.T) {
	assert.True(t, matchQualified("memory.search", "memory", "search"))
	assert.True(t, matchQualified("memory.*", "memory", "list"))
	assert.True(t, matchQualified("memory", "memory", "search"))
	assert.False(t, matchQualified("memory.search", "memory", "list"))
	assert.False(t, matchQualified("clock.*", "memory", "search"))
}

func TestAddProfileReplaces(t *testing.T) {
	engine := NewPolicyEngine(ProfilePolicy{Name: "p", Deny: []string{"clock.*"}})
	tool := Tool{Name: "clock"}

	assert.Equal(t, DecisionDeny, engine.Evaluate("t", "a", "clock", "now", nil, "p", &tool))

	engine.AddProfile(ProfilePolicy{Name: "p"})
	assert.Equal(t, DecisionAllow, engine.Evaluate("t", "a", "clock", "now", nil, "p", &tool))
}
