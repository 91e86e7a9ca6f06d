package tools

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const echoSchema = `{
	"type": "object",
	"properties": {
		"text": {"type": "string"},
		"count": {"type": "integer", "minimum": 1}
	},
	"required": ["text"],
	"additionalProperties": false
}`

func echoTool(policy ToolPolicy) Tool {
	return Tool{
		Name:             "echo",
		ShortDescription: "test tool",
		Policy:           policy,
		Commands: []Command{
			{
				Name:        "say",
				Description: "Echo the text back",
				ArgsSchema:  echoSchema,
				Handler: func(ctx context.Context, tc ToolContext, args map[string]any) (Result, error) {
					return Result{Success: true, Result: args["text"]}, nil
				},
			},
			{
				Name:        "fail",
				Description: "Always errors",
				Handler: func(ctx context.Context, tc ToolContext, args map[string]any) (Result, error) {
					return Result{}, fmt.Errorf("handler exploded")
				},
			},
		},
	}
}

func TestRegisterRejectsDuplicatesAndBadInput(t *testing.T) {
	r := NewRegistry(nil)

	require.NoError(t, r.Register(echoTool(ToolPolicy{})))

	err := r.Register(echoTool(ToolPolicy{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	err = r.Register(Tool{Name: "dotted.name", Commands: []Command{{Name: "x", Handler: noopHandler}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain dots")

	err = r.Register(Tool{Name: "empty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no commands")

	err = r.Register(Tool{Name: "badschema", Commands: []Command{{
		Name:       "x",
		ArgsSchema: `{"type": not-json`,
		Handler:    noopHandler,
	}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile args schema")
}

func TestResolve(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(echoTool(ToolPolicy{})))

	tool, cmd, err := r.Resolve("echo.say")
	require.NoError(t, err)
	assert.Equal(t, "echo", tool.Name)
	assert.Equal(t, "say", cmd.Name)

	_, _, err = r.Resolve("echo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool.command")

	_, _, err = r.Resolve("nosuch.say")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tool "nosuch"`)
	assert.Contains(t, err.Error(), "echo")

	_, _, err = r.Resolve("echo.nosuch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no command "nosuch"`)
	assert.Contains(t, err.Error(), "say")
}

func TestExecute(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(echoTool(ToolPolicy{})))
	tc := ToolContext{TenantID: "t1", AgentID: "a1", RunID: "r1"}

	result, err := r.Execute(context.Background(), tc, "echo.say", map[string]any{"text": "hello"}, "")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "hello", result.Result)
}

func TestExecuteValidatesArgs(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(echoTool(ToolPolicy{})))
	tc := ToolContext{}

	tests := []struct {
		name string
		args map[string]any
	}{
		{"missing required field", map[string]any{"count": 2}},
		{"wrong type", map[string]any{"text": 42}},
		{"unknown field", map[string]any{"text": "x", "bogus": true}},
		{"constraint violation", map[string]any{"text": "x", "count": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Execute(context.Background(), tc, "echo.say", tt.args, "")
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Contains(t, result.Error, "invalid arguments")
		})
	}

	// Commands without a schema accept anything, including nil args.
	result, err := r.Execute(context.Background(), tc, "echo.fail", nil, "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "handler exploded", result.Error)
}

func TestExecuteUnknownToolAsResult(t *testing.T) {
	r := NewRegistry(nil)

	result, err := r.Execute(context.Background(), ToolContext{}, "ghost.walk", nil, "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "unknown tool")
}

func TestExecutePolicyDeny(t *testing.T) {
	engine := NewPolicyEngine(ProfilePolicy{Name: "locked", Deny: []string{"echo.*"}})
	r := NewRegistry(engine)
	require.NoError(t, r.Register(echoTool(ToolPolicy{})))

	result, err := r.Execute(context.Background(), ToolContext{}, "echo.say", map[string]any{"text": "hi"}, "locked")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, DeniedByPolicy, result.Error)

	// Same call under no profile goes through.
	result, err = r.Execute(context.Background(), ToolContext{}, "echo.say", map[string]any{"text": "hi"}, "")
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestExecuteApprovalTreatedAsDeny(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(echoTool(ToolPolicy{
		Rules: []PolicyRule{{Command: "say", Effect: DecisionApprove}},
	})))

	result, err := r.Execute(context.Background(), ToolContext{}, "echo.say", map[string]any{"text": "hi"}, "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, DeniedByPolicy)
	assert.Contains(t, result.Error, "approval required")
}

func TestDescribe(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.Register(echoTool(ToolPolicy{})))
	require.NoError(t, r.Register(ClockTool()))

	// Pinned tools appear without being named.
	out := r.Describe(nil)
	assert.Contains(t, out, "- clock.now:")
	assert.NotContains(t, out, "echo.say")

	// Named tools appear alongside pinned ones; unknown names are skipped.
	out = r.Describe([]string{"echo", "nosuch"})
	assert.Contains(t, out, "- echo.say: Echo the text back")
	assert.Contains(t, out, "- clock.now:")

	// Qualified names select the whole tool.
	out = r.Describe([]string{"echo.say"})
	assert.Contains(t, out, "- echo.fail:")
}

func noopHandler(ctx context.Context, tc ToolContext, args map[string]any) (Result, error) {
	return Result{Success: true}, nil
}
