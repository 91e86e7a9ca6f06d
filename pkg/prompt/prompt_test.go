package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductorhq/conductor/pkg/models"
)

func TestSystemCoordinator(t *testing.T) {
	result := System(SystemParams{Role: models.RoleCoordinator})

	assert.Contains(t, result, "Coordinator Instructions")
	assert.Contains(t, result, "spawn_subagent")
	assert.Contains(t, result, "deliver_subagent_output")
	assert.Contains(t, result, "queue_op")
	assert.Contains(t, result, "You may not call tools directly")

	// Shared protocol sections present for every role.
	assert.Contains(t, result, "Response Protocol")
	assert.Contains(t, result, "Note Protocol")
	assert.Contains(t, result, "## Budget")

	// Coordinator gets no tool listing even when one is supplied.
	withTools := System(SystemParams{Role: models.RoleCoordinator, ToolList: "- web.search: search"})
	assert.NotContains(t, withTools, "Available Tools")
}

func TestSystemSubagent(t *testing.T) {
	result := System(SystemParams{
		Role:     models.RoleSubagent,
		ToolList: "- web.search: search the web\n- clock.now: current time",
	})

	assert.Contains(t, result, "Subagent Instructions")
	assert.Contains(t, result, "You cannot send messages to the user")
	assert.Contains(t, result, "request_parent")
	assert.Contains(t, result, "Available Tools")
	assert.Contains(t, result, "web.search: search the web")

	// Delegation section appears only when the parent allowed it.
	assert.NotContains(t, result, "## Delegation")

	allowed := System(SystemParams{Role: models.RoleSubagent, AllowSubagents: true})
	assert.Contains(t, allowed, "## Delegation")
	assert.Contains(t, allowed, "Spawned workers cannot delegate further")
}

func TestSystemSubsubagent(t *testing.T) {
	result := System(SystemParams{Role: models.RoleSubsubagent, AllowSubagents: true})

	assert.Contains(t, result, "Worker Instructions")
	assert.Contains(t, result, "cannot spawn further agents")
	// Depth limit wins over the parent's allowSubagents flag.
	assert.NotContains(t, result, "## Delegation")
}

func TestSystemProfile(t *testing.T) {
	result := System(SystemParams{Role: models.RoleSubagent, Profile: "researcher"})
	assert.Contains(t, result, `"researcher" profile`)

	bare := System(SystemParams{Role: models.RoleSubagent})
	assert.NotContains(t, bare, "## Profile")
}

func TestSystemListsEveryCommand(t *testing.T) {
	result := System(SystemParams{Role: models.RoleCoordinator})

	commands := []string{
		"note", "decision", "tool_call", "spawn_subagent", "spawn_subagents",
		"queue_op", "set_output", "send_message", "deliver_subagent_output",
		"request_parent", "reply_subagent", "retry_subagent",
		"set_run_limits", "sleep", "finish",
	}
	for _, cmd := range commands {
		assert.Contains(t, result, `"type":"`+cmd+`"`, "command %s missing from protocol", cmd)
	}
}

func TestValidator(t *testing.T) {
	system, user := Validator("Summarize the Q3 report", "Must cite revenue figures", "Revenue rose 12%...")

	assert.Contains(t, system, `"decision":"send"|"revise"`)
	assert.Contains(t, system, `"retry"`)

	assert.Contains(t, user, "Summarize the Q3 report")
	assert.Contains(t, user, "Recorded Requirements")
	assert.Contains(t, user, "Must cite revenue figures")
	assert.Contains(t, user, "Output Under Review")
	assert.Contains(t, user, "Revenue rose 12%")
}

func TestValidatorWithoutRequirements(t *testing.T) {
	_, user := Validator("Say hello", "  ", "Hello!")

	assert.NotContains(t, user, "Recorded Requirements")
	assert.Contains(t, user, "Say hello")
	assert.Contains(t, user, "Hello!")
}

func TestMemoryWriter(t *testing.T) {
	system, user := MemoryWriter("[preferences] units: metric", "user: I moved to Berlin last month")

	assert.Contains(t, system, `"op":"add"|"update"|"delete"|"touch"`)
	assert.Contains(t, system, "identity, preferences, constraints, projects, relationships, environment, recent_context")
	assert.Contains(t, system, "NEVER store credentials")

	assert.Contains(t, user, "Current Memories")
	assert.Contains(t, user, "[preferences] units: metric")
	assert.Contains(t, user, "Conversation Segment")
	assert.Contains(t, user, "I moved to Berlin last month")
}

func TestMemoryWriterEmptyMemories(t *testing.T) {
	_, user := MemoryWriter("", "user: hi")
	assert.Contains(t, user, "(no stored memories yet)")
}

func TestSectionOrdering(t *testing.T) {
	result := System(SystemParams{Role: models.RoleSubagent, AllowSubagents: true, Profile: "researcher"})

	// Role preamble first, then delegation, profile, and the shared protocol.
	roleIdx := strings.Index(result, "Subagent Instructions")
	delegIdx := strings.Index(result, "## Delegation")
	profIdx := strings.Index(result, "## Profile")
	protoIdx := strings.Index(result, "Response Protocol")
	budgetIdx := strings.Index(result, "## Budget")

	assert.Less(t, roleIdx, delegIdx)
	assert.Less(t, delegIdx, profIdx)
	assert.Less(t, profIdx, protoIdx)
	assert.Less(t, protoIdx, budgetIdx)
}
