package engine

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/titanous/json5"

	"github.com/conductorhq/conductor/pkg/models"
)

// Command types an agent may emit. One JSON object per LLM turn.
const (
	CmdToolCall              = "tool_call"
	CmdSendMessage           = "send_message"
	CmdDeliverSubagentOutput = "deliver_subagent_output"
	CmdRequestParent         = "request_parent"
	CmdReplySubagent         = "reply_subagent"
	CmdRetrySubagent         = "retry_subagent"
	CmdQueueOp               = "queue_op"
	CmdSetOutput             = "set_output"
	CmdFinish                = "finish"
	CmdDecision              = "decision"
	CmdNote                  = "note"
	CmdSetRunLimits          = "set_run_limits"
	CmdSpawnSubagent         = "spawn_subagent"
	CmdSpawnSubagents        = "spawn_subagents"
	CmdSleep                 = "sleep"
)

// RunCommand is one parsed agent command. Only the fields of the active
// variant are populated.
type RunCommand struct {
	Type string

	// tool_call
	Name string
	Args map[string]any

	// send_message / request_parent / reply_subagent
	Message string

	// deliver_subagent_output / reply_subagent / retry_subagent
	RunID string

	// retry_subagent
	Feedback string

	// queue_op
	Action string
	Items  []string

	// set_output / finish
	Output string
	Mode   string

	// note / decision
	Category   string
	Content    string
	Importance string

	// set_run_limits
	MaxIterations int
	Reason        string

	// spawn_subagent / spawn_subagents
	Subagents []models.SpawnSpec

	// sleep
	WakeAt       string
	DelaySeconds int
	HasDelay     bool
	Cron         string
}

// actionCommands are the commands gated behind the note protocol and
// counted toward the budget.
var actionCommands = map[string]bool{
	CmdToolCall:              true,
	CmdSendMessage:           true,
	CmdDeliverSubagentOutput: true,
	CmdRequestParent:         true,
	CmdReplySubagent:         true,
	CmdRetrySubagent:         true,
	CmdQueueOp:               true,
	CmdSetOutput:             true,
	CmdFinish:                true,
	CmdSpawnSubagent:         true,
	CmdSpawnSubagents:        true,
	CmdSleep:                 true,
}

// IsAction reports whether the command counts as an action under the
// note protocol and the iteration budget.
func (c *RunCommand) IsAction() bool {
	return actionCommands[c.Type]
}

// IsKnown reports whether the type is one of the recognized variants.
func (c *RunCommand) IsKnown() bool {
	switch c.Type {
	case CmdToolCall, CmdSendMessage, CmdDeliverSubagentOutput, CmdRequestParent,
		CmdReplySubagent, CmdRetrySubagent, CmdQueueOp, CmdSetOutput, CmdFinish,
		CmdDecision, CmdNote, CmdSetRunLimits, CmdSpawnSubagent, CmdSpawnSubagents,
		CmdSleep:
		return true
	}
	return false
}

// ParseCommand parses a raw LLM response into a RunCommand. Providers
// only guarantee JSON syntax at best, so parsing is progressively
// looser: strict JSON, then json5, then the first balanced {...} block.
func ParseCommand(raw string) (*RunCommand, error) {
	m, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	return normalizeCommand(m)
}

func decodeObject(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty response")
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err == nil {
		return m, nil
	}
	if err := json5.Unmarshal([]byte(raw), &m); err == nil && m != nil {
		return m, nil
	}

	block, ok := extractBalancedObject(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in response")
	}
	if err := json.Unmarshal([]byte(block), &m); err == nil {
		return m, nil
	}
	if err := json5.Unmarshal([]byte(block), &m); err != nil || m == nil {
		return nil, fmt.Errorf("response is not a JSON object")
	}
	return m, nil
}

// extractBalancedObject returns the first balanced {...} block, tracking
// strings and escapes so braces inside values don't end the block early.
func extractBalancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// normalizeCommand maps the loose field names models actually emit onto
// the canonical RunCommand shape.
func normalizeCommand(m map[string]any) (*RunCommand, error) {
	cmd := &RunCommand{}

	cmd.Type = strings.ToLower(strings.TrimSpace(
		firstString(m, "type", "action", "command", "cmd", "op")))
	if cmd.Type == "" {
		return nil, fmt.Errorf("command has no type")
	}

	switch cmd.Type {
	case CmdToolCall:
		cmd.Name = firstString(m, "name", "tool")
		cmd.Args, _ = m["args"].(map[string]any)
		if cmd.Args == nil {
			cmd.Args, _ = m["arguments"].(map[string]any)
		}
		if cmd.Name == "" {
			return nil, fmt.Errorf("tool_call without a tool name")
		}

	case CmdSendMessage, CmdRequestParent:
		cmd.Message = firstString(m, "message", "text", "content")
		if cmd.Message == "" {
			return nil, fmt.Errorf("%s without a message", cmd.Type)
		}

	case CmdDeliverSubagentOutput:
		cmd.RunID = firstString(m, "runId", "run_id")
		if cmd.RunID == "" {
			return nil, fmt.Errorf("deliver_subagent_output without runId")
		}

	case CmdReplySubagent:
		cmd.RunID = firstString(m, "runId", "run_id")
		cmd.Message = firstString(m, "message", "text", "content")
		if cmd.RunID == "" || cmd.Message == "" {
			return nil, fmt.Errorf("reply_subagent needs runId and message")
		}

	case CmdRetrySubagent:
		cmd.RunID = firstString(m, "runId", "run_id")
		cmd.Feedback = firstString(m, "feedback", "message", "text")
		if cmd.RunID == "" {
			return nil, fmt.Errorf("retry_subagent without runId")
		}

	case CmdQueueOp:
		cmd.Action = strings.ToLower(strings.TrimSpace(firstString(m, "action", "queueAction", "queue_action")))
		if cmd.Action == cmd.Type {
			// "action" was consumed as the type alias; look for the real one.
			cmd.Action = strings.ToLower(strings.TrimSpace(firstString(m, "queueAction", "queue_action", "operation")))
		}
		cmd.Items = stringSlice(m["items"])
		switch cmd.Action {
		case "push", "shift", "clear", "set":
		default:
			return nil, fmt.Errorf("queue_op action must be push, shift, clear, or set")
		}

	case CmdSetOutput:
		cmd.Output = firstString(m, "output", "text", "content")
		cmd.Mode = normalizeMode(firstString(m, "mode"))
		if cmd.Output == "" {
			return nil, fmt.Errorf("set_output without output")
		}

	case CmdFinish:
		cmd.Output = firstString(m, "output", "text", "content")
		cmd.Mode = normalizeMode(firstString(m, "mode"))

	case CmdDecision:
		cmd.Content = firstString(m, "content", "text", "message")
		cmd.Importance = strings.ToLower(strings.TrimSpace(firstString(m, "importance")))
		if cmd.Content == "" {
			return nil, fmt.Errorf("decision without content")
		}
		switch cmd.Importance {
		case "", "low", "normal", "high":
		default:
			cmd.Importance = "normal"
		}

	case CmdNote:
		cmd.Category = strings.ToLower(strings.TrimSpace(firstString(m, "category", "kind")))
		cmd.Content = firstString(m, "content", "text", "note")
		switch cmd.Category {
		case "requirements", "plan", "artifact", "validation":
		default:
			return nil, fmt.Errorf("note category must be requirements, plan, artifact, or validation")
		}
		if cmd.Content == "" {
			return nil, fmt.Errorf("note without content")
		}

	case CmdSetRunLimits:
		n, ok := intField(m, "maxIterations", "max_iterations")
		if !ok || n <= 0 {
			return nil, fmt.Errorf("set_run_limits needs a positive maxIterations")
		}
		cmd.MaxIterations = n
		cmd.Reason = firstString(m, "reason")

	case CmdSpawnSubagent:
		spec, err := spawnSpec(m["subagent"])
		if err != nil {
			// Models frequently inline the spec at the top level.
			spec, err = spawnSpec(m)
		}
		if err != nil {
			return nil, err
		}
		cmd.Subagents = []models.SpawnSpec{spec}

	case CmdSpawnSubagents:
		items, ok := m["subagents"].([]any)
		if !ok || len(items) == 0 {
			return nil, fmt.Errorf("spawn_subagents without subagents")
		}
		for _, item := range items {
			spec, err := spawnSpec(item)
			if err != nil {
				return nil, err
			}
			cmd.Subagents = append(cmd.Subagents, spec)
		}

	case CmdSleep:
		cmd.Reason = firstString(m, "reason")
		cmd.WakeAt = firstString(m, "wakeAt", "wake_at")
		cmd.Cron = firstString(m, "cron")
		if n, ok := intField(m, "delaySeconds", "delay_seconds"); ok {
			cmd.DelaySeconds = n
			cmd.HasDelay = true
		}

	default:
		return nil, fmt.Errorf("unknown command type %q", cmd.Type)
	}

	return cmd, nil
}

func spawnSpec(v any) (models.SpawnSpec, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return models.SpawnSpec{}, fmt.Errorf("spawn spec must be an object")
	}

	spec := models.SpawnSpec{
		Profile: firstString(m, "profile"),
		Task:    firstString(m, "task", "input", "prompt"),
		Tools:   stringSlice(firstPresent(m, "tools", "allowedTools", "allowed_tools")),
	}
	if spec.Task == "" {
		return models.SpawnSpec{}, fmt.Errorf("spawn spec without a task")
	}

	if n, ok := intField(m, "agentLevel", "agent_level"); ok {
		spec.AgentLevel = &n
	}

	switch ctx := firstPresent(m, "context").(type) {
	case []any:
		for _, entry := range ctx {
			if em, ok := entry.(map[string]any); ok {
				spec.Context = append(spec.Context, models.ContextEntry{
					Role:    firstString(em, "role"),
					Content: firstString(em, "content", "text"),
				})
			} else if s, ok := entry.(string); ok && s != "" {
				spec.Context = append(spec.Context, models.ContextEntry{Role: "context", Content: s})
			}
		}
	case string:
		if ctx != "" {
			spec.Context = append(spec.Context, models.ContextEntry{Role: "context", Content: ctx})
		}
	}

	return spec, nil
}

func normalizeMode(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "append":
		return "append"
	default:
		return "replace"
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func intField(m map[string]any, keys ...string) (int, bool) {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return int(v), true
		case int:
			return v, true
		case int64:
			return int(v), true
		case json.Number:
			if n, err := v.Int64(); err == nil {
				return int(n), true
			}
		case string:
			var n int
			if _, err := fmt.Sscanf(strings.TrimSpace(v), "%d", &n); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if s, ok := v.(string); ok && s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch s := item.(type) {
		case string:
			out = append(out, s)
		case float64, bool:
			out = append(out, fmt.Sprint(s))
		case map[string]any:
			if b, err := json.Marshal(s); err == nil {
				out = append(out, string(b))
			}
		}
	}
	return out
}
