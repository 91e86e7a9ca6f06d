package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/message"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/models"
)

// charsPerToken is the usual ~4 chars/token heuristic for English text.
// The transcript cap is a soft limit, not an exact budget.
const charsPerToken = 4

// Conversation windows. Contexts rotate after maxTurnsPerContext turns,
// so the coordinator window covers any whole context; subagents see a
// shorter tail.
const (
	coordinatorConversationWindow = 200
	subagentConversationWindow    = 40
)

// Truncation limits for payload fields that can grow without bound.
const (
	maxPayloadOutputChars   = 4000
	maxSubagentOutputChars  = 2000
	maxSubagentResultsShown = 10
)

// userPayload is the JSON user message sent to the LLM each iteration.
type userPayload struct {
	Task               string             `json:"task"`
	Output             string             `json:"output,omitempty"`
	Conversation       []conversationMsg  `json:"conversation,omitempty"`
	Transcript         []transcriptEntry  `json:"transcript,omitempty"`
	SubagentResults    []subagentResult   `json:"subagentResults,omitempty"`
	RunKind            string             `json:"runKind"`
	Profile            string             `json:"profile,omitempty"`
	Input              *inputView         `json:"input,omitempty"`
	Memories           []memoryView       `json:"memories,omitempty"`
	AgentLevel         int                `json:"agentLevel"`
	State              models.RunState    `json:"state"`
	ActiveSubagents    int                `json:"activeSubagentCount"`
	Budget             budgetView         `json:"budget"`
	ValidationFeedback string             `json:"validationFeedback,omitempty"`
	LastBlock          *blockView         `json:"lastBlock,omitempty"`
}

type conversationMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type transcriptEntry struct {
	Seq    int            `json:"seq"`
	Type   string         `json:"type"`
	Tool   string         `json:"tool,omitempty"`
	Status string         `json:"status,omitempty"`
	Args   map[string]any `json:"args,omitempty"`
	Result map[string]any `json:"result,omitempty"`
}

type subagentResult struct {
	RunID   string `json:"runId"`
	Profile string `json:"profile,omitempty"`
	Task    string `json:"task"`
	Status  string `json:"status"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

type inputView struct {
	Context        []models.ContextEntry `json:"context,omitempty"`
	AllowSubagents bool                  `json:"allowSubagents,omitempty"`
	RetryOf        string                `json:"retryOf,omitempty"`
}

type memoryView struct {
	Module string `json:"module"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	Level  int    `json:"level"`
}

type budgetView struct {
	Iteration int  `json:"iteration"`
	Limit     int  `json:"limit"`
	Exceeded  bool `json:"exceeded"`
}

type blockView struct {
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// buildPayload assembles the JSON user message for one iteration.
func (e *Engine) buildPayload(ctx context.Context, r *ent.Run, st *iterState, budgetExceeded bool) (string, error) {
	p := userPayload{
		Task:       r.InputText,
		Output:     truncateChars(r.OutputText, maxPayloadOutputChars),
		RunKind:    string(r.Kind),
		AgentLevel: r.Input.AgentLevel,
		State:      r.Input.State,
		Budget: budgetView{
			Iteration: st.Iteration,
			Limit:     st.Limit,
			Exceeded:  budgetExceeded,
		},
		ValidationFeedback: st.ValidationFeedback,
	}
	if r.Profile != nil {
		p.Profile = *r.Profile
	}
	if len(r.Input.Context) > 0 || r.Input.AllowSubagents || r.Input.RetryOf != "" {
		p.Input = &inputView{
			Context:        r.Input.Context,
			AllowSubagents: r.Input.AllowSubagents,
			RetryOf:        r.Input.RetryOf,
		}
	}
	if r.Input.State.LastBlockReason != "" {
		p.LastBlock = &blockView{
			Reason: r.Input.State.LastBlockReason,
			Detail: r.Input.State.LastBlockDetail,
		}
	}

	conversation, err := e.loadConversation(ctx, r)
	if err != nil {
		return "", err
	}
	p.Conversation = conversation

	transcript, err := e.loadTranscript(ctx, r.ID)
	if err != nil {
		return "", err
	}
	p.Transcript = transcript

	results, active, err := e.loadChildren(ctx, r.ID)
	if err != nil {
		return "", err
	}
	p.SubagentResults = results
	p.ActiveSubagents = active

	memories, err := e.loadMemories(ctx, r.UserID)
	if err != nil {
		return "", err
	}
	p.Memories = memories

	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal llm payload: %w", err)
	}
	return string(data), nil
}

// loadConversation returns the channel conversation window: the full
// context for coordinators, the last messages for subagents.
func (e *Engine) loadConversation(ctx context.Context, r *ent.Run) ([]conversationMsg, error) {
	if r.ContextID == nil || *r.ContextID == "" {
		return nil, nil
	}

	window := coordinatorConversationWindow
	if r.Kind != run.KindCoordinator {
		window = subagentConversationWindow
	}
	msgs, err := e.messages.ListByContext(ctx, *r.ContextID, window)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	out := make([]conversationMsg, 0, len(msgs))
	for _, m := range msgs {
		role := "user"
		if m.Direction == message.DirectionOutbound {
			role = "assistant"
		}
		out = append(out, conversationMsg{Role: role, Content: m.Content})
	}
	return out, nil
}

// loadTranscript returns the last TranscriptLimit steps trimmed to the
// token-estimate cap, oldest first.
func (e *Engine) loadTranscript(ctx context.Context, runID string) ([]transcriptEntry, error) {
	steps, err := e.steps.ListRecentSteps(ctx, runID, e.cfg.TranscriptLimit)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}

	entries := make([]transcriptEntry, 0, len(steps))
	for _, s := range steps {
		entries = append(entries, transcriptEntry{
			Seq:    s.Seq,
			Type:   string(s.Type),
			Tool:   s.ToolName,
			Status: string(s.Status),
			Args:   s.Args,
			Result: s.Result,
		})
	}

	// Trim oldest-first until the window fits the token budget. The
	// newest steps carry the context the model needs right now.
	budget := e.cfg.TranscriptTokenLimit
	total := 0
	cut := len(entries)
	for i := len(entries) - 1; i >= 0; i-- {
		data, err := json.Marshal(entries[i])
		if err != nil {
			continue
		}
		total += estimateTokens(string(data))
		if total > budget {
			break
		}
		cut = i
	}
	return entries[cut:], nil
}

// loadChildren returns terminal child results plus the active child count.
func (e *Engine) loadChildren(ctx context.Context, runID string) ([]subagentResult, int, error) {
	children, err := e.runs.ListChildren(ctx, runID)
	if err != nil {
		return nil, 0, fmt.Errorf("load children: %w", err)
	}

	var results []subagentResult
	active := 0
	for _, c := range children {
		switch c.Status {
		case run.StatusCompleted, run.StatusFailed, run.StatusCancelled:
			res := subagentResult{
				RunID:  c.ID,
				Task:   truncateChars(c.InputText, 400),
				Status: string(c.Status),
				Output: truncateChars(c.OutputText, maxSubagentOutputChars),
			}
			if c.Profile != nil {
				res.Profile = *c.Profile
			}
			if c.ErrorMessage != nil {
				res.Error = *c.ErrorMessage
			}
			results = append(results, res)
		default:
			active++
		}
	}
	if len(results) > maxSubagentResultsShown {
		results = results[len(results)-maxSubagentResultsShown:]
	}
	return results, active, nil
}

// loadMemories returns the top memories per level, values truncated to
// the level cap, ordered by level.
func (e *Engine) loadMemories(ctx context.Context, userID string) ([]memoryView, error) {
	if userID == "" {
		return nil, nil
	}
	byLevel, err := e.memories.TopPerLevel(ctx, userID, 5)
	if err != nil {
		return nil, fmt.Errorf("load memories: %w", err)
	}

	var out []memoryView
	for level := 0; level <= 5; level++ {
		levelCap, ok := models.MemoryLevelCaps[level]
		if !ok {
			continue
		}
		for _, item := range byLevel[level] {
			out = append(out, memoryView{
				Module: string(item.Module),
				Key:    item.Key,
				Value:  truncateChars(item.Value, levelCap.MaxChars),
				Level:  level,
			})
		}
	}
	return out, nil
}

// estimateTokens approximates token count at ~4 chars/token, rounded up.
// len() counts bytes, which overestimates multi-byte text; trimming a
// little early is the safe direction.
func estimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + charsPerToken - 1) / charsPerToken
}

// truncateChars cuts s to at most max bytes without splitting a rune,
// appending an ellipsis marker when it cut anything.
func truncateChars(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
