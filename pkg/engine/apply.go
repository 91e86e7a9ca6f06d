package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
	"github.com/conductorhq/conductor/pkg/tools"
)

// apply validates one parsed command against the run's gates and
// executes it. Gate order: limitation, budget, rationale, role.
func (e *Engine) apply(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand, budgetExceeded bool) (applyOutcome, error) {
	if st.LimitationRequired && cmd.Type != CmdFinish {
		if err := e.blockAction(ctx, r, st, "limitation_required",
			"a tool kept failing; finish with a limitation statement"); err != nil {
			return outcomeContinue, err
		}
		return outcomeContinue, nil
	}

	if budgetExceeded && cmd.Type != CmdSetRunLimits && cmd.Type != CmdFinish {
		if err := e.blockAction(ctx, r, st, "budget_exceeded",
			"the iteration budget is exhausted; extend it with set_run_limits or finish"); err != nil {
			return outcomeContinue, err
		}
		if st.BudgetStrikes >= budgetStrikeLimit {
			return outcomeDone, e.forceFinish(ctx, r, st, models.FinishReasonMaxIterations,
				"the iteration budget was exhausted")
		}
		return outcomeContinue, nil
	}

	if cmd.IsAction() && cmd.Type != CmdFinish && !st.Notes.RationaleReady {
		if err := e.blockAction(ctx, r, st, "rationale_missing",
			"record "+st.Notes.missingForAction()+" before taking actions"); err != nil {
			return outcomeContinue, err
		}
		return outcomeContinue, nil
	}

	if outcome, handled, err := e.checkRole(ctx, r, st, cmd); handled || err != nil {
		return outcome, err
	}

	switch cmd.Type {
	case CmdNote:
		return e.applyNote(ctx, r, st, cmd)
	case CmdDecision:
		return e.applyDecision(ctx, r, st, cmd)
	case CmdSetRunLimits:
		return e.applySetRunLimits(ctx, r, st, cmd)
	case CmdToolCall:
		return e.applyToolCall(ctx, r, st, cmd)
	case CmdSendMessage:
		return e.applySendMessage(ctx, r, st, cmd)
	case CmdDeliverSubagentOutput:
		return e.applyDeliverSubagentOutput(ctx, r, st, cmd)
	case CmdRequestParent:
		return e.applyRequestParent(ctx, r, st, cmd)
	case CmdReplySubagent:
		return e.applyReplySubagent(ctx, r, st, cmd)
	case CmdRetrySubagent:
		return e.applyRetrySubagent(ctx, r, st, cmd)
	case CmdQueueOp:
		return e.applyQueueOp(ctx, r, st, cmd)
	case CmdSetOutput:
		return e.applySetOutput(ctx, r, st, cmd)
	case CmdSpawnSubagent, CmdSpawnSubagents:
		return e.applySpawn(ctx, r, st, cmd)
	case CmdSleep:
		return e.applySleep(ctx, r, st, cmd)
	case CmdFinish:
		return e.applyFinish(ctx, r, st, cmd)
	}

	// ParseCommand rejects unknown types; reaching here is a bug.
	return outcomeContinue, fmt.Errorf("unhandled command type %q", cmd.Type)
}

// checkRole enforces the coordinator/subagent contract. Coordinator tool
// calls are rerouted to an auto-spawned one-shot subagent; every other
// violation is blocked with a corrective note.
func (e *Engine) checkRole(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, bool, error) {
	role := models.DeriveRole(string(r.Kind), r.Input.AgentLevel)

	violation := func(detail string) (applyOutcome, bool, error) {
		e.systemNote(ctx, r, st, detail)
		if err := e.blockAction(ctx, r, st, "role_violation", detail); err != nil {
			return outcomeContinue, true, err
		}
		return outcomeContinue, true, nil
	}

	switch cmd.Type {
	case CmdToolCall:
		if role == models.RoleCoordinator {
			outcome, err := e.applyAutoSpawn(ctx, r, st, cmd)
			return outcome, true, err
		}

	case CmdSendMessage:
		if role != models.RoleCoordinator {
			return violation("You cannot message the user directly. Finish with your output; your parent will deliver it.")
		}

	case CmdDeliverSubagentOutput, CmdQueueOp:
		if role != models.RoleCoordinator {
			return violation(fmt.Sprintf("%s is a coordinator command.", cmd.Type))
		}

	case CmdSpawnSubagent, CmdSpawnSubagents:
		if role == models.RoleSubsubagent {
			return violation("Workers cannot spawn further agents. Use your tools and finish.")
		}
		if role == models.RoleSubagent && !r.Input.AllowSubagents {
			return violation("Delegation is not enabled for this run. Use your tools and finish.")
		}

	case CmdRequestParent:
		if role == models.RoleCoordinator {
			return violation("You have no parent. Ask the user with send_message instead.")
		}

	case CmdReplySubagent, CmdRetrySubagent:
		if role == models.RoleSubsubagent {
			return violation("You have no subagents to manage.")
		}
		if role == models.RoleSubagent && !r.Input.AllowSubagents {
			return violation("You have no subagents to manage.")
		}
	}

	return outcomeContinue, false, nil
}

// applyNote runs the note protocol: invalid notes draw one rewrite nudge
// per category, accepted artifact notes arm the action gate.
func (e *Engine) applyNote(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	role := models.DeriveRole(string(r.Kind), r.Input.AgentLevel)

	if st.Notes.RationaleReady {
		st.Notes.ConsecutiveNotes++
		if st.Notes.ConsecutiveNotes >= 3 {
			e.systemNote(ctx, r, st, "Stop taking notes and take an action now.")
		}
	}

	reason, detail := st.Notes.checkNote(role, r.InputText, cmd)
	if reason != "" {
		if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
			Type: runstep.TypeNote,
			Result: map[string]any{
				"category": cmd.Category,
				"content":  cmd.Content,
				"rejected": reason,
			},
			Status: runstep.StatusFailed,
		}); err != nil {
			return outcomeContinue, fmt.Errorf("record rejected note: %w", err)
		}
		if st.Notes.shouldAskRewrite(cmd.Category) {
			e.systemNote(ctx, r, st, fmt.Sprintf("Rewrite the %s note: %s.", cmd.Category, detail))
		}
		return outcomeContinue, nil
	}

	planRewrite := st.Notes.accept(cmd)
	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type: runstep.TypeNote,
		Result: map[string]any{
			"category": cmd.Category,
			"content":  cmd.Content,
		},
		Status: runstep.StatusCompleted,
	}); err != nil {
		return outcomeContinue, fmt.Errorf("record note: %w", err)
	}

	if cmd.Category == models.NoteArtifact {
		st.Notes.ConsecutiveNotes = 0
	}
	if planRewrite && st.Notes.PlanRewrites == 2 {
		e.eventStep(ctx, r, models.EventPlanLoopDetected,
			map[string]any{"rewrites": st.Notes.PlanRewrites}, runstep.StatusCompleted)
	}

	e.clearBlock(ctx, r)
	return outcomeContinue, nil
}

// applyDecision records a decision step. Decisions are audit trail, not
// control flow.
func (e *Engine) applyDecision(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	importance := cmd.Importance
	if importance == "" {
		importance = "normal"
	}
	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type: runstep.TypeDecision,
		Result: map[string]any{
			"content":    cmd.Content,
			"importance": importance,
		},
		Status: runstep.StatusCompleted,
	}); err != nil {
		return outcomeContinue, fmt.Errorf("record decision: %w", err)
	}
	e.clearBlock(ctx, r)
	return outcomeContinue, nil
}

// applySetRunLimits extends the iteration budget. An extension while the
// recent window shows no progress is refused: the run is finished with
// its best output instead of spinning.
func (e *Engine) applySetRunLimits(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	newLimit := clampLimit(cmd.MaxIterations, e.cfg)

	if newLimit <= st.Limit {
		e.eventStep(ctx, r, models.EventBudgetDecision, map[string]any{
			"action":        "noop",
			"reason":        cmd.Reason,
			"maxIterations": st.Limit,
		}, runstep.StatusCompleted)
		return outcomeContinue, nil
	}

	st.Limit = newLimit
	e.eventStep(ctx, r, models.EventBudgetDecision, map[string]any{
		"action":        "extend",
		"reason":        cmd.Reason,
		"maxIterations": newLimit,
	}, runstep.StatusCompleted)

	if st.noRecentProgress() {
		e.systemNote(ctx, r, st,
			"Budget extended without visible progress. Finishing with the current output.")
		return outcomeDone, e.forceFinish(ctx, r, st, models.FinishReasonBudgetStuck,
			"the budget was extended but recent iterations show no progress")
	}

	e.actionApplied(ctx, r, st)
	return outcomeContinue, nil
}

// applyToolCall executes one tool command and records the call/result
// step pair. Repeated identical calls fail the run; repeated identical
// results and exhausted retries arm the limitation gate.
func (e *Engine) applyToolCall(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	sig := toolSignature(cmd.Name, cmd.Args)
	st.ToolSigCount[sig]++
	if st.ToolSigCount[sig] >= 3 {
		e.eventStep(ctx, r, models.EventLoopDetected, map[string]any{
			"kind": "tool",
			"name": cmd.Name,
		}, runstep.StatusFailed)
		return outcomeDone, e.failRunWithMessage(ctx, r,
			fmt.Errorf("repeated tool call loop: %s", cmd.Name),
			"I detected a repeated tool call loop and stopped. Please try rephrasing your request.")
	}

	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type:     runstep.TypeToolCall,
		ToolName: cmd.Name,
		Args:     cmd.Args,
		Status:   runstep.StatusCompleted,
	}); err != nil {
		return outcomeContinue, fmt.Errorf("record tool call: %w", err)
	}

	result := e.executeTool(ctx, r, cmd)

	resultMap := map[string]any{"success": result.Success}
	if result.Result != nil {
		resultMap["result"] = result.Result
	}
	if result.Error != "" {
		resultMap["error"] = result.Error
	}
	status := runstep.StatusCompleted
	if !result.Success {
		status = runstep.StatusFailed
	}
	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type:     runstep.TypeToolResult,
		ToolName: cmd.Name,
		Result:   resultMap,
		Status:   status,
	}); err != nil {
		return outcomeContinue, fmt.Errorf("record tool result: %w", err)
	}

	if !result.Success {
		st.ToolFailures[cmd.Name]++
		if st.ToolFailures[cmd.Name] > e.cfg.MaxToolRetries {
			st.LimitationRequired = true
			e.systemNote(ctx, r, st,
				"The tool keeps failing. Finish with a limitation statement describing what you could not do.")
		}
	}

	full := sig + ":" + hashJSON(resultMap)
	if full == st.lastFullSig {
		st.LimitationRequired = true
		e.systemNote(ctx, r, st,
			"That call returned the same result as last time. Finish with what you have, stating any limitation.")
	}
	st.lastFullSig = full

	e.actionApplied(ctx, r, st)
	return outcomeContinue, nil
}

// executeTool runs the tool through the registry, enforcing the run's
// allowed-tools restriction first. Infrastructure errors surface as
// failed results so the model can react.
func (e *Engine) executeTool(ctx context.Context, r *ent.Run, cmd *RunCommand) tools.Result {
	if len(r.AllowedTools) > 0 && !toolAllowed(cmd.Name, r.AllowedTools) {
		return tools.Result{
			Success: false,
			Error: fmt.Sprintf("%s is not in this run's allowed tools. Allowed: %s",
				cmd.Name, joinNames(r.AllowedTools)),
		}
	}

	profile := ""
	if r.Profile != nil {
		profile = *r.Profile
	}
	tc := tools.ToolContext{
		TenantID:  r.TenantID,
		AgentID:   r.AgentID,
		RunID:     r.ID,
		UserID:    r.UserID,
		ChannelID: r.ChannelID,
		Store:     e.memories,
	}

	result, err := e.tools.Execute(ctx, tc, cmd.Name, cmd.Args, profile)
	if err != nil {
		return tools.Result{Success: false, Error: err.Error()}
	}
	return result
}

// toolAllowed accepts exact tool.command matches and bare tool names.
func toolAllowed(name string, allowed []string) bool {
	toolName, _, err := tools.SplitName(name)
	for _, a := range allowed {
		if a == name {
			return true
		}
		if err == nil && a == toolName {
			return true
		}
	}
	return false
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// applySendMessage sends a coordinator message to the user. Messages
// that read like final answers go through output validation first;
// questions go straight out.
func (e *Engine) applySendMessage(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	if resemblesAnswer(cmd.Message) {
		proceed, err := e.validateOutput(ctx, r, st, cmd.Message)
		if err != nil {
			return outcomeContinue, err
		}
		if !proceed {
			return outcomeContinue, nil
		}
	}

	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type: runstep.TypeMessage,
		Result: map[string]any{
			"recipient": "user",
			"content":   cmd.Message,
		},
		Status: runstep.StatusCompleted,
	}); err != nil {
		return outcomeContinue, fmt.Errorf("record user message: %w", err)
	}

	e.sendRunMessage(ctx, r, cmd.Message)
	e.actionApplied(ctx, r, st)
	return outcomeContinue, nil
}

// resemblesAnswer reports whether a user message reads like a final
// answer rather than a question or status update. Questions skip
// validation so clarification round-trips stay cheap.
func resemblesAnswer(message string) bool {
	trimmed := []rune(message)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[len(trimmed)-1] == '?' {
		return false
	}
	return len(message) >= 200
}

// applyDeliverSubagentOutput forwards a finished child's output to the
// user verbatim. The child's output was validated when it finished.
func (e *Engine) applyDeliverSubagentOutput(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	child, err := e.ownChild(ctx, r, cmd.RunID)
	if err != nil {
		return outcomeContinue, err
	}
	if child == nil {
		if err := e.blockAction(ctx, r, st, "unknown_subagent",
			cmd.RunID+" is not one of this run's subagents"); err != nil {
			return outcomeContinue, err
		}
		return outcomeContinue, nil
	}
	if child.Status != run.StatusCompleted || child.OutputText == "" {
		if err := e.blockAction(ctx, r, st, "subagent_output_unavailable",
			fmt.Sprintf("subagent %s is %s and has no deliverable output", child.ID, child.Status)); err != nil {
			return outcomeContinue, err
		}
		return outcomeContinue, nil
	}

	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type: runstep.TypeMessage,
		Result: map[string]any{
			"recipient": "user",
			"fromRunId": child.ID,
			"content":   truncateChars(child.OutputText, 4000),
		},
		Status: runstep.StatusCompleted,
	}); err != nil {
		return outcomeContinue, fmt.Errorf("record delivery: %w", err)
	}

	e.sendRunMessage(ctx, r, child.OutputText)
	e.actionApplied(ctx, r, st)
	return outcomeContinue, nil
}

// ownChild loads a run and returns it only when it is a child of r.
func (e *Engine) ownChild(ctx context.Context, r *ent.Run, childID string) (*ent.Run, error) {
	if childID == "" {
		return nil, nil
	}
	child, err := e.runs.GetRun(ctx, childID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load subagent: %w", err)
	}
	if child.ParentRunID == nil || *child.ParentRunID != r.ID {
		return nil, nil
	}
	return child, nil
}

// applyRequestParent parks the run until the parent answers. A repeated
// identical question force-finishes instead of deadlocking the tree.
func (e *Engine) applyRequestParent(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	if r.ParentRunID == nil {
		if err := e.blockAction(ctx, r, st, "no_parent", "this run has no parent"); err != nil {
			return outcomeContinue, err
		}
		return outcomeContinue, nil
	}

	if cmd.Message == r.Input.State.LastRequestParentMessage {
		r.Input.State.RequestParentRepeatCount++
		if err := e.saveState(ctx, r); err != nil {
			return outcomeContinue, err
		}
		e.eventStep(ctx, r, models.EventRequestParentRepeat,
			map[string]any{"message": cmd.Message}, runstep.StatusFailed)
		return outcomeDone, e.forceFinish(ctx, r, st, models.FinishReasonParentRepeat,
			"the same question was asked twice; the parent's answer did not change")
	}

	if _, err := e.runs.AppendToInbox(ctx, *r.ParentRunID, models.InboxEntry{
		FromRunID: r.ID,
		Message:   cmd.Message,
		At:        time.Now().UTC(),
	}); err != nil {
		return outcomeContinue, fmt.Errorf("append to parent inbox: %w", err)
	}

	e.eventStep(ctx, r, models.EventRequestParent,
		map[string]any{"message": cmd.Message}, runstep.StatusCompleted)

	r.Input.State.LastRequestParentMessage = cmd.Message
	r.Input.State.WaitingForParent = true
	if err := e.saveState(ctx, r); err != nil {
		return outcomeContinue, err
	}

	if err := e.runs.MarkWaiting(ctx, r.ID, nil, models.WakeReasonWaitingForParent); err != nil {
		return outcomeContinue, fmt.Errorf("mark waiting for parent: %w", err)
	}
	e.publishStatus(ctx, r, run.StatusWaiting)
	e.notifyParent(ctx, r, models.EventRequestParent, map[string]any{
		"runId":   r.ID,
		"message": cmd.Message,
	})

	e.actionApplied(ctx, r, st)
	return outcomeWaiting, nil
}

// applyReplySubagent answers a child's request_parent and re-opens it.
func (e *Engine) applyReplySubagent(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	child, err := e.ownChild(ctx, r, cmd.RunID)
	if err != nil {
		return outcomeContinue, err
	}
	if child == nil {
		if err := e.blockAction(ctx, r, st, "unknown_subagent",
			cmd.RunID+" is not one of this run's subagents"); err != nil {
			return outcomeContinue, err
		}
		return outcomeContinue, nil
	}

	if err := e.runs.ClearWaitingForParent(ctx, child.ID, models.InboxEntry{
		FromRunID: r.ID,
		Message:   cmd.Message,
		At:        time.Now().UTC(),
	}); err != nil {
		return outcomeContinue, fmt.Errorf("reply to subagent: %w", err)
	}
	if err := e.queue.EnqueueRun(ctx, child.ID, child.TenantID, child.AgentID); err != nil {
		return outcomeContinue, fmt.Errorf("enqueue replied subagent: %w", err)
	}

	e.eventStep(ctx, r, models.EventReplySubagent, map[string]any{
		"runId":   child.ID,
		"message": cmd.Message,
	}, runstep.StatusCompleted)

	e.actionApplied(ctx, r, st)
	return outcomeContinue, nil
}

// applyQueueOp mutates the coordinator's task queue.
func (e *Engine) applyQueueOp(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	result := map[string]any{
		"event":  models.EventQueueOp,
		"action": cmd.Action,
	}

	switch cmd.Action {
	case "push":
		r.Input.State.Queue = append(r.Input.State.Queue, cmd.Items...)
	case "shift":
		if len(r.Input.State.Queue) > 0 {
			result["popped"] = r.Input.State.Queue[0]
			r.Input.State.Queue = r.Input.State.Queue[1:]
		}
	case "clear":
		r.Input.State.Queue = nil
	case "set":
		r.Input.State.Queue = cmd.Items
	}
	result["size"] = len(r.Input.State.Queue)

	if err := e.saveState(ctx, r); err != nil {
		return outcomeContinue, err
	}

	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type:   runstep.TypeMessage,
		Result: result,
		Status: runstep.StatusCompleted,
	}); err != nil {
		return outcomeContinue, fmt.Errorf("record queue op: %w", err)
	}

	e.actionApplied(ctx, r, st)
	return outcomeContinue, nil
}

// applySetOutput updates the working output draft, validated the same
// way as a finish.
func (e *Engine) applySetOutput(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	output := cmd.Output
	if cmd.Mode == "append" && r.OutputText != "" {
		output = r.OutputText + "\n\n" + cmd.Output
	}

	proceed, err := e.validateOutput(ctx, r, st, output)
	if err != nil {
		return outcomeContinue, err
	}
	if !proceed {
		return outcomeContinue, nil
	}

	if err := e.runs.SetOutputText(ctx, r.ID, output); err != nil {
		return outcomeContinue, fmt.Errorf("set output: %w", err)
	}
	r.OutputText = output

	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type: runstep.TypeOutputUpdate,
		Result: map[string]any{
			"mode":  cmd.Mode,
			"chars": len(output),
		},
		Status: runstep.StatusCompleted,
	}); err != nil {
		return outcomeContinue, fmt.Errorf("record output update: %w", err)
	}

	e.actionApplied(ctx, r, st)
	return outcomeContinue, nil
}

// actionApplied resets the note nudge counter and clears the block
// marker after a command applied cleanly.
func (e *Engine) actionApplied(ctx context.Context, r *ent.Run, st *iterState) {
	st.Notes.ConsecutiveNotes = 0
	e.clearBlock(ctx, r)
}

func isNotFound(err error) bool {
	return errors.Is(err, services.ErrNotFound)
}
