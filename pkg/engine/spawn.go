package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
)

// Profiles the engine assigns to children it spawns on its own.
const (
	profileAutoTool = "auto_tool"
	profileRecovery = "recovery"
)

// applySpawn creates the requested children and parks the run until the
// watchdog or a child completion wakes it. Specs whose signature matches
// an earlier spawn are dropped; when every spec is a duplicate the
// blocked-attempt counter advances toward self-abandonment.
func (e *Engine) applySpawn(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	specs := cmd.Subagents
	if len(specs) > e.cfg.MaxSubagentsPerSpawn {
		e.systemNote(ctx, r, st, fmt.Sprintf(
			"At most %d subagents can be spawned at once. The extra specs were dropped.",
			e.cfg.MaxSubagentsPerSpawn))
		specs = specs[:e.cfg.MaxSubagentsPerSpawn]
	}

	fresh, blocked := st.splitFreshSpecs(specs)
	if len(fresh) == 0 {
		return e.spawnAllBlocked(ctx, r, st, blocked)
	}
	if len(blocked) > 0 {
		e.eventStep(ctx, r, models.EventSpawnBlocked, map[string]any{
			"reason": "duplicate_spawn",
			"tasks":  blocked,
		}, runstep.StatusFailed)
	}

	if _, err := e.spawnChildren(ctx, r, st, fresh, ""); err != nil {
		if services.IsValidationError(err) {
			if berr := e.blockAction(ctx, r, st, "invalid_spawn", err.Error()); berr != nil {
				return outcomeContinue, berr
			}
			return outcomeContinue, nil
		}
		return outcomeContinue, err
	}

	return e.parkForChildren(ctx, r, st)
}

// splitFreshSpecs partitions specs into never-seen and duplicate, checking
// both this run's spawn history and the current batch. Signatures are
// computed over the raw spec, before context augmentation, so identical
// requests collide regardless of when they were made.
func (st *iterState) splitFreshSpecs(specs []models.SpawnSpec) (fresh []models.SpawnSpec, blocked []string) {
	batch := make(map[string]bool, len(specs))
	for _, spec := range specs {
		sig := spawnSignature(spec)
		if st.SpawnSigs[sig] || batch[sig] {
			blocked = append(blocked, spec.Task)
			continue
		}
		batch[sig] = true
		fresh = append(fresh, spec)
	}
	return fresh, blocked
}

// spawnAllBlocked handles a spawn where every spec duplicated earlier
// work. The first strike is a nudge; the second abandons the run —
// coordinators ask the user to clarify, subagents finish with a
// self-abandonment statement.
func (e *Engine) spawnAllBlocked(ctx context.Context, r *ent.Run, st *iterState, tasks []string) (applyOutcome, error) {
	st.BlockedSpawnAttempts++
	e.eventStep(ctx, r, models.EventSpawnBlocked, map[string]any{
		"reason": "duplicate_spawn",
		"all":    true,
		"tasks":  tasks,
	}, runstep.StatusFailed)

	if st.BlockedSpawnAttempts < 2 {
		e.systemNote(ctx, r, st,
			"All requested subagents duplicate earlier spawns. Change your approach or finish with what you have.")
		return outcomeContinue, nil
	}

	if models.DeriveRole(string(r.Kind), r.Input.AgentLevel) == models.RoleCoordinator {
		clarification := "I wasn't able to make further progress on this request. " +
			"Could you clarify what you need, or narrow the request down?"
		return outcomeDone, e.forceFinishOutput(ctx, r, st,
			models.FinishReasonSelfAbandoned, clarification)
	}
	return outcomeDone, e.forceFinish(ctx, r, st, models.FinishReasonSelfAbandoned,
		"every delegation attempt duplicated earlier work")
}

// spawnChildren inserts the child runs, records the spawn event, and
// enqueues their jobs. The event's specs field holds the raw specs so a
// rebuild recomputes the same dedupe signatures; the children themselves
// receive the augmented context.
func (e *Engine) spawnChildren(ctx context.Context, r *ent.Run, st *iterState, specs []models.SpawnSpec, retryOf string) ([]*ent.Run, error) {
	params := make([]services.CreateChildParams, len(specs))
	for i, spec := range specs {
		augmented := e.augmentSpec(r, st, spec)

		level := r.Input.AgentLevel + 1
		if spec.AgentLevel != nil && *spec.AgentLevel > level {
			level = *spec.AgentLevel
		}
		if level > 2 {
			level = 2
		}

		// Delegated subagents may sub-delegate one level; one-shot
		// workers may not.
		allowSubagents := r.Kind == run.KindCoordinator && level < 2 &&
			spec.Profile != profileAutoTool && spec.Profile != profileRecovery

		params[i] = services.CreateChildParams{
			Profile:      spec.Profile,
			InputText:    spec.Task,
			AllowedTools: spec.Tools,
			Input: models.RunInput{
				Context:        augmented.Context,
				AgentLevel:     level,
				AllowSubagents: allowSubagents,
				RetryOf:        retryOf,
			},
		}
	}

	children, err := e.runs.CreateSubagents(ctx, r, params)
	if err != nil {
		return nil, err
	}

	summaries := make([]map[string]any, len(children))
	for i, c := range children {
		profile := ""
		if c.Profile != nil {
			profile = *c.Profile
		}
		summaries[i] = map[string]any{
			"runId":   c.ID,
			"task":    truncateChars(c.InputText, 400),
			"profile": profile,
		}
	}
	payload := map[string]any{
		"subagents": summaries,
		"specs":     specs,
	}
	if retryOf != "" {
		payload["retryOf"] = retryOf
	}
	e.eventStep(ctx, r, models.EventSpawnSubagents, payload, runstep.StatusCompleted)

	for _, spec := range specs {
		st.SpawnSigs[spawnSignature(spec)] = true
	}

	for _, c := range children {
		if err := e.queue.EnqueueRun(ctx, c.ID, c.TenantID, c.AgentID); err != nil {
			// The watchdog wake re-surfaces stuck children to the parent.
			slog.Error("Failed to enqueue subagent job",
				"run_id", r.ID, "child_run_id", c.ID, "error", err)
		}
	}

	slog.Info("Subagents spawned",
		"run_id", r.ID, "count", len(children), "retry_of", retryOf)
	return children, nil
}

// augmentSpec fills in context a child needs but the spec omitted: the
// user request, the current time, a tool hint, and the success criteria
// from the requirements note.
func (e *Engine) augmentSpec(r *ent.Run, st *iterState, spec models.SpawnSpec) models.SpawnSpec {
	has := make(map[string]bool, len(spec.Context))
	for _, c := range spec.Context {
		has[c.Role] = true
	}

	entries := make([]models.ContextEntry, len(spec.Context), len(spec.Context)+4)
	copy(entries, spec.Context)

	if !has["user_request"] && r.InputText != "" {
		entries = append(entries, models.ContextEntry{
			Role:    "user_request",
			Content: truncateChars(r.InputText, 600),
		})
	}
	if !has["current_time"] {
		entries = append(entries, models.ContextEntry{
			Role:    "current_time",
			Content: time.Now().UTC().Format(time.RFC3339),
		})
	}
	if !has["tool_hint"] && len(spec.Tools) > 0 {
		entries = append(entries, models.ContextEntry{
			Role:    "tool_hint",
			Content: "Use these tools: " + joinNames(spec.Tools),
		})
	}
	if !has["success_criteria"] && st.Notes.Requirements != "" {
		entries = append(entries, models.ContextEntry{
			Role:    "success_criteria",
			Content: truncateChars(st.Notes.Requirements, 400),
		})
	}

	spec.Context = entries
	return spec
}

// parkForChildren suspends the run until a child finishes, with a
// watchdog wake in case no completion ever arrives. The wake_at column
// double-covers the watchdog: the due-waiting scan picks the run up even
// if the queued wake job is lost.
func (e *Engine) parkForChildren(ctx context.Context, r *ent.Run, st *iterState) (applyOutcome, error) {
	wakeAt := time.Now().Add(e.cfg.WatchdogDelay)
	if err := e.runs.MarkWaiting(ctx, r.ID, &wakeAt, models.WakeReasonSubagentWatchdog); err != nil {
		return outcomeContinue, fmt.Errorf("park for subagents: %w", err)
	}
	e.publishStatus(ctx, r, run.StatusWaiting)

	if err := e.queue.EnqueueWake(ctx, r.ID, r.TenantID, r.AgentID,
		models.WakeReasonSubagentWatchdog, e.cfg.WatchdogDelay); err != nil {
		slog.Error("Failed to schedule watchdog wake", "run_id", r.ID, "error", err)
	}

	e.actionApplied(ctx, r, st)
	return outcomeWaiting, nil
}

// applyAutoSpawn reroutes a coordinator tool_call into a one-shot
// subagent restricted to exactly that tool.
func (e *Engine) applyAutoSpawn(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	argsJSON := "{}"
	if len(cmd.Args) > 0 {
		if b, err := json.Marshal(cmd.Args); err == nil {
			argsJSON = string(b)
		}
	}
	spec := models.SpawnSpec{
		Profile: profileAutoTool,
		Task: fmt.Sprintf(
			"Call the %s tool with the provided arguments and report the result, including any caveats.",
			cmd.Name),
		Tools:   []string{cmd.Name},
		Context: []models.ContextEntry{{Role: "tool_args", Content: argsJSON}},
	}

	fresh, blocked := st.splitFreshSpecs([]models.SpawnSpec{spec})
	if len(fresh) == 0 {
		return e.spawnAllBlocked(ctx, r, st, blocked)
	}

	children, err := e.spawnChildren(ctx, r, st, fresh, "")
	if err != nil {
		if services.IsValidationError(err) {
			if berr := e.blockAction(ctx, r, st, "invalid_spawn", err.Error()); berr != nil {
				return outcomeContinue, berr
			}
			return outcomeContinue, nil
		}
		return outcomeContinue, err
	}

	e.eventStep(ctx, r, models.EventAutoSpawnFromToolCall, map[string]any{
		"tool":  cmd.Name,
		"args":  cmd.Args,
		"runId": children[0].ID,
		"task":  spec.Task,
	}, runstep.StatusCompleted)

	return e.parkForChildren(ctx, r, st)
}

// applyRetrySubagent re-spawns a terminal child with feedback folded into
// its context. The retry goes through the same dedupe as a spawn, so
// retrying twice with the same feedback is blocked.
func (e *Engine) applyRetrySubagent(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	child, err := e.ownChild(ctx, r, cmd.RunID)
	if err != nil {
		return outcomeContinue, err
	}
	if child == nil {
		if berr := e.blockAction(ctx, r, st, "unknown_subagent",
			cmd.RunID+" is not one of this run's subagents"); berr != nil {
			return outcomeContinue, berr
		}
		return outcomeContinue, nil
	}
	if !terminalStatus(child.Status) {
		if berr := e.blockAction(ctx, r, st, "subagent_still_active",
			fmt.Sprintf("subagent %s is still %s", child.ID, child.Status)); berr != nil {
			return outcomeContinue, berr
		}
		return outcomeContinue, nil
	}

	level := child.Input.AgentLevel
	spec := models.SpawnSpec{
		Task:       child.InputText,
		Tools:      child.AllowedTools,
		AgentLevel: &level,
		Context: append(append([]models.ContextEntry{}, child.Input.Context...),
			models.ContextEntry{Role: "retry_of", Content: child.ID}),
	}
	if child.Profile != nil {
		spec.Profile = *child.Profile
	}
	if cmd.Feedback != "" {
		spec.Context = append(spec.Context,
			models.ContextEntry{Role: "retry_feedback", Content: cmd.Feedback})
	}

	fresh, blocked := st.splitFreshSpecs([]models.SpawnSpec{spec})
	if len(fresh) == 0 {
		return e.spawnAllBlocked(ctx, r, st, blocked)
	}

	if _, err := e.spawnChildren(ctx, r, st, fresh, child.ID); err != nil {
		if services.IsValidationError(err) {
			if berr := e.blockAction(ctx, r, st, "invalid_spawn", err.Error()); berr != nil {
				return outcomeContinue, berr
			}
			return outcomeContinue, nil
		}
		return outcomeContinue, err
	}

	return e.parkForChildren(ctx, r, st)
}

// maybeAutoRecover spawns a recovery subagent for a coordinator that is
// visibly thrashing: repeated nudges, plan rewrites, or blocked spawns
// with no children in flight. Fires at most once per run.
func (e *Engine) maybeAutoRecover(ctx context.Context, r *ent.Run, st *iterState) (bool, error) {
	if r.Kind != run.KindCoordinator || r.Input.State.AutoRecoverySpawned {
		return false, nil
	}
	if st.SystemNotes < 3 && st.Notes.PlanRewrites < 2 && st.BlockedSpawnAttempts < 1 {
		return false, nil
	}

	active, err := e.runs.ActiveChildren(ctx, r.ID)
	if err != nil {
		return false, fmt.Errorf("count active children: %w", err)
	}
	if active > 0 {
		return false, nil
	}

	spec := models.SpawnSpec{
		Profile: profileRecovery,
		Task: "The coordinator is stuck on the following request. Produce either a direct answer " +
			"or a concrete numbered plan it can execute.\n\nRequest: " + truncateChars(r.InputText, 600),
	}

	r.Input.State.AutoRecoverySpawned = true
	if err := e.saveState(ctx, r); err != nil {
		return false, err
	}

	if st.SpawnSigs[spawnSignature(spec)] {
		return false, nil
	}

	slog.Info("Auto-recovery spawn",
		"run_id", r.ID,
		"system_notes", st.SystemNotes,
		"plan_rewrites", st.Notes.PlanRewrites,
		"blocked_spawns", st.BlockedSpawnAttempts)

	children, err := e.spawnChildren(ctx, r, st, []models.SpawnSpec{spec}, "")
	if err != nil {
		slog.Error("Auto-recovery spawn failed", "run_id", r.ID, "error", err)
		return false, nil
	}

	e.eventStep(ctx, r, models.EventAutoRecovery, map[string]any{
		"runId": children[0].ID,
		"task":  spec.Task,
	}, runstep.StatusCompleted)

	if _, err := e.parkForChildren(ctx, r, st); err != nil {
		return false, err
	}
	return true, nil
}

// terminalStatus reports whether a run can no longer change.
func terminalStatus(s run.Status) bool {
	return s == run.StatusCompleted || s == run.StatusFailed || s == run.StatusCancelled
}
