package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/prompt"
	"github.com/conductorhq/conductor/pkg/services"
)

// applyFinish closes out a run: the notes gate must be satisfied, the
// output passes validation, and only then does the run complete. A
// repeated identical finish output forces completion instead of cycling
// through validation again.
func (e *Engine) applyFinish(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	output := cmd.Output
	switch {
	case output == "":
		output = r.OutputText
	case cmd.Mode == "append" && r.OutputText != "":
		output = r.OutputText + "\n\n" + cmd.Output
	}

	if missing := st.Notes.missingForFinish(); missing != "" {
		st.FinishBlocked++

		role := models.DeriveRole(string(r.Kind), r.Input.AgentLevel)
		if role == models.RoleCoordinator && st.FinishBlocked > 2 {
			e.fabricateNotes(ctx, r, st)
		} else {
			e.eventStep(ctx, r, models.EventFinishBlocked, map[string]any{
				"missing":    missing,
				"outputHash": hashString(output),
			}, runstep.StatusFailed)
			st.LastFinishOutput = hashString(output)

			r.Input.State.LastBlockReason = "finish_blocked"
			r.Input.State.LastBlockDetail = "record " + missing + " before finishing"
			if err := e.saveState(ctx, r); err != nil {
				return outcomeContinue, err
			}
			return outcomeContinue, nil
		}
	}

	if st.Notes.Validation == "" {
		if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
			Type:   runstep.TypeValidationMissing,
			Result: map[string]any{"note": "finish without a validation note"},
			Status: runstep.StatusCompleted,
		}); err != nil {
			slog.Error("Failed to append validation_missing step", "run_id", r.ID, "error", err)
		}
	}

	if st.LimitationRequired && !limitationStated(output) {
		output = "Limitation: parts of this task could not be completed.\n\n" + output
	}

	h := hashString(output)
	if output != "" && h == st.LastFinishOutput {
		e.eventStep(ctx, r, models.EventFinishRepeatForced,
			map[string]any{"outputHash": h}, runstep.StatusCompleted)
	} else {
		proceed, err := e.validateOutput(ctx, r, st, output)
		if err != nil {
			return outcomeContinue, err
		}
		if !proceed {
			st.LastFinishOutput = h
			return outcomeContinue, nil
		}
	}

	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type:   runstep.TypeFinish,
		Result: map[string]any{"output": truncateChars(output, 4000)},
		Status: runstep.StatusCompleted,
	}); err != nil {
		return outcomeContinue, fmt.Errorf("record finish: %w", err)
	}

	return outcomeDone, e.completeRun(ctx, r, output)
}

// fabricateNotes fills in minimal requirements and plan notes for a
// coordinator that keeps trying to finish without them. Better a sloppy
// audit trail than a coordinator stuck forever.
func (e *Engine) fabricateNotes(ctx context.Context, r *ent.Run, st *iterState) {
	record := func(category, content string) {
		if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
			Type: runstep.TypeNote,
			Result: map[string]any{
				"category": category,
				"content":  content,
				"fallback": true,
			},
			Status: runstep.StatusCompleted,
		}); err != nil {
			slog.Error("Failed to append fallback note",
				"run_id", r.ID, "category", category, "error", err)
		}
	}

	if st.Notes.Requirements == "" {
		content := "Deliver a direct response to: " + truncateChars(r.InputText, 200)
		st.Notes.Requirements = content
		record(models.NoteRequirements, content)
	}
	if st.Notes.Plan == "" {
		content := "1. Answer the request with the available output.\n2. Deliver it to the user."
		st.Notes.Plan = content
		record(models.NotePlan, content)
	}

	slog.Warn("Fabricated fallback notes for blocked finish",
		"run_id", r.ID, "finish_blocked", st.FinishBlocked)
}

// validatorVerdict is the reviewer's parsed decision.
type validatorVerdict struct {
	Decision string
	Feedback string
	Retry    bool
}

// validateOutput runs the pre-send reviewer over a candidate output.
// Returns true when the output may go out. At most two validator calls
// per run; an output identical to the last reviewed one bypasses the
// reviewer, and a reviewer transport error fails open.
func (e *Engine) validateOutput(ctx context.Context, r *ent.Run, st *iterState, output string) (bool, error) {
	if strings.TrimSpace(output) == "" {
		return true, nil
	}

	h := hashString(output)
	if h == st.lastValidatedHash {
		e.eventStep(ctx, r, models.EventValidationResult, map[string]any{
			"decision":   "send",
			"reason":     "identical_output",
			"outputHash": h,
		}, runstep.StatusCompleted)
		st.ValidationFeedback = ""
		return true, nil
	}

	if st.ValidationAttempts >= 2 {
		e.eventStep(ctx, r, models.EventValidationResult, map[string]any{
			"decision":   "send",
			"reason":     "attempts_exhausted",
			"outputHash": h,
		}, runstep.StatusCompleted)
		st.lastValidatedHash = h
		st.ValidationFeedback = ""
		return true, nil
	}

	system, user := prompt.Validator(r.InputText, st.Notes.Requirements, output)
	resp, err := e.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
		JSONOnly: true,
	})
	if err != nil {
		// A broken reviewer must not hold outputs hostage.
		slog.Warn("Validator call failed, sending unreviewed",
			"run_id", r.ID, "error", err)
		e.eventStep(ctx, r, models.EventValidationResult, map[string]any{
			"decision":   "send",
			"reason":     "validator_error",
			"error":      err.Error(),
			"outputHash": h,
		}, runstep.StatusCompleted)
		st.lastValidatedHash = h
		return true, nil
	}

	st.ValidationAttempts++
	st.lastValidatedHash = h
	verdict := parseVerdict(resp.Content)

	if verdict.Decision != "revise" {
		e.eventStep(ctx, r, models.EventValidationResult, map[string]any{
			"decision":   "send",
			"outputHash": h,
		}, runstep.StatusCompleted)
		st.ValidationFeedback = ""
		return true, nil
	}

	e.eventStep(ctx, r, models.EventValidationResult, map[string]any{
		"decision":   "revise",
		"feedback":   verdict.Feedback,
		"retry":      verdict.Retry,
		"outputHash": h,
	}, runstep.StatusCompleted)
	st.ValidationFeedback = verdict.Feedback

	if verdict.Retry && st.ValidationAttempts < 2 {
		return false, nil
	}

	if verdict.Retry {
		e.eventStep(ctx, r, models.EventValidationRetryExhausted,
			map[string]any{"attempts": st.ValidationAttempts}, runstep.StatusCompleted)
	} else {
		e.eventStep(ctx, r, models.EventValidationOverride, nil, runstep.StatusCompleted)
	}
	st.ValidationFeedback = ""
	return true, nil
}

// parseVerdict decodes the reviewer's JSON. Anything unparseable counts
// as send: the reviewer is advisory, not a gatekeeper of last resort.
func parseVerdict(raw string) validatorVerdict {
	m, err := decodeObject(raw)
	if err != nil {
		return validatorVerdict{Decision: "send"}
	}
	v := validatorVerdict{Decision: "send"}
	if d, ok := m["decision"].(string); ok {
		v.Decision = strings.ToLower(strings.TrimSpace(d))
	}
	if f, ok := m["feedback"].(string); ok {
		v.Feedback = f
	}
	if rt, ok := m["retry"].(bool); ok {
		v.Retry = rt
	}
	return v
}

// limitationStated reports whether the output already acknowledges that
// something could not be done.
func limitationStated(output string) bool {
	lower := strings.ToLower(output)
	return strings.Contains(lower, "limitation") ||
		strings.Contains(lower, "could not") ||
		strings.Contains(lower, "couldn't") ||
		strings.Contains(lower, "unable to")
}

// completeRun marks the run completed and fans the output out: root runs
// message the user, children notify their parent, coordinators cancel
// leftover descendants.
func (e *Engine) completeRun(ctx context.Context, r *ent.Run, output string) error {
	if err := e.runs.CompleteRun(ctx, r.ID, output); err != nil {
		if errors.Is(err, services.ErrInvalidState) {
			slog.Info("Run already terminal, skipping completion", "run_id", r.ID)
			return nil
		}
		return fmt.Errorf("complete run: %w", err)
	}
	e.publishStatus(ctx, r, run.StatusCompleted)
	e.retireTriggers(ctx, r)

	if r.Kind == run.KindCoordinator {
		if n, err := e.runs.CancelCascade(ctx, r.ID); err != nil {
			slog.Warn("Failed to cancel leftover subagents", "run_id", r.ID, "error", err)
		} else if n > 0 {
			slog.Info("Cancelled leftover subagents", "run_id", r.ID, "count", n)
		}
	}

	if r.ParentRunID == nil {
		e.sendRunMessage(ctx, r, output)
	} else {
		e.notifyParent(ctx, r, models.EventSubagentResult, map[string]any{
			"runId":  r.ID,
			"status": "completed",
			"output": truncateChars(output, maxSubagentOutputChars),
		})
	}

	slog.Info("Run completed", "run_id", r.ID, "kind", r.Kind)
	return nil
}

// forceFinish ends a run the model would not end itself. The current
// output draft is delivered when present; otherwise the user gets a
// short explanation built from note.
func (e *Engine) forceFinish(ctx context.Context, r *ent.Run, st *iterState, reason, note string) error {
	output := r.OutputText
	if output == "" {
		output = "I had to stop early: " + note + "."
	}
	return e.forceFinishOutput(ctx, r, st, reason, output)
}

func (e *Engine) forceFinishOutput(ctx context.Context, r *ent.Run, st *iterState, reason, output string) error {
	slog.Warn("Force-finishing run",
		"run_id", r.ID, "reason", reason, "iteration", st.Iteration)

	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type: runstep.TypeFinish,
		Result: map[string]any{
			"reason": reason,
			"forced": true,
			"output": truncateChars(output, 4000),
		},
		Status: runstep.StatusCompleted,
	}); err != nil {
		slog.Error("Failed to append forced finish step", "run_id", r.ID, "error", err)
	}

	return e.completeRun(ctx, r, output)
}
