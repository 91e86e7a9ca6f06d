package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/models"
)

const noteTestTask = "Compare the populations of Oslo and Helsinki and tell me which is larger"

func noteCmd(category, content string) *RunCommand {
	return &RunCommand{Type: CmdNote, Category: category, Content: content}
}

func validRequirements() *RunCommand {
	return noteCmd(models.NoteRequirements,
		"Success criteria: deliver one short answer naming the larger city with both population figures. Output format: plain text.")
}

func validCoordinatorPlan() *RunCommand {
	return noteCmd(models.NotePlan,
		"1. Push both lookups onto the queue with queue_op.\n"+
			"2. spawn_subagent for the Oslo population with the user request as context.\n"+
			"3. spawn_subagent for the Helsinki population with the same context.\n"+
			"4. Compare the returned figures against the success criteria.\n"+
			"5. deliver_subagent_output for each child, then finish with the result.")
}

func TestCheckNoteRequirements(t *testing.T) {
	ns := newNotesState()

	reason, _ := ns.checkNote(models.RoleCoordinator, noteTestTask, noteCmd(models.NoteRequirements, noteTestTask))
	assert.Equal(t, "requirements_restates_task", reason)

	reason, _ = ns.checkNote(models.RoleCoordinator, noteTestTask,
		noteCmd(models.NoteRequirements, "I will look into the two cities and report back soon."))
	assert.Equal(t, "requirements_missing_criteria", reason)

	reason, detail := ns.checkNote(models.RoleCoordinator, noteTestTask, validRequirements())
	assert.Empty(t, reason)
	assert.Empty(t, detail)
}

func TestCheckNoteCoordinatorPlan(t *testing.T) {
	ns := newNotesState()

	reason, _ := ns.checkNote(models.RoleCoordinator, noteTestTask, validCoordinatorPlan())
	assert.Equal(t, "plan_before_requirements", reason)

	ns.accept(validRequirements())

	reason, detail := ns.checkNote(models.RoleCoordinator, noteTestTask,
		noteCmd(models.NotePlan, "1. Spawn workers.\n2. Collect results.\n3. Finish."))
	assert.Equal(t, "plan_needs_numbered_steps", reason)
	assert.Contains(t, detail, "at least 5")

	// Numbered steps crammed onto one line only count once.
	reason, _ = ns.checkNote(models.RoleCoordinator, noteTestTask,
		noteCmd(models.NotePlan, "1. First 2. Second 3. Third 4. Fourth 5. Fifth"))
	assert.Equal(t, "plan_needs_numbered_steps", reason)

	reason, detail = ns.checkNote(models.RoleCoordinator, noteTestTask,
		noteCmd(models.NotePlan, "1. Look up Oslo.\n2. Look up Helsinki.\n3. Compare the figures.\n4. Check the success criteria.\n5. Send the result with context."))
	assert.Equal(t, "plan_missing_mentions", reason)
	assert.Contains(t, detail, "queue_op")
	assert.Contains(t, detail, "spawn_subagent")
	assert.Contains(t, detail, "deliver_subagent_output")

	reason, _ = ns.checkNote(models.RoleCoordinator, noteTestTask, validCoordinatorPlan())
	assert.Empty(t, reason)
}

func TestCheckNoteSubagentPlan(t *testing.T) {
	task := "Use the weather API to fetch tomorrow's forecast for Oslo"

	ns := newNotesState()
	ns.accept(noteCmd(models.NoteRequirements, "Success criteria: deliver the forecast as one line of plain text."))

	reason, detail := ns.checkNote(models.RoleSubagent, task,
		noteCmd(models.NotePlan, "1. Produce the forecast and respond."))
	assert.Equal(t, "plan_needs_numbered_steps", reason)
	assert.Contains(t, detail, "at least 2")

	reason, _ = ns.checkNote(models.RoleSubagent, task,
		noteCmd(models.NotePlan, "1. Think about the request.\n2. Respond with the forecast."))
	assert.Equal(t, "plan_missing_tool_usage", reason)

	reason, _ = ns.checkNote(models.RoleSubagent, task,
		noteCmd(models.NotePlan, "1. Call the weather tool for the forecast.\n2. Summarize the result in one line."))
	assert.Empty(t, reason)

	// Tasks with no tool hint skip the tool mention gate.
	reason, _ = ns.checkNote(models.RoleSubagent, "Write a haiku about autumn",
		noteCmd(models.NotePlan, "1. Draft the haiku.\n2. Count the syllables and respond."))
	assert.Empty(t, reason)
}

func TestCheckNoteArtifact(t *testing.T) {
	ns := newNotesState()
	ns.accept(validRequirements())

	reason, _ := ns.checkNote(models.RoleCoordinator, noteTestTask,
		noteCmd(models.NoteArtifact, "Kick off the first delegation right away."))
	assert.Equal(t, "artifact_before_plan", reason)

	ns.accept(validCoordinatorPlan())

	reason, detail := ns.checkNote(models.RoleCoordinator, noteTestTask,
		noteCmd(models.NoteArtifact, "Do the first step. Then do the second step."))
	assert.Equal(t, "artifact_not_one_sentence", reason)
	assert.Contains(t, detail, "got 2")

	reason, _ = ns.checkNote(models.RoleCoordinator, noteTestTask,
		noteCmd(models.NoteArtifact, "kick off the first lookup"))
	assert.Equal(t, "artifact_not_one_sentence", reason)

	reason, _ = ns.checkNote(models.RoleCoordinator, noteTestTask,
		noteCmd(models.NoteArtifact, ns.Plan))
	assert.Equal(t, "artifact_echoes_rationale", reason)

	reason, _ = ns.checkNote(models.RoleCoordinator, noteTestTask,
		noteCmd(models.NoteArtifact, "Kick off the first delegation right away."))
	assert.Empty(t, reason)
}

func TestCheckNoteValidationIsFreeForm(t *testing.T) {
	ns := newNotesState()
	reason, _ := ns.checkNote(models.RoleSubagent, noteTestTask,
		noteCmd(models.NoteValidation, "anything goes here"))
	assert.Empty(t, reason)
}

func TestNotesStateAccept(t *testing.T) {
	ns := newNotesState()

	assert.False(t, ns.accept(validRequirements()))
	assert.Equal(t, validRequirements().Content, ns.Requirements)
	assert.False(t, ns.RationaleReady)

	assert.False(t, ns.accept(validCoordinatorPlan()), "first plan is not a rewrite")
	assert.Zero(t, ns.PlanRewrites)

	assert.True(t, ns.accept(noteCmd(models.NotePlan, "1. A revised approach.\n2. With fewer steps.")))
	assert.Equal(t, 1, ns.PlanRewrites)

	assert.False(t, ns.accept(noteCmd(models.NoteArtifact, "Start with the first lookup now.")))
	assert.True(t, ns.RationaleReady)

	ns.accept(noteCmd(models.NoteValidation, "output matches the brief"))
	assert.Equal(t, "output matches the brief", ns.Validation)
}

func TestNotesStateRewriteNudgeOncePerCategory(t *testing.T) {
	ns := newNotesState()

	assert.True(t, ns.shouldAskRewrite(models.NotePlan))
	assert.False(t, ns.shouldAskRewrite(models.NotePlan))
	assert.True(t, ns.shouldAskRewrite(models.NoteArtifact), "categories are tracked independently")
}

func TestNotesStateMissing(t *testing.T) {
	ns := newNotesState()
	assert.Equal(t, "note(requirements), note(plan), note(artifact)", ns.missingForAction())
	assert.Equal(t, "note(requirements), note(plan)", ns.missingForFinish())

	ns.accept(validRequirements())
	assert.Equal(t, "note(plan), note(artifact)", ns.missingForAction())

	ns.accept(validCoordinatorPlan())
	assert.Empty(t, ns.missingForFinish(), "finish does not require the artifact note")
	assert.Equal(t, "note(artifact)", ns.missingForAction())

	ns.accept(noteCmd(models.NoteArtifact, "Start with the first lookup now."))
	assert.Empty(t, ns.missingForAction())
}

func TestJaccard(t *testing.T) {
	assert.Zero(t, jaccard("", ""))
	assert.Zero(t, jaccard("alpha beta", "gamma delta"))
	assert.Equal(t, 1.0, jaccard("alpha beta gamma", "alpha beta gamma"))
	assert.Equal(t, 1.0, jaccard("Alpha BETA", "alpha beta"))

	// Tokens of one or two characters carry no signal.
	assert.Zero(t, jaccard("a an to", "a an to"))

	sim := jaccard("alpha beta gamma delta", "alpha beta")
	require.InDelta(t, 0.5, sim, 0.001)
}

func TestCountSentences(t *testing.T) {
	assert.Equal(t, 0, countSentences(""))
	assert.Equal(t, 0, countSentences("no terminal punctuation"))
	assert.Equal(t, 1, countSentences("One sentence."))
	assert.Equal(t, 1, countSentences("One sentence.   "))
	assert.Equal(t, 2, countSentences("Two here. And two!"))
	assert.Equal(t, 2, countSentences("Wait... what?"))
}
