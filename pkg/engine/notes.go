package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conductorhq/conductor/pkg/models"
)

// Keyword gates for the rationale prelude.
var (
	criteriaWords = regexp.MustCompile(`(?i)output|format|criteria|success|deliver|result`)
	planStepLine  = regexp.MustCompile(`(?m)^\s*\d+[.)]`)
	toolHintWords = regexp.MustCompile(`(?i)weather|search|fetch|look up|api|tool`)
	sentenceEnds  = regexp.MustCompile(`[.!?]+(\s+|$)`)
	wordTokens    = regexp.MustCompile(`[a-z0-9]+`)
)

// Coordinator plans must commit to orchestration, not just restate work.
var coordinatorPlanMentions = []string{"queue_op", "spawn_subagent", "deliver_subagent_output"}

const planSimilarityThreshold = 0.6

// notesState holds the rationale prelude of one run: the latest accepted
// note per category and the counters feeding rewrite nudges and the plan
// loop detector. Rebuilt from the step log on every claim.
type notesState struct {
	Requirements string
	Plan         string
	Artifact     string
	Validation   string

	// RationaleReady is set once an artifact note is accepted. Actions
	// stay blocked until then; afterwards further notes only nudge.
	RationaleReady bool

	// ConsecutiveNotes counts notes since the last action, for the
	// "take an action now" nudge.
	ConsecutiveNotes int

	// PlanRewrites counts accepted plan notes beyond the first.
	PlanRewrites int

	rewriteAsked map[string]bool
}

func newNotesState() *notesState {
	return &notesState{rewriteAsked: make(map[string]bool)}
}

// checkNote validates one note command against the protocol. An empty
// reason means the note is acceptable as-is.
func (ns *notesState) checkNote(role models.Role, task string, cmd *RunCommand) (reason, detail string) {
	content := cmd.Content

	switch cmd.Category {
	case models.NoteRequirements:
		if jaccard(content, task) >= planSimilarityThreshold {
			return "requirements_restates_task",
				"the requirements note must specify the expected output and decision criteria, not restate the task"
		}
		if !criteriaWords.MatchString(content) {
			return "requirements_missing_criteria",
				"the requirements note must describe the expected output format and success criteria"
		}

	case models.NotePlan:
		if ns.Requirements == "" {
			return "plan_before_requirements", "record a requirements note first"
		}
		steps := len(planStepLine.FindAllString(content, -1))
		minSteps := 2
		if role == models.RoleCoordinator {
			minSteps = 5
		}
		if steps < minSteps {
			return "plan_needs_numbered_steps",
				fmt.Sprintf("the plan needs at least %d numbered steps (\"1.\" or \"1)\"), got %d", minSteps, steps)
		}
		if role == models.RoleCoordinator {
			var missing []string
			lower := strings.ToLower(content)
			for _, mention := range coordinatorPlanMentions {
				if !strings.Contains(lower, mention) {
					missing = append(missing, mention)
				}
			}
			if !criteriaWords.MatchString(content) {
				missing = append(missing, "expected output format and success criteria")
			}
			if !strings.Contains(lower, "context") {
				missing = append(missing, "the context each subagent will receive")
			}
			if len(missing) > 0 {
				return "plan_missing_mentions",
					"the plan must cover: " + strings.Join(missing, ", ")
			}
		} else if toolHintWords.MatchString(task) && !toolHintWords.MatchString(content) {
			return "plan_missing_tool_usage",
				"the task needs tool calls; name the tools the plan will use"
		}

	case models.NoteArtifact:
		if ns.Requirements == "" || ns.Plan == "" {
			return "artifact_before_plan", "record requirements and plan notes first"
		}
		if n := countSentences(content); n != 1 {
			return "artifact_not_one_sentence",
				fmt.Sprintf("the artifact note must be exactly one sentence describing the immediate next step, got %d", n)
		}
		if jaccard(content, ns.Requirements) >= planSimilarityThreshold ||
			jaccard(content, ns.Plan) >= planSimilarityThreshold {
			return "artifact_echoes_rationale",
				"the artifact note must describe the immediate next step, not repeat the requirements or plan"
		}

	case models.NoteValidation:
		// Free-form self-check, recorded as given.
	}

	return "", ""
}

// accept stores an accepted note and reports whether it rewrote an
// existing plan.
func (ns *notesState) accept(cmd *RunCommand) (planRewrite bool) {
	switch cmd.Category {
	case models.NoteRequirements:
		ns.Requirements = cmd.Content
	case models.NotePlan:
		planRewrite = ns.Plan != ""
		if planRewrite {
			ns.PlanRewrites++
		}
		ns.Plan = cmd.Content
	case models.NoteArtifact:
		ns.Artifact = cmd.Content
		ns.RationaleReady = true
	case models.NoteValidation:
		ns.Validation = cmd.Content
	}
	return planRewrite
}

// shouldAskRewrite reports whether a rewrite nudge is still owed for the
// category. At most one per category per run.
func (ns *notesState) shouldAskRewrite(category string) bool {
	if ns.rewriteAsked[category] {
		return false
	}
	ns.rewriteAsked[category] = true
	return true
}

// missingForAction names what still blocks action commands, or "" when
// the prelude is complete.
func (ns *notesState) missingForAction() string {
	var missing []string
	if ns.Requirements == "" {
		missing = append(missing, "note(requirements)")
	}
	if ns.Plan == "" {
		missing = append(missing, "note(plan)")
	}
	if ns.Artifact == "" {
		missing = append(missing, "note(artifact)")
	}
	if len(missing) == 0 {
		return ""
	}
	return strings.Join(missing, ", ")
}

// missingForFinish names what still blocks finish. Finish needs the
// rationale but not the artifact.
func (ns *notesState) missingForFinish() string {
	var missing []string
	if ns.Requirements == "" {
		missing = append(missing, "note(requirements)")
	}
	if ns.Plan == "" {
		missing = append(missing, "note(plan)")
	}
	if len(missing) == 0 {
		return ""
	}
	return strings.Join(missing, ", ")
}

// jaccard computes token Jaccard similarity over lowercased alphanumeric
// tokens longer than two characters. Disjoint or empty inputs score 0.
func jaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range wordTokens.FindAllString(strings.ToLower(s), -1) {
		if len(tok) > 2 {
			set[tok] = struct{}{}
		}
	}
	return set
}

// countSentences counts terminal punctuation groups followed by
// whitespace or end of text.
func countSentences(s string) int {
	return len(sentenceEnds.FindAllString(strings.TrimSpace(s), -1))
}
