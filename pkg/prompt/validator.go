package prompt

import (
	"fmt"
	"strings"
)

// separator is a visual delimiter for prompt sections.
const separator = "═══════════════════════════════════════════════════════════════════════════════"

// validatorSystem is the system prompt for pre-send output validation.
const validatorSystem = `You are a strict output reviewer. You are given a task, the requirements the author recorded for it, and the output the author wants to send. Judge whether the output satisfies the task and requirements well enough to deliver.

Respond with exactly ONE JSON object, no other text:
{"decision":"send"|"revise","feedback":"...","retry":true|false}

Rules:
- "send" when the output answers the task and covers the stated requirements. Minor style issues are not grounds for revision.
- "revise" when the output misses a requirement, is incomplete, contradicts itself, or does not answer the task. "feedback" must then name the concrete gap and what to change — never restate the task.
- "retry" is true when one more attempt with your feedback is likely to fix the output, false when the gap cannot be closed by rewriting (missing data, impossible ask).
- An output that honestly states what could not be done and why counts as complete for the parts it covers.`

// validatorUserTemplate lays out the material under review.
// %s = task, %s = requirements section, %s = output.
const validatorUserTemplate = `## Task

%s

%s## Output Under Review

%s

` + separator + `

Respond with the JSON decision object only.`

// Validator returns the system and user messages for validating a run's
// output before delivery. requirements may be empty when the run never
// recorded a requirements note.
func Validator(task, requirements, output string) (string, string) {
	reqSection := ""
	if strings.TrimSpace(requirements) != "" {
		reqSection = fmt.Sprintf("## Recorded Requirements\n\n%s\n\n", requirements)
	}
	return validatorSystem, fmt.Sprintf(validatorUserTemplate, task, reqSection, output)
}
