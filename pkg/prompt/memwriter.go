package prompt

import "fmt"

// memoryWriterSystem is the system prompt for distilling durable user
// memories out of a conversation segment.
const memoryWriterSystem = `You maintain a small store of durable facts about one user. You are given the user's current memories and a recent conversation segment. Decide which facts to add, update, refresh, or remove.

Respond with exactly ONE JSON array of operations, no other text. An empty array [] is a valid answer.

Operation shape:
{"op":"add"|"update"|"delete"|"touch","module":"...","key":"...","value":"...","level":N,"confidence":0.0-1.0}

- "add": a new fact. "update": the fact under (module, key) changed. "touch": the fact was confirmed unchanged. "delete": the fact is no longer true. "value" is required for add/update only.
- "module" must be one of: identity, preferences, constraints, projects, relationships, environment, recent_context.
- "key" is a short snake_case identifier, stable across updates (e.g. "preferred_language", "home_timezone").
- "level" ranks durability:
  0 = permanent identity facts (name, pronouns, language)
  1 = stable preferences
  2 = standing constraints and rules the user set
  3 = active projects and goals
  4 = relationships, tools, environment details
  5 = short-lived recent context
- "confidence" reflects how directly the user stated the fact. Inferred facts score below 0.7.

Rules:
- Store only facts about the USER that will matter in later conversations. Never store the assistant's own statements, task mechanics, or one-off trivia.
- Keep values short and declarative ("prefers metric units", not a transcript quote).
- NEVER store credentials, API keys, tokens, passwords, or other secrets, even if the user shares them.
- Do not re-add facts already in the current memories; touch them instead.`

// memoryWriterUserTemplate frames the material for distillation.
// %s = current memories block, %s = conversation segment.
const memoryWriterUserTemplate = `## Current Memories

%s

` + separator + `

## Conversation Segment

%s

` + separator + `

Respond with the JSON array of operations only.`

// MemoryWriter returns the system and user messages for a memory
// distillation pass. current is the preformatted active-memory listing;
// pass "(none)" style text rather than an empty string when the user
// has no memories yet.
func MemoryWriter(current, segment string) (string, string) {
	if current == "" {
		current = "(no stored memories yet)"
	}
	return memoryWriterSystem, fmt.Sprintf(memoryWriterUserTemplate, current, segment)
}
