package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/models"
)

// repetitionWindow is how many trailing iterations the no-progress and
// pointless-loop detectors inspect.
const repetitionWindow = 3

// budgetStrikeLimit force-finishes a run that keeps ignoring the budget.
const budgetStrikeLimit = 4

// iterationRecord is the per-iteration snapshot persisted in the
// assistant_message step result. The loop detectors read these, so a
// re-claimed run keeps its history.
type iterationRecord struct {
	Signature   string
	Action      bool
	HadToolCall bool
	OutputHash  string
}

// iterState is everything the engine knows about a run's progress.
// Rebuilt from the persisted step log on every claim; mutated in memory
// during the claim.
type iterState struct {
	Iteration   int
	ActionCount int
	Limit       int

	BudgetStrikes      int
	LimitationRequired bool

	Recent []iterationRecord

	ToolSigCount map[string]int
	ToolFailures map[string]int
	lastCallSig  string
	lastFullSig  string

	SpawnSigs            map[string]bool
	BlockedSpawnAttempts int

	SystemNotes        int
	ValidationAttempts int
	ValidationFeedback string
	FinishBlocked      int
	LastFinishOutput   string
	lastValidatedHash  string

	Notes *notesState
}

// rebuildState replays a run's step log into the in-memory state. The
// step log is the only durable record; nothing here is persisted except
// through the steps themselves.
func rebuildState(steps []*ent.RunStep, cfg *config.EngineConfig) *iterState {
	st := &iterState{
		Limit:        clampLimit(cfg.MaxIterations, cfg),
		ToolSigCount: make(map[string]int),
		ToolFailures: make(map[string]int),
		SpawnSigs:    make(map[string]bool),
		Notes:        newNotesState(),
	}

	for _, s := range steps {
		switch s.Type {
		case runstep.TypeAssistantMessage:
			st.Iteration++
			rec := iterationRecord{
				Signature:   resultString(s.Result, "signature"),
				Action:      resultBool(s.Result, "action"),
				HadToolCall: resultBool(s.Result, "hadToolCall"),
				OutputHash:  resultString(s.Result, "outputHash"),
			}
			if rec.Action {
				st.ActionCount++
			}
			st.pushRecent(rec)

		case runstep.TypeToolCall:
			sig := toolSignature(s.ToolName, s.Args)
			st.ToolSigCount[sig]++
			st.lastCallSig = sig

		case runstep.TypeToolResult:
			if s.Status == runstep.StatusFailed {
				st.ToolFailures[s.ToolName]++
				if st.ToolFailures[s.ToolName] > cfg.MaxToolRetries {
					st.LimitationRequired = true
				}
			}
			full := st.lastCallSig + ":" + hashJSON(s.Result)
			if full == st.lastFullSig {
				st.LimitationRequired = true
			}
			st.lastFullSig = full

		case runstep.TypeNote:
			if s.Status == runstep.StatusCompleted {
				st.Notes.accept(&RunCommand{
					Type:     CmdNote,
					Category: resultString(s.Result, "category"),
					Content:  resultString(s.Result, "content"),
				})
			}

		case runstep.TypeMessage:
			switch resultString(s.Result, "event") {
			case models.EventSystemNote:
				st.SystemNotes++
			case models.EventBudgetDecision:
				if resultString(s.Result, "action") == "extend" {
					if n, ok := resultInt(s.Result, "maxIterations"); ok {
						st.Limit = clampLimit(n, cfg)
					}
				}
			case models.EventActionBlocked:
				if resultString(s.Result, "reason") == "budget_exceeded" {
					st.BudgetStrikes++
				}
			case models.EventSpawnSubagents:
				for _, sig := range spawnSignaturesFromResult(s.Result) {
					st.SpawnSigs[sig] = true
				}
			case models.EventSpawnBlocked:
				if resultBool(s.Result, "all") {
					st.BlockedSpawnAttempts++
				}
			case models.EventValidationResult:
				st.ValidationAttempts++
				st.lastValidatedHash = resultString(s.Result, "outputHash")
				if resultString(s.Result, "decision") == "revise" {
					st.ValidationFeedback = resultString(s.Result, "feedback")
				} else {
					st.ValidationFeedback = ""
				}
			case models.EventValidationRetryExhausted, models.EventValidationOverride:
				st.ValidationFeedback = ""
			case models.EventFinishBlocked:
				st.FinishBlocked++
				st.LastFinishOutput = resultString(s.Result, "outputHash")
			}
		}
	}

	return st
}

func clampLimit(n int, cfg *config.EngineConfig) int {
	if n < cfg.MinIterations {
		n = cfg.MinIterations
	}
	if n > cfg.MaxIterationsHardCap {
		n = cfg.MaxIterationsHardCap
	}
	return n
}

func (st *iterState) pushRecent(rec iterationRecord) {
	st.Recent = append(st.Recent, rec)
	if len(st.Recent) > repetitionWindow {
		st.Recent = st.Recent[len(st.Recent)-repetitionWindow:]
	}
}

// noRecentProgress reports whether the trailing window shows a stalled
// run: no tool calls and one unchanged output across the whole window.
func (st *iterState) noRecentProgress() bool {
	if len(st.Recent) < repetitionWindow {
		return false
	}
	first := st.Recent[0]
	for _, rec := range st.Recent {
		if rec.HadToolCall || rec.OutputHash != first.OutputHash {
			return false
		}
	}
	return true
}

// repeatedCommand reports whether the trailing window is a single
// command signature with no tool calls and no output change.
func (st *iterState) repeatedCommand() bool {
	if !st.noRecentProgress() {
		return false
	}
	first := st.Recent[0]
	for _, rec := range st.Recent {
		if rec.Signature != first.Signature {
			return false
		}
	}
	return true
}

// toolSignature is a stable identity for one tool invocation. Map keys
// marshal in sorted order, so equal args always produce equal bytes.
func toolSignature(name string, args map[string]any) string {
	return name + ":" + hashJSON(args)
}

// commandSignature is a stable identity for one parsed command.
func commandSignature(cmd *RunCommand) string {
	return hashJSON(cmd)
}

// spawnSignature is a stable identity for one spawn spec. The spec is
// canonicalised through a map so runtime structs and replayed step
// payloads hash identically.
func spawnSignature(spec models.SpawnSpec) string {
	data, err := json.Marshal(spec)
	if err != nil {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return ""
	}
	return hashJSON(m)
}

func spawnSignaturesFromResult(result map[string]any) []string {
	specs, ok := result["specs"].([]any)
	if !ok {
		return nil
	}
	sigs := make([]string, 0, len(specs))
	for _, spec := range specs {
		m, ok := spec.(map[string]any)
		if !ok {
			continue
		}
		sigs = append(sigs, hashJSON(m))
	}
	return sigs
}

func hashJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}

func resultString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func resultBool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func resultInt(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
