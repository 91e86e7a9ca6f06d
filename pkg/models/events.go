package models

// Event names recorded in the payload of message and decision steps.
// These are the observable engine events that tests and operators key on.
const (
	EventAutoSpawnFromToolCall    = "auto_spawn_from_tool_call"
	EventBudgetDecision           = "budget_decision"
	EventSpawnSubagents           = "spawn_subagents"
	EventLoopDetected             = "loop_detected"
	EventPlanLoopDetected         = "plan_loop_detected"
	EventValidationResult         = "validation_result"
	EventValidationFeedback       = "validation_feedback"
	EventValidationOverride       = "validation_override_finish"
	EventValidationRetryExhausted = "validation_retry_exhausted"
	EventFinishBlocked            = "finish_blocked"
	EventFinishRepeatForced       = "finish_repeat_forced"
	EventSystemNote               = "system_note"
	EventActionBlocked            = "action_blocked"
	EventSpawnBlocked             = "spawn_blocked"
	EventSubagentFailed           = "subagent_failed"
	EventSubagentResult           = "subagent_result"
	EventRequestParent            = "request_parent"
	EventRequestParentRepeat      = "request_parent_repeat"
	EventReplySubagent            = "reply_subagent"
	EventQueueOp                  = "queue_op"
	EventSleep                    = "sleep"
	EventAutoRecovery             = "auto_recovery_spawn"
	EventContextRotated           = "context_rotated"
)

// Note kinds accepted by the note command. Artifact notes gate actions;
// requirements and plan notes gate finish.
const (
	NoteRequirements = "requirements"
	NotePlan         = "plan"
	NoteArtifact     = "artifact"
	NoteValidation   = "validation"
	NoteLimitation   = "limitation"
)

// Forced-finish reasons written into finish step payloads.
const (
	FinishReasonBudgetStuck   = "budget_stuck"
	FinishReasonMaxIterations = "max_iterations"
	FinishReasonRuntime       = "runtime_expired"
	FinishReasonSelfAbandoned = "self_abandoned"
	FinishReasonPointlessLoop = "pointless_loop"
	FinishReasonParentRepeat  = "request_parent_repeat"
)
