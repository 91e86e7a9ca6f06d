package models

// Trigger types stored on the trigger row.
const (
	TriggerTypeCron    = "cron"
	TriggerTypeRunWake = "run_wake"
)

// TriggerSpec is the JSON document stored in triggers.spec. Cron is set
// for cron triggers; RunID and Reason for run wakes.
type TriggerSpec struct {
	Cron   string `json:"cron,omitempty"`
	RunID  string `json:"runId,omitempty"`
	Reason string `json:"reason,omitempty"`
}
