package queue

import "encoding/json"

// Job type discriminators carried in the payload "type" field.
const (
	JobTypeRun         = "run"
	JobTypeMemoryWrite = "memory_write"
	JobTypeDelivery    = "delivery"
	JobTypeDeliveryAck = "delivery_ack"
)

// Memory write modes.
const (
	MemoryWriteModeClose    = "close"
	MemoryWriteModePeriodic = "periodic"
)

// RunJob is the payload for the runs and wake queues. Wake jobs carry the
// same shape plus the delay and reason that produced them.
type RunJob struct {
	Type         string `json:"type"`
	RunID        string `json:"runId"`
	TenantID     string `json:"tenantId"`
	AgentID      string `json:"agentId"`
	DelaySeconds int    `json:"delaySeconds,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// MemoryWriteJob is the payload for the memory-writes queue. Mode "close"
// covers a rotated or force-closed context; "periodic" covers a mid-context
// segment, in which case SegmentMessages bounds the window.
type MemoryWriteJob struct {
	Type            string `json:"type"`
	ContextID       string `json:"contextId"`
	UserID          string `json:"userId"`
	Mode            string `json:"mode"`
	SegmentMessages int    `json:"segmentMessages,omitempty"`
}

// DeliveryJob is the payload for the messages queue. Payload is
// provider-specific and is decoded by the delivery dispatcher.
type DeliveryJob struct {
	Type      string          `json:"type"`
	Provider  string          `json:"provider"`
	MessageID string          `json:"messageId"`
	Payload   json.RawMessage `json:"payload"`
}

// DeliveryAckJob is the payload for the delivery-acks queue.
type DeliveryAckJob struct {
	Type      string `json:"type"`
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}
