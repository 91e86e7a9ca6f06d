package events

import (
	"context"
	"testing"
)

func TestNilPublisherIsSafe(t *testing.T) {
	var p *Publisher

	// Both methods must be callable on a nil publisher — the engine never
	// guards its event calls.
	p.PublishStep(context.Background(), StepEvent{RunID: "r1", Seq: 1, StepType: "event"})
	p.PublishStatus(context.Background(), StatusEvent{RunID: "r1", Status: "completed"})

	empty := &Publisher{}
	empty.PublishStep(context.Background(), StepEvent{RunID: "r1", Seq: 2, StepType: "llm"})
	empty.PublishStatus(context.Background(), StatusEvent{RunID: "r1", Status: "failed"})
}
