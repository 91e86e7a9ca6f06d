// Package delivery sends stored outbound messages through their
// channel's provider and routes the resulting acknowledgements back
// onto the message rows. Web channels are marked delivered at insert
// time and never reach this package; everything else flows through the
// messages and delivery-acks queues.
package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Delivery ack statuses, matching the message delivery_status enum.
const (
	StatusDelivered = "delivered"
	StatusFailed    = "failed"
)

// Provider delivers one outbound message. The payload is the
// provider-specific JSON built when the message was enqueued.
type Provider interface {
	Name() string
	Deliver(ctx context.Context, messageID string, payload json.RawMessage) error
}

// Dispatcher routes delivery jobs to their provider by name.
type Dispatcher struct {
	providers map[string]Provider
}

// NewDispatcher creates a dispatcher over the given providers. Nil
// providers are skipped so callers can pass unconfigured ones directly.
func NewDispatcher(providers ...Provider) *Dispatcher {
	d := &Dispatcher{providers: make(map[string]Provider)}
	for _, p := range providers {
		if p == nil {
			continue
		}
		d.providers[p.Name()] = p
		slog.Info("Delivery provider registered", "provider", p.Name())
	}
	return d
}

// Deliver hands the message to the named provider. An unknown provider
// is an error: the job retries and then records a failure ack, which is
// the right outcome for a channel whose provider is not configured on
// this deployment.
func (d *Dispatcher) Deliver(ctx context.Context, provider, messageID string, payload json.RawMessage) error {
	p, ok := d.providers[provider]
	if !ok {
		return fmt.Errorf("unknown delivery provider %q", provider)
	}
	return p.Deliver(ctx, messageID, payload)
}
