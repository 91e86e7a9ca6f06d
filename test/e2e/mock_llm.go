package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/conductorhq/conductor/pkg/llm"
)

// LLMScriptEntry is one scripted completion. Text or Error is consumed
// per call; WaitCh and OnBlock add synchronization points for tests
// that need to act while a run is parked inside an LLM call.
type LLMScriptEntry struct {
	// Text is returned as the completion content.
	Text string

	// Error, when set, is returned instead of a response.
	Error error

	// WaitCh, when set, blocks the call until the channel is closed or
	// the request context is cancelled.
	WaitCh <-chan struct{}

	// OnBlock, when set, receives one value as the call begins. Tests
	// use it to know a run is inside the call before acting on it.
	OnBlock chan<- struct{}
}

// say wraps text in a plain script entry.
func say(text string) LLMScriptEntry {
	return LLMScriptEntry{Text: text}
}

type llmRoute struct {
	key     string
	entries []LLMScriptEntry
	index   int
}

// ScriptedLLMClient replays pre-planned completions instead of calling
// a provider. Routed entries are consulted first: a route matches when
// its key appears anywhere in the request messages, which keeps scripts
// stable when several runs interleave. Calls that match no route take
// the next sequential entry.
type ScriptedLLMClient struct {
	mu         sync.Mutex
	sequential []LLMScriptEntry
	seqIndex   int
	routes     []*llmRoute
	requests   []llm.Request
}

var _ llm.Client = (*ScriptedLLMClient)(nil)

func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{}
}

// AddSequential appends entries to the fallback script.
func (c *ScriptedLLMClient) AddSequential(entries ...LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sequential = append(c.sequential, entries...)
}

// AddRouted appends entries to the script for key. Routes are checked
// in registration order.
func (c *ScriptedLLMClient) AddRouted(key string, entries ...LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.routes {
		if r.key == key {
			r.entries = append(r.entries, entries...)
			return
		}
	}
	c.routes = append(c.routes, &llmRoute{key: key, entries: entries})
}

func (c *ScriptedLLMClient) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	calls := len(c.requests)
	entry, ok := c.next(req)
	c.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("llm script exhausted after %d calls", calls)
	}
	if entry.OnBlock != nil {
		entry.OnBlock <- struct{}{}
	}
	if entry.WaitCh != nil {
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if entry.Error != nil {
		return nil, entry.Error
	}
	return &llm.Response{Content: entry.Text, Model: "scripted"}, nil
}

func (c *ScriptedLLMClient) next(req llm.Request) (LLMScriptEntry, bool) {
	var b strings.Builder
	for _, m := range req.Messages {
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	text := b.String()

	for _, r := range c.routes {
		if r.index < len(r.entries) && strings.Contains(text, r.key) {
			e := r.entries[r.index]
			r.index++
			return e, true
		}
	}
	if c.seqIndex < len(c.sequential) {
		e := c.sequential[c.seqIndex]
		c.seqIndex++
		return e, true
	}
	return LLMScriptEntry{}, false
}

// CallCount reports how many completions were requested so far.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// Requests returns a copy of every request seen so far.
func (c *ScriptedLLMClient) Requests() []llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]llm.Request, len(c.requests))
	copy(out, c.requests)
	return out
}
