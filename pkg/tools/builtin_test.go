package tools

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/memoryitem"
)

type fakeMemoryStore struct {
	items       []*ent.MemoryItem
	err         error
	lastQuery   string
	lastLimit   int
	listedUsers []string
}

func (f *fakeMemoryStore) Search(ctx context.Context, userID, query string, limit int) ([]*ent.MemoryItem, error) {
	f.lastQuery = query
	f.lastLimit = limit
	return f.items, f.err
}

func (f *fakeMemoryStore) ListActive(ctx context.Context, userID string) ([]*ent.MemoryItem, error) {
	f.listedUsers = append(f.listedUsers, userID)
	return f.items, f.err
}

func memItem(module, key, value string, level int) *ent.MemoryItem {
	return &ent.MemoryItem{
		Module:     memoryitem.Module(module),
		Key:        key,
		Value:      value,
		Level:      level,
		Confidence: 0.9,
		LastSeenAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func builtinRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(nil)
	for _, tool := range Builtins() {
		require.NoError(t, r.Register(tool))
	}
	return r
}

func TestMemorySearch(t *testing.T) {
	store := &fakeMemoryStore{items: []*ent.MemoryItem{
		memItem("preferences", "units", "prefers metric units", 1),
	}}
	r := builtinRegistry(t)
	tc := ToolContext{UserID: "user-1", Store: store}

	result, err := r.Execute(context.Background(), tc, "memory.search", map[string]any{"query": "units"}, "")
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	assert.Equal(t, "units", store.lastQuery)
	assert.Equal(t, 10, store.lastLimit) // default limit

	rows, ok := result.Result.([]map[string]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "preferences", rows[0]["module"])
	assert.Equal(t, "prefers metric units", rows[0]["value"])
}

func TestMemorySearchRequiresQuery(t *testing.T) {
	r := builtinRegistry(t)
	tc := ToolContext{UserID: "user-1", Store: &fakeMemoryStore{}}

	result, err := r.Execute(context.Background(), tc, "memory.search", map[string]any{}, "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid arguments")
}

func TestMemorySearchWithoutUser(t *testing.T) {
	r := builtinRegistry(t)
	tc := ToolContext{Store: &fakeMemoryStore{}}

	result, err := r.Execute(context.Background(), tc, "memory.search", map[string]any{"query": "x"}, "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "no user")
}

func TestMemorySearchStoreError(t *testing.T) {
	r := builtinRegistry(t)
	tc := ToolContext{UserID: "u", Store: &fakeMemoryStore{err: fmt.Errorf("connection refused")}}

	result, err := r.Execute(context.Background(), tc, "memory.search", map[string]any{"query": "x"}, "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "connection refused")
}

func TestMemoryListFilters(t *testing.T) {
	store := &fakeMemoryStore{items: []*ent.MemoryItem{
		memItem("identity", "name", "Alex", 0),
		memItem("preferences", "units", "metric", 1),
		memItem("preferences", "editor", "vim", 1),
		memItem("projects", "current", "garden shed", 3),
	}}
	r := builtinRegistry(t)
	tc := ToolContext{UserID: "user-1", Store: store}

	result, err := r.Execute(context.Background(), tc, "memory.list", map[string]any{"module": "preferences"}, "")
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)
	rows := result.Result.([]map[string]any)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "preferences", row["module"])
	}

	result, err = r.Execute(context.Background(), tc, "memory.list", map[string]any{"level": 0}, "")
	require.NoError(t, err)
	rows = result.Result.([]map[string]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "name", rows[0]["key"])

	result, err = r.Execute(context.Background(), tc, "memory.list", map[string]any{"limit": 2}, "")
	require.NoError(t, err)
	assert.Len(t, result.Result.([]map[string]any), 2)
}

func TestMemoryListRejectsUnknownModule(t *testing.T) {
	r := builtinRegistry(t)
	tc := ToolContext{UserID: "u", Store: &fakeMemoryStore{}}

	result, err := r.Execute(context.Background(), tc, "memory.list", map[string]any{"module": "secrets"}, "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid arguments")
}

func TestClockNow(t *testing.T) {
	r := builtinRegistry(t)

	result, err := r.Execute(context.Background(), ToolContext{}, "clock.now", nil, "")
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)

	payload := result.Result.(map[string]any)
	assert.Equal(t, "UTC", payload["timezone"])

	parsed, perr := time.Parse(time.RFC3339, payload["now"].(string))
	require.NoError(t, perr)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}

func TestClockNowWithTimezone(t *testing.T) {
	r := builtinRegistry(t)

	result, err := r.Execute(context.Background(), ToolContext{}, "clock.now", map[string]any{"timezone": "Europe/Berlin"}, "")
	require.NoError(t, err)
	require.True(t, result.Success, result.Error)
	assert.Equal(t, "Europe/Berlin", result.Result.(map[string]any)["timezone"])

	result, err = r.Execute(context.Background(), ToolContext{}, "clock.now", map[string]any{"timezone": "Mars/Olympus"}, "")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "unknown timezone")
}
