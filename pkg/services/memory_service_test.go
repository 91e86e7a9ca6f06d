package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/memoryitem"
	"github.com/conductorhq/conductor/pkg/models"
)

func TestUpsertValidation(t *testing.T) {
	memories := NewMemoryService(newTestClient(t))
	ctx := context.Background()

	valid := UpsertParams{
		UserID:     "user-1",
		Module:     models.MemoryModulePreferences,
		Key:        "favorite_color",
		Value:      "teal",
		Level:      1,
		Confidence: 0.9,
	}

	cases := []struct {
		field  string
		mutate func(*UpsertParams)
	}{
		{"user_id", func(p *UpsertParams) { p.UserID = "" }},
		{"module", func(p *UpsertParams) { p.Module = "astrology" }},
		{"key", func(p *UpsertParams) { p.Key = "" }},
		{"value", func(p *UpsertParams) { p.Value = "" }},
		{"level", func(p *UpsertParams) { p.Level = 6 }},
		{"level", func(p *UpsertParams) { p.Level = -1 }},
	}
	for _, tc := range cases {
		params := valid
		tc.mutate(&params)

		_, err := memories.Upsert(ctx, params)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, tc.field, ve.Field)
	}
}

func TestUpsertCreatesThenUpdatesInPlace(t *testing.T) {
	memories := NewMemoryService(newTestClient(t))
	ctx := context.Background()

	created, err := memories.Upsert(ctx, UpsertParams{
		UserID:    "user-1",
		Module:    models.MemoryModulePreferences,
		Key:       "favorite_color",
		Value:     "teal",
		Level:     1,
		ContextID: "ctx-1",
	})
	require.NoError(t, err)
	assert.Equal(t, memoryitem.ModulePreferences, created.Module)
	assert.Equal(t, "teal", created.Value)
	assert.InDelta(t, 0.6, created.Confidence, 0.001, "omitted confidence defaults")
	assert.False(t, created.Pinned)
	assert.False(t, created.Archived)
	require.NotNil(t, created.ContextID)
	assert.Equal(t, "ctx-1", *created.ContextID)

	// Same (user, module, key) rewrites the active item instead of
	// inserting a duplicate.
	updated, err := memories.Upsert(ctx, UpsertParams{
		UserID:     "user-1",
		Module:     models.MemoryModulePreferences,
		Key:        "favorite_color",
		Value:      "forest green",
		Level:      2,
		Confidence: 0.95,
		Pin:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "forest green", updated.Value)
	assert.Equal(t, 2, updated.Level)
	assert.InDelta(t, 0.95, updated.Confidence, 0.001)
	assert.True(t, updated.Pinned)
	assert.False(t, updated.LastSeenAt.Before(created.LastSeenAt))

	// An update without pin leaves an earlier pin in place.
	repinned, err := memories.Upsert(ctx, UpsertParams{
		UserID: "user-1",
		Module: models.MemoryModulePreferences,
		Key:    "favorite_color",
		Value:  "still green",
		Level:  2,
	})
	require.NoError(t, err)
	assert.True(t, repinned.Pinned)

	// Out-of-range confidence falls back to the default.
	wild, err := memories.Upsert(ctx, UpsertParams{
		UserID:     "user-1",
		Module:     models.MemoryModuleIdentity,
		Key:        "name",
		Value:      "Sam",
		Level:      0,
		Confidence: 1.5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, wild.Confidence, 0.001)
}

func TestUpsertTruncatesToLevelCap(t *testing.T) {
	memories := NewMemoryService(newTestClient(t))
	ctx := context.Background()

	long := strings.Repeat("x", 80)
	item, err := memories.Upsert(ctx, UpsertParams{
		UserID: "user-1",
		Module: models.MemoryModuleIdentity,
		Key:    "bio",
		Value:  long,
		Level:  0,
	})
	require.NoError(t, err)
	assert.Len(t, item.Value, models.MemoryLevelCaps[0].MaxChars)

	// Higher levels allow longer values.
	item, err = memories.Upsert(ctx, UpsertParams{
		UserID: "user-1",
		Module: models.MemoryModuleProjects,
		Key:    "current_project",
		Value:  long,
		Level:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, long, item.Value)
}

func TestTouchRefreshesAndUnarchives(t *testing.T) {
	memories := NewMemoryService(newTestClient(t))
	ctx := context.Background()

	found, err := memories.Touch(ctx, "user-1", models.MemoryModulePreferences, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	item, err := memories.Upsert(ctx, UpsertParams{
		UserID: "user-1",
		Module: models.MemoryModulePreferences,
		Key:    "editor",
		Value:  "helix",
		Level:  2,
	})
	require.NoError(t, err)

	archived, err := memories.Archive(ctx, "user-1", models.MemoryModulePreferences, "editor")
	require.NoError(t, err)
	assert.True(t, archived)

	active, err := memories.ListActive(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, active)

	// Touch revives the archived fact.
	found, err = memories.Touch(ctx, "user-1", models.MemoryModulePreferences, "editor")
	require.NoError(t, err)
	assert.True(t, found)

	active, err = memories.ListActive(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, item.ID, active[0].ID)
	assert.False(t, active[0].LastSeenAt.Before(item.LastSeenAt))
}

func TestArchiveSkipsPinnedItems(t *testing.T) {
	memories := NewMemoryService(newTestClient(t))
	ctx := context.Background()

	_, err := memories.Upsert(ctx, UpsertParams{
		UserID: "user-1",
		Module: models.MemoryModuleConstraints,
		Key:    "allergy",
		Value:  "no peanuts",
		Level:  0,
		Pin:    true,
	})
	require.NoError(t, err)

	archived, err := memories.Archive(ctx, "user-1", models.MemoryModuleConstraints, "allergy")
	require.NoError(t, err)
	assert.False(t, archived, "pinned facts survive archival requests")

	active, err := memories.ListActive(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestDedupeArchivesNearIdenticalValues(t *testing.T) {
	memories := NewMemoryService(newTestClient(t))
	ctx := context.Background()

	_, err := memories.Upsert(ctx, UpsertParams{
		UserID: "user-1",
		Module: models.MemoryModuleEnvironment,
		Key:    "city",
		Value:  "Lives in   OSLO",
		Level:  1,
	})
	require.NoError(t, err)

	newer, err := memories.Upsert(ctx, UpsertParams{
		UserID: "user-1",
		Module: models.MemoryModuleIdentity,
		Key:    "location",
		Value:  "lives in Oslo!",
		Level:  1,
	})
	require.NoError(t, err)

	count, err := memories.DedupeAndEnforceCaps(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	active, err := memories.ListActive(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, newer.ID, active[0].ID, "the most recently seen duplicate wins")

	// A second pass finds nothing left to do.
	count, err = memories.DedupeAndEnforceCaps(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDedupeEnforcesLevelCaps(t *testing.T) {
	memories := NewMemoryService(newTestClient(t))
	ctx := context.Background()
	levelCap := models.MemoryLevelCaps[0].MaxItems

	seeds := []struct {
		key, value string
	}{
		{"fact_one", "first distinct fact"},
		{"fact_two", "second distinct fact"},
		{"fact_three", "third distinct fact"},
		{"fact_four", "fourth distinct fact"},
		{"fact_five", "fifth distinct fact"},
	}
	require.Greater(t, len(seeds), levelCap, "the seed must overflow level zero")

	var oldest string
	for i, seed := range seeds {
		item, err := memories.Upsert(ctx, UpsertParams{
			UserID: "user-1",
			Module: models.MemoryModuleIdentity,
			Key:    seed.key,
			Value:  seed.value,
			Level:  0,
			Pin:    i == 0,
		})
		require.NoError(t, err)
		if i == 0 {
			oldest = item.ID
		}
	}

	count, err := memories.DedupeAndEnforceCaps(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, len(seeds)-levelCap, count)

	active, err := memories.ListActive(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, active, levelCap)

	// The oldest item was pinned, so the cap evicted the next oldest.
	for _, item := range active {
		if item.ID == oldest {
			assert.True(t, item.Pinned)
		}
		assert.NotEqual(t, "second distinct fact", item.Value)
	}
}

func TestTopPerLevelBoundsEachLevel(t *testing.T) {
	memories := NewMemoryService(newTestClient(t))
	ctx := context.Background()

	seeds := []UpsertParams{
		{UserID: "user-1", Module: models.MemoryModuleIdentity, Key: "name", Value: "Sam", Level: 0},
		{UserID: "user-1", Module: models.MemoryModulePreferences, Key: "tone", Value: "casual replies", Level: 1},
		{UserID: "user-1", Module: models.MemoryModulePreferences, Key: "length", Value: "short replies", Level: 1},
		{UserID: "user-1", Module: models.MemoryModuleProjects, Key: "launch", Value: "shipping the beta", Level: 3},
	}
	for _, p := range seeds {
		_, err := memories.Upsert(ctx, p)
		require.NoError(t, err)
	}

	byLevel, err := memories.TopPerLevel(ctx, "user-1", 1)
	require.NoError(t, err)
	assert.Len(t, byLevel[0], 1)
	require.Len(t, byLevel[1], 1)
	assert.Equal(t, "short replies", byLevel[1][0].Value, "most recently seen item represents its level")
	assert.Len(t, byLevel[3], 1)

	all, err := memories.TopPerLevel(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Len(t, all[1], 2)

	// Memories never leak across users.
	other, err := memories.TopPerLevel(ctx, "user-2", 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSearchFullText(t *testing.T) {
	memories := NewMemoryService(newTestClient(t))
	ctx := context.Background()

	_, err := memories.Upsert(ctx, UpsertParams{
		UserID: "user-1",
		Module: models.MemoryModulePreferences,
		Key:    "coffee",
		Value:  "prefers dark roast coffee in the morning",
		Level:  2,
	})
	require.NoError(t, err)
	_, err = memories.Upsert(ctx, UpsertParams{
		UserID: "user-1",
		Module: models.MemoryModuleProjects,
		Key:    "deadline",
		Value:  "quarterly report due next friday",
		Level:  3,
	})
	require.NoError(t, err)

	hits, err := memories.Search(ctx, "user-1", "coffee", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "coffee", hits[0].Key)

	hits, err = memories.Search(ctx, "user-1", "tea ceremony", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)

	// Search is scoped to the owner.
	hits, err = memories.Search(ctx, "user-2", "coffee", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)

	has, err := memories.ContainsValue(ctx, "user-1", "dark roast")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = memories.ContainsValue(ctx, "user-1", "sk-secret-key")
	require.NoError(t, err)
	assert.False(t, has)
}
