package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestSettingsUpsertLifecycle(t *testing.T) {
	settings := NewSettingsService(newTestClient(t))
	ctx := context.Background()

	_, err := settings.Get(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)

	var ve *ValidationError
	_, err = settings.Upsert(ctx, UpsertSettingsParams{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "user_id", ve.Field)

	created, err := settings.Upsert(ctx, UpsertSettingsParams{
		UserID:          "user-1",
		MemoryEnabled:   boolPtr(true),
		EncryptedAPIKey: strPtr("ciphertext-blob"),
		KeyMeta:         map[string]any{"provider": "openai", "model": "gpt-test"},
		Timezone:        strPtr("Europe/Berlin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", created.UserID)
	assert.True(t, created.MemoryEnabled)
	require.NotNil(t, created.LlmAPIKeyEncrypted)
	assert.Equal(t, "ciphertext-blob", *created.LlmAPIKeyEncrypted)
	assert.Equal(t, "openai", created.LlmKeyMeta["provider"])
	require.NotNil(t, created.Timezone)
	assert.Equal(t, "Europe/Berlin", *created.Timezone)

	// Nil fields stay untouched on update.
	updated, err := settings.Upsert(ctx, UpsertSettingsParams{
		UserID:   "user-1",
		Timezone: strPtr("America/Denver"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.MemoryEnabled)
	require.NotNil(t, updated.LlmAPIKeyEncrypted)
	assert.Equal(t, "ciphertext-blob", *updated.LlmAPIKeyEncrypted)
	assert.Equal(t, "America/Denver", *updated.Timezone)

	got, err := settings.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestSettingsClearAPIKey(t *testing.T) {
	settings := NewSettingsService(newTestClient(t))
	ctx := context.Background()

	_, err := settings.Upsert(ctx, UpsertSettingsParams{
		UserID:          "user-1",
		EncryptedAPIKey: strPtr("ciphertext-blob"),
	})
	require.NoError(t, err)

	// An explicit empty key revokes the stored one.
	cleared, err := settings.Upsert(ctx, UpsertSettingsParams{
		UserID:          "user-1",
		EncryptedAPIKey: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.LlmAPIKeyEncrypted)

	// Memory defaults to enabled for fresh rows.
	fresh, err := settings.Upsert(ctx, UpsertSettingsParams{UserID: "user-2"})
	require.NoError(t, err)
	assert.True(t, fresh.MemoryEnabled)
	assert.Nil(t, fresh.LlmAPIKeyEncrypted)

	disabled, err := settings.Upsert(ctx, UpsertSettingsParams{
		UserID:        "user-2",
		MemoryEnabled: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, disabled.MemoryEnabled)
}
