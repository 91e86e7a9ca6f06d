package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsNotFound(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	f.wantError(t, http.MethodGet, "/api/v1/users/ghost/settings", nil,
		http.StatusNotFound, "resource not found")
}

func TestPutSettingsSealsAPIKey(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))
	ctx := context.Background()

	rec := f.request(t, http.MethodPut, "/api/v1/users/user-1/settings", map[string]any{
		"memoryEnabled": true,
		"llmApiKey":     "sk-user-supplied-key",
		"llmKeyMeta":    map[string]any{"provider": "openai", "model": "gpt-5-mini"},
		"timezone":      "Europe/Oslo",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The plaintext key must never appear in a response.
	assert.NotContains(t, rec.Body.String(), "sk-user-supplied-key")

	var resp SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.True(t, resp.MemoryEnabled)
	assert.True(t, resp.HasAPIKey)
	assert.Equal(t, "openai", resp.Provider)
	assert.Equal(t, "Europe/Oslo", resp.Timezone)

	// What lands in the store is ciphertext that round-trips through the
	// server cipher.
	row, err := f.server.settings.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, row.LlmAPIKeyEncrypted)
	assert.NotEqual(t, "sk-user-supplied-key", *row.LlmAPIKeyEncrypted)
	plain, err := f.cipher.Open(*row.LlmAPIKeyEncrypted)
	require.NoError(t, err)
	assert.Equal(t, "sk-user-supplied-key", plain)
}

func TestPutSettingsRequiresProviderWithKey(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	f.wantError(t, http.MethodPut, "/api/v1/users/user-1/settings",
		map[string]any{"llmApiKey": "sk-user-supplied-key"},
		http.StatusBadRequest, "llmKeyMeta.provider is required with llmApiKey")
}

func TestPutSettingsPartialUpdatePreservesKey(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	var created SettingsResponse
	f.doJSON(t, http.MethodPut, "/api/v1/users/user-1/settings", map[string]any{
		"memoryEnabled": true,
		"llmApiKey":     "sk-user-supplied-key",
		"llmKeyMeta":    map[string]any{"provider": "openai"},
	}, http.StatusOK, &created)
	require.True(t, created.HasAPIKey)

	var updated SettingsResponse
	f.doJSON(t, http.MethodPut, "/api/v1/users/user-1/settings", map[string]any{
		"timezone": "UTC",
	}, http.StatusOK, &updated)

	assert.Equal(t, "UTC", updated.Timezone)
	assert.True(t, updated.HasAPIKey)
	assert.True(t, updated.MemoryEnabled)
	assert.Equal(t, "openai", updated.Provider)

	var got SettingsResponse
	f.doJSON(t, http.MethodGet, "/api/v1/users/user-1/settings", nil, http.StatusOK, &got)
	assert.Equal(t, updated, got)
}

func TestPutSettingsClearsKey(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	var created SettingsResponse
	f.doJSON(t, http.MethodPut, "/api/v1/users/user-1/settings", map[string]any{
		"llmApiKey":  "sk-user-supplied-key",
		"llmKeyMeta": map[string]any{"provider": "openai"},
	}, http.StatusOK, &created)
	require.True(t, created.HasAPIKey)

	var cleared SettingsResponse
	f.doJSON(t, http.MethodPut, "/api/v1/users/user-1/settings", map[string]any{
		"llmApiKey": "",
	}, http.StatusOK, &cleared)

	assert.False(t, cleared.HasAPIKey)
	assert.True(t, cleared.MemoryEnabled)
}

func TestPutSettingsWithoutEncryptionKey(t *testing.T) {
	f := newAPIFixture(t, nil)

	// Storing a key is refused when the deployment cannot seal it.
	f.wantError(t, http.MethodPut, "/api/v1/users/user-1/settings", map[string]any{
		"llmApiKey":  "sk-user-supplied-key",
		"llmKeyMeta": map[string]any{"provider": "openai"},
	}, http.StatusConflict, "per-user keys are disabled")

	// Everything that needs no cipher still works.
	var resp SettingsResponse
	f.doJSON(t, http.MethodPut, "/api/v1/users/user-1/settings", map[string]any{
		"memoryEnabled": false,
	}, http.StatusOK, &resp)
	assert.False(t, resp.MemoryEnabled)
	assert.False(t, resp.HasAPIKey)

	f.doJSON(t, http.MethodPut, "/api/v1/users/user-1/settings", map[string]any{
		"llmApiKey": "",
	}, http.StatusOK, &resp)
	assert.False(t, resp.HasAPIKey)
}
