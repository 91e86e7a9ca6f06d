package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTriggerRegistersCron(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	var resp TriggerResponse
	f.doJSON(t, http.MethodPost, "/api/v1/triggers", map[string]any{
		"agentId": "conductor",
		"cron":    "*/5 * * * *",
	}, http.StatusCreated, &resp)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "conductor", resp.AgentID)
	assert.Equal(t, "cron", resp.Type)
	assert.Equal(t, "*/5 * * * *", resp.Cron)
	assert.Empty(t, resp.RunID)
	assert.True(t, resp.Enabled)
	assert.True(t, resp.NextFireAt.After(time.Now()), "next fire must be in the future")
	assert.Nil(t, resp.LastFiredAt)
}

func TestCreateTriggerBindingValidation(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	f.wantError(t, http.MethodPost, "/api/v1/triggers",
		map[string]any{"cron": "*/5 * * * *"},
		http.StatusBadRequest, "AgentID")

	f.wantError(t, http.MethodPost, "/api/v1/triggers",
		map[string]any{"agentId": "conductor"},
		http.StatusBadRequest, "Cron")
}

func TestListTriggersByAgent(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))
	ctx := context.Background()

	_, err := f.server.triggers.CreateCron(ctx, "conductor", "0 6 * * *")
	require.NoError(t, err)
	_, err = f.server.triggers.CreateCron(ctx, "conductor", "30 6 * * *")
	require.NoError(t, err)
	_, err = f.server.triggers.CreateCron(ctx, "other-agent", "0 12 * * *")
	require.NoError(t, err)

	var resp []*TriggerResponse
	f.doJSON(t, http.MethodGet, "/api/v1/triggers?agent_id=conductor", nil, http.StatusOK, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "30 6 * * *", resp[0].Cron)
	assert.Equal(t, "0 6 * * *", resp[1].Cron)

	f.wantError(t, http.MethodGet, "/api/v1/triggers", nil,
		http.StatusBadRequest, "agent_id query parameter is required")

	var empty []*TriggerResponse
	f.doJSON(t, http.MethodGet, "/api/v1/triggers?agent_id=ghost", nil, http.StatusOK, &empty)
	assert.Empty(t, empty)
}
