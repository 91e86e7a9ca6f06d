package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/channel"
)

func TestGetOrCreateChannelIdentity(t *testing.T) {
	channels := NewChannelService(newTestClient(t))
	ctx := context.Background()

	created, err := channels.GetOrCreate(ctx, "user-1", "web", "")
	require.NoError(t, err)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, channel.ProviderWeb, created.Provider)
	assert.Nil(t, created.DiscordUserID)
	assert.Nil(t, created.ActiveContextID)
	assert.Zero(t, created.ContextTurns)

	// Same user and provider resolve to the same channel forever.
	again, err := channels.GetOrCreate(ctx, "user-1", "web", "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	// A different provider is a different surface.
	discord, err := channels.GetOrCreate(ctx, "user-1", "discord", "discord-snowflake-1")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, discord.ID)
	assert.Equal(t, channel.ProviderDiscord, discord.Provider)
	require.NotNil(t, discord.DiscordUserID)
	assert.Equal(t, "discord-snowflake-1", *discord.DiscordUserID)

	got, err := channels.GetChannel(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = channels.GetChannel(ctx, "no-such-channel")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrCreateChannelValidation(t *testing.T) {
	channels := NewChannelService(newTestClient(t))
	ctx := context.Background()

	_, err := channels.GetOrCreate(ctx, "", "web", "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "user_id", ve.Field)

	_, err = channels.GetOrCreate(ctx, "user-1", "carrier-pigeon", "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "provider", ve.Field)

	_, err = channels.GetOrCreate(ctx, "user-1", "discord", "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "discord_user_id", ve.Field)
}

func TestTouchContextRotation(t *testing.T) {
	channels := NewChannelService(newTestClient(t))
	ctx := context.Background()

	ch, err := channels.GetOrCreate(ctx, "user-1", "web", "")
	require.NoError(t, err)

	// First inbound turn opens a fresh context.
	first, closed, err := channels.TouchContext(ctx, ch.ID, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, first)
	assert.Empty(t, closed)

	// Second turn stays in the same context.
	second, closed, err := channels.TouchContext(ctx, ch.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Empty(t, closed)

	// Third turn exceeds maxTurns: the context rotates and the closed id
	// comes back so a memory write can distill it.
	third, closed, err := channels.TouchContext(ctx, ch.ID, 2)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
	assert.Equal(t, first, closed)

	got, err := channels.GetChannel(ctx, ch.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ActiveContextID)
	assert.Equal(t, third, *got.ActiveContextID)
	assert.Equal(t, 1, got.ContextTurns, "the rotated context starts at turn one")

	_, _, err = channels.TouchContext(ctx, "no-such-channel", 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTouchContextUnlimitedTurns(t *testing.T) {
	channels := NewChannelService(newTestClient(t))
	ctx := context.Background()

	ch, err := channels.GetOrCreate(ctx, "user-1", "web", "")
	require.NoError(t, err)

	// maxTurns 0 disables rotation entirely.
	first, _, err := channels.TouchContext(ctx, ch.ID, 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		active, closed, err := channels.TouchContext(ctx, ch.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, first, active)
		assert.Empty(t, closed)
	}

	got, err := channels.GetChannel(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, got.ContextTurns)
}

func TestCloseContextForcesRotation(t *testing.T) {
	channels := NewChannelService(newTestClient(t))
	ctx := context.Background()

	ch, err := channels.GetOrCreate(ctx, "user-1", "web", "")
	require.NoError(t, err)

	// Closing an idle channel is a quiet no-op.
	closed, err := channels.CloseContext(ctx, ch.ID)
	require.NoError(t, err)
	assert.Empty(t, closed)

	active, _, err := channels.TouchContext(ctx, ch.ID, 10)
	require.NoError(t, err)

	closed, err = channels.CloseContext(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, active, closed)

	got, err := channels.GetChannel(ctx, ch.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ActiveContextID)
	assert.Zero(t, got.ContextTurns)

	// The next turn opens a brand-new context.
	next, closedAgain, err := channels.TouchContext(ctx, ch.ID, 10)
	require.NoError(t, err)
	assert.NotEqual(t, active, next)
	assert.Empty(t, closedAgain)

	_, err = channels.CloseContext(ctx, "no-such-channel")
	assert.ErrorIs(t, err, ErrNotFound)
}
