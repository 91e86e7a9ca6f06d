package services

import (
	"context"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/channel"
	"github.com/google/uuid"
)

// ChannelService manages conversation surfaces and context rotation.
type ChannelService struct {
	client *ent.Client
}

// NewChannelService creates a new ChannelService
func NewChannelService(client *ent.Client) *ChannelService {
	return &ChannelService{client: client}
}

// GetChannel retrieves a channel by ID
func (s *ChannelService) GetChannel(ctx context.Context, channelID string) (*ent.Channel, error) {
	ch, err := s.client.Channel.Get(ctx, channelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	return ch, nil
}

// GetOrCreate finds the user's channel for a provider, creating it on
// first contact. For Discord the provider user id is stored as the
// delivery target.
func (s *ChannelService) GetOrCreate(httpCtx context.Context, userID, provider, discordUserID string) (*ent.Channel, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	prov := channel.Provider(provider)
	if prov != channel.ProviderWeb && prov != channel.ProviderDiscord {
		return nil, NewValidationError("provider", fmt.Sprintf("unknown provider %q", provider))
	}
	if prov == channel.ProviderDiscord && discordUserID == "" {
		return nil, NewValidationError("discord_user_id", "required for discord channels")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.Channel.Query().
		Where(
			channel.UserIDEQ(userID),
			channel.ProviderEQ(prov),
		).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query channel: %w", err)
	}

	builder := s.client.Channel.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetProvider(prov)
	if discordUserID != "" {
		builder.SetDiscordUserID(discordUserID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the row exists now.
			return s.client.Channel.Query().
				Where(channel.UserIDEQ(userID), channel.ProviderEQ(prov)).
				First(ctx)
		}
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	return created, nil
}

// TouchContext counts one inbound turn against the channel's active
// context under a row lock. When the turn counter passes maxTurns the
// context rotates: a fresh context id becomes active and the closed one
// is returned so the caller can enqueue a memory-write for it.
func (s *ChannelService) TouchContext(httpCtx context.Context, channelID string, maxTurns int) (contextID string, closedContextID string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ch, err := tx.Channel.Query().
		Where(channel.IDEQ(channelID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", "", ErrNotFound
		}
		return "", "", fmt.Errorf("failed to lock channel: %w", err)
	}

	turns := ch.ContextTurns + 1
	active := ""
	if ch.ActiveContextID != nil {
		active = *ch.ActiveContextID
	}

	if active == "" {
		active = uuid.New().String()
		turns = 1
	} else if maxTurns > 0 && turns > maxTurns {
		closedContextID = active
		active = uuid.New().String()
		turns = 1
	}

	err = tx.Channel.UpdateOneID(channelID).
		SetActiveContextID(active).
		SetContextTurns(turns).
		Exec(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to update channel context: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", "", fmt.Errorf("failed to commit context touch: %w", err)
	}

	return active, closedContextID, nil
}

// CloseContext force-rotates the channel's active context and returns the
// closed context id, or empty when there was none.
func (s *ChannelService) CloseContext(httpCtx context.Context, channelID string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ch, err := tx.Channel.Query().
		Where(channel.IDEQ(channelID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to lock channel: %w", err)
	}

	if ch.ActiveContextID == nil || *ch.ActiveContextID == "" {
		return "", tx.Commit()
	}
	closed := *ch.ActiveContextID

	err = tx.Channel.UpdateOneID(channelID).
		ClearActiveContextID().
		SetContextTurns(0).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to close context: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit context close: %w", err)
	}
	return closed, nil
}
