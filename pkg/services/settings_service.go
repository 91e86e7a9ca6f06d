package services

import (
	"context"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/usersetting"
	"github.com/google/uuid"
)

// SettingsService manages per-user settings: memory opt-out and the
// encrypted LLM API key. Encryption happens in the caller; this service
// only stores ciphertext.
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// Get returns the user's settings, or ErrNotFound when none exist.
func (s *SettingsService) Get(ctx context.Context, userID string) (*ent.UserSetting, error) {
	setting, err := s.client.UserSetting.Query().
		Where(usersetting.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return setting, nil
}

// UpsertSettingsParams describes a settings write. Nil fields are left
// unchanged on update.
type UpsertSettingsParams struct {
	UserID          string
	MemoryEnabled   *bool
	EncryptedAPIKey *string
	KeyMeta         map[string]any
	Timezone        *string
}

// Upsert creates or updates the user's settings row.
func (s *SettingsService) Upsert(httpCtx context.Context, params UpsertSettingsParams) (*ent.UserSetting, error) {
	if params.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.UserSetting.Query().
		Where(usersetting.UserIDEQ(params.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	if existing != nil {
		update := s.client.UserSetting.UpdateOneID(existing.ID)
		if params.MemoryEnabled != nil {
			update.SetMemoryEnabled(*params.MemoryEnabled)
		}
		if params.EncryptedAPIKey != nil {
			if *params.EncryptedAPIKey == "" {
				update.ClearLlmAPIKeyEncrypted()
			} else {
				update.SetLlmAPIKeyEncrypted(*params.EncryptedAPIKey)
			}
		}
		if params.KeyMeta != nil {
			update.SetLlmKeyMeta(params.KeyMeta)
		}
		if params.Timezone != nil {
			update.SetTimezone(*params.Timezone)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update settings: %w", err)
		}
		return updated, nil
	}

	builder := s.client.UserSetting.Create().
		SetID(uuid.New().String()).
		SetUserID(params.UserID)
	if params.MemoryEnabled != nil {
		builder.SetMemoryEnabled(*params.MemoryEnabled)
	}
	if params.EncryptedAPIKey != nil && *params.EncryptedAPIKey != "" {
		builder.SetLlmAPIKeyEncrypted(*params.EncryptedAPIKey)
	}
	if params.KeyMeta != nil {
		builder.SetLlmKeyMeta(params.KeyMeta)
	}
	if params.Timezone != nil {
		builder.SetTimezone(*params.Timezone)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create settings: %w", err)
	}
	return created, nil
}
