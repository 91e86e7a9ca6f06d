package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/memoryitem"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/google/uuid"
)

// MemoryService manages durable user memories. Mutations happen only
// through the memory writer; the engine and tools read.
type MemoryService struct {
	client *ent.Client
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(client *ent.Client) *MemoryService {
	return &MemoryService{client: client}
}

// ListActive returns all non-archived memories for a user, ordered by
// level then recency.
func (s *MemoryService) ListActive(ctx context.Context, userID string) ([]*ent.MemoryItem, error) {
	items, err := s.client.MemoryItem.Query().
		Where(
			memoryitem.UserIDEQ(userID),
			memoryitem.Archived(false),
		).
		Order(ent.Asc(memoryitem.FieldLevel), ent.Desc(memoryitem.FieldLastSeenAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	return items, nil
}

// TopPerLevel returns the most recent n non-archived memories of each
// level. The engine includes these in the LLM payload.
func (s *MemoryService) TopPerLevel(ctx context.Context, userID string, n int) (map[int][]*ent.MemoryItem, error) {
	if n <= 0 {
		n = 5
	}
	items, err := s.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	byLevel := make(map[int][]*ent.MemoryItem)
	for _, item := range items {
		if len(byLevel[item.Level]) < n {
			byLevel[item.Level] = append(byLevel[item.Level], item)
		}
	}
	return byLevel, nil
}

// UpsertParams describes one memory write.
type UpsertParams struct {
	UserID     string
	Module     string
	Key        string
	Value      string
	Level      int
	Confidence float64
	Pin        bool
	ContextID  string
}

// Upsert writes a memory by (userId, module, key), updating the active
// item when one exists. Values are truncated to the level's cap.
func (s *MemoryService) Upsert(httpCtx context.Context, params UpsertParams) (*ent.MemoryItem, error) {
	if params.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if !models.MemoryModules[params.Module] {
		return nil, NewValidationError("module", fmt.Sprintf("unknown module %q", params.Module))
	}
	if params.Key == "" {
		return nil, NewValidationError("key", "required")
	}
	if params.Value == "" {
		return nil, NewValidationError("value", "required")
	}
	levelCap, ok := models.MemoryLevelCaps[params.Level]
	if !ok {
		return nil, NewValidationError("level", fmt.Sprintf("level must be 0..5, got %d", params.Level))
	}

	value := truncate(params.Value, levelCap.MaxChars)
	confidence := params.Confidence
	if confidence <= 0 || confidence > 1 {
		confidence = 0.6
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.MemoryItem.Query().
		Where(
			memoryitem.UserIDEQ(params.UserID),
			memoryitem.ModuleEQ(memoryitem.Module(params.Module)),
			memoryitem.KeyEQ(params.Key),
			memoryitem.Archived(false),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query memory: %w", err)
	}

	if existing != nil {
		update := s.client.MemoryItem.UpdateOneID(existing.ID).
			SetValue(value).
			SetLevel(params.Level).
			SetConfidence(confidence).
			SetLastSeenAt(time.Now())
		if params.Pin {
			update.SetPinned(true)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update memory: %w", err)
		}
		return updated, nil
	}

	builder := s.client.MemoryItem.Create().
		SetID(uuid.New().String()).
		SetUserID(params.UserID).
		SetModule(memoryitem.Module(params.Module)).
		SetKey(params.Key).
		SetValue(value).
		SetLevel(params.Level).
		SetConfidence(confidence).
		SetPinned(params.Pin)
	if params.ContextID != "" {
		builder.SetContextID(params.ContextID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost an upsert race; the active item exists now.
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}
	return created, nil
}

// Touch refreshes lastSeenAt and unarchives the newest item with the
// given key. Returns false when no such item exists.
func (s *MemoryService) Touch(httpCtx context.Context, userID, module, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	item, err := s.client.MemoryItem.Query().
		Where(
			memoryitem.UserIDEQ(userID),
			memoryitem.ModuleEQ(memoryitem.Module(module)),
			memoryitem.KeyEQ(key),
		).
		Order(ent.Desc(memoryitem.FieldLastSeenAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query memory: %w", err)
	}

	err = s.client.MemoryItem.UpdateOneID(item.ID).
		SetLastSeenAt(time.Now()).
		SetArchived(false).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Unarchiving would collide with a live item under the same key;
			// refresh that one instead.
			return false, nil
		}
		return false, fmt.Errorf("failed to touch memory: %w", err)
	}
	return true, nil
}

// Archive soft-deletes the active item with the given key. Pinned items
// are not archived. Returns false when nothing matched.
func (s *MemoryService) Archive(httpCtx context.Context, userID, module, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.MemoryItem.Update().
		Where(
			memoryitem.UserIDEQ(userID),
			memoryitem.ModuleEQ(memoryitem.Module(module)),
			memoryitem.KeyEQ(key),
			memoryitem.Archived(false),
			memoryitem.Pinned(false),
		).
		SetArchived(true).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to archive memory: %w", err)
	}
	return count > 0, nil
}

// DedupeAndEnforceCaps archives duplicate and over-cap items for a user:
// duplicates by (module, key) and by normalised value keep the most
// recent lastSeenAt; then each level archives its oldest non-pinned items
// until under the level cap. Pinned items are never archived. Returns the
// number of items archived.
func (s *MemoryService) DedupeAndEnforceCaps(httpCtx context.Context, userID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := s.client.MemoryItem.Query().
		Where(
			memoryitem.UserIDEQ(userID),
			memoryitem.Archived(false),
		).
		Order(ent.Desc(memoryitem.FieldLastSeenAt)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load memories: %w", err)
	}

	toArchive := map[string]bool{}

	// Duplicates by (module, key): items are newest-first, so the first
	// occurrence wins.
	seenKey := map[string]bool{}
	for _, item := range items {
		k := string(item.Module) + "\x00" + item.Key
		if seenKey[k] {
			if !item.Pinned {
				toArchive[item.ID] = true
			}
			continue
		}
		seenKey[k] = true
	}

	// Duplicates by normalised value.
	seenValue := map[string]bool{}
	for _, item := range items {
		if toArchive[item.ID] {
			continue
		}
		v := normalizeValue(item.Value)
		if v == "" {
			continue
		}
		if seenValue[v] {
			if !item.Pinned {
				toArchive[item.ID] = true
			}
			continue
		}
		seenValue[v] = true
	}

	// Level caps: archive oldest-by-lastSeenAt non-pinned items until
	// each level fits.
	byLevel := map[int][]*ent.MemoryItem{}
	for _, item := range items {
		if toArchive[item.ID] {
			continue
		}
		byLevel[item.Level] = append(byLevel[item.Level], item)
	}
	for level, levelItems := range byLevel {
		levelCap, ok := models.MemoryLevelCaps[level]
		if !ok || len(levelItems) <= levelCap.MaxItems {
			continue
		}
		// oldest first
		sort.Slice(levelItems, func(i, j int) bool {
			return levelItems[i].LastSeenAt.Before(levelItems[j].LastSeenAt)
		})
		excess := len(levelItems) - levelCap.MaxItems
		for _, item := range levelItems {
			if excess == 0 {
				break
			}
			if item.Pinned {
				continue
			}
			toArchive[item.ID] = true
			excess--
		}
	}

	if len(toArchive) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(toArchive))
	for id := range toArchive {
		ids = append(ids, id)
	}

	count, err := s.client.MemoryItem.Update().
		Where(memoryitem.IDIn(ids...)).
		SetArchived(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to archive memories: %w", err)
	}
	return count, nil
}

// Search performs full-text search over the user's active memories.
func (s *MemoryService) Search(ctx context.Context, userID, query string, limit int) ([]*ent.MemoryItem, error) {
	if limit <= 0 {
		limit = 10
	}

	// The raw predicate goes first so its $1 lines up with the first
	// bound argument.
	items, err := s.client.MemoryItem.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP("to_tsvector('english', value) @@ plainto_tsquery($1)", query))
		}).
		Where(
			memoryitem.UserIDEQ(userID),
			memoryitem.Archived(false),
		).
		Limit(limit).
		Order(ent.Asc(memoryitem.FieldLevel), ent.Desc(memoryitem.FieldLastSeenAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search memories: %w", err)
	}
	return items, nil
}

// ContainsValue reports whether any memory row (archived included) holds
// the given substring. Used to verify secret refusal.
func (s *MemoryService) ContainsValue(ctx context.Context, userID, substring string) (bool, error) {
	count, err := s.client.MemoryItem.Query().
		Where(
			memoryitem.UserIDEQ(userID),
			memoryitem.ValueContains(substring),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to scan memory values: %w", err)
	}
	return count > 0, nil
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// normalizeValue lowercases and collapses runs of non-alphanumerics to a
// single space so near-identical values dedupe together.
func normalizeValue(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
