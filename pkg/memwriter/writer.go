// Package memwriter distils closed or in-flight conversation segments
// into durable per-user memories. It runs on the memory-writes queue,
// calls the LLM with the user's own decrypted API key, and applies the
// returned add/update/delete/touch operations through the memory service.
package memwriter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/message"
	"github.com/conductorhq/conductor/pkg/crypto"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/prompt"
	"github.com/conductorhq/conductor/pkg/secrets"
	"github.com/conductorhq/conductor/pkg/services"
)

// rawResponseLimit bounds the model output echoed back in the result.
const rawResponseLimit = 2000

// writerMaxTokens bounds one distillation response. Operations are
// short; anything past this is the model rambling.
const writerMaxTokens = 1500

// Writer distils conversation segments into memory operations and
// applies them. Safe for concurrent use.
type Writer struct {
	settings *services.SettingsService
	memories *services.MemoryService
	messages *services.MessageService
	llm      llm.Client
	cipher   *crypto.Cipher
	detector *secrets.Detector

	// maxMessages is the segment window when the job does not carry an
	// explicit message count.
	maxMessages int
}

// NewWriter creates a memory writer backed by the given services.
func NewWriter(
	settings *services.SettingsService,
	memories *services.MemoryService,
	messages *services.MessageService,
	llmClient llm.Client,
	cipher *crypto.Cipher,
	maxMessages int,
) *Writer {
	if maxMessages <= 0 {
		maxMessages = 25
	}
	return &Writer{
		settings:    settings,
		memories:    memories,
		messages:    messages,
		llm:         llmClient,
		cipher:      cipher,
		detector:    secrets.NewDetector(),
		maxMessages: maxMessages,
	}
}

// Write runs one distillation pass over a conversation segment. Mode is
// "close" for a rotated context or "periodic" for a mid-context window;
// segmentMessages overrides the default window when positive.
//
// Skips (memory disabled, missing or unusable key, empty segment) are
// structured results, not errors. An error return means the pass should
// be retried; every store write is idempotent by (user, module, key).
func (w *Writer) Write(ctx context.Context, contextID, userID, mode string, segmentMessages int) (*models.MemoryWriteResult, error) {
	if contextID == "" || userID == "" {
		return nil, services.NewValidationError("context_id", "contextId and userId are required")
	}

	apiKey, meta, skip, err := w.userKey(ctx, userID)
	if err != nil {
		return nil, err
	}
	if skip != "" {
		slog.Info("Memory write skipped",
			"context_id", contextID,
			"user_id", userID,
			"reason", skip)
		return &models.MemoryWriteResult{Skipped: true, SkipReason: skip}, nil
	}

	window := segmentMessages
	if window <= 0 {
		window = w.maxMessages
	}
	msgs, err := w.messages.ListByContext(ctx, contextID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load segment: %w", err)
	}
	if len(msgs) == 0 {
		return &models.MemoryWriteResult{Skipped: true, SkipReason: models.MemorySkipNoMessages}, nil
	}

	current, err := w.formatMemories(ctx, userID)
	if err != nil {
		return nil, err
	}

	system, user := prompt.MemoryWriter(current, formatSegment(msgs))
	model, _ := meta["model"].(string)
	resp, err := w.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens: writerMaxTokens,
		JSONOnly:  true,
		APIKey:    apiKey,
		Model:     model,
	})
	if err != nil {
		return nil, fmt.Errorf("memory writer completion failed: %w", err)
	}

	result := &models.MemoryWriteResult{RawResponse: truncate(resp.Content, rawResponseLimit)}

	ops, err := decodeOps(resp.Content)
	if err != nil {
		// Retrying would replay the same prompt at more cost; record
		// the raw output and move on.
		slog.Warn("Memory writer returned unparseable operations",
			"context_id", contextID,
			"user_id", userID,
			"error", err)
		return result, nil
	}

	if err := w.applyOps(ctx, contextID, userID, ops, result); err != nil {
		return nil, err
	}

	if result.Applied > 0 {
		archived, err := w.memories.DedupeAndEnforceCaps(ctx, userID)
		if err != nil {
			slog.Warn("Memory cap enforcement failed", "user_id", userID, "error", err)
		} else {
			result.Archived = archived
		}
	}

	slog.Info("Memory write finished",
		"context_id", contextID,
		"user_id", userID,
		"mode", mode,
		"ops", len(ops),
		"applied", result.Applied,
		"skipped_ops", result.SkippedOps,
		"archived", result.Archived)
	return result, nil
}

// userKey loads the user's settings and decrypts their LLM API key.
// A non-empty skip reason means the pass must not run for this user.
func (w *Writer) userKey(ctx context.Context, userID string) (apiKey string, meta map[string]interface{}, skip string, err error) {
	setting, err := w.settings.Get(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return "", nil, models.MemorySkipDisabled, nil
		}
		return "", nil, "", fmt.Errorf("failed to load user settings: %w", err)
	}
	if !setting.MemoryEnabled {
		return "", nil, models.MemorySkipDisabled, nil
	}
	if setting.LlmAPIKeyEncrypted == nil || *setting.LlmAPIKeyEncrypted == "" {
		return "", nil, models.MemorySkipMissingAPIKey, nil
	}
	if provider, _ := setting.LlmKeyMeta["provider"].(string); provider == "" {
		return "", nil, models.MemorySkipInvalidAPIKey, nil
	}

	apiKey, err = w.cipher.Open(*setting.LlmAPIKeyEncrypted)
	if err != nil {
		// Wrong encryption key or corrupted ciphertext; retrying cannot fix it.
		slog.Warn("Failed to decrypt user LLM key", "user_id", userID, "error", err)
		return "", nil, models.MemorySkipInvalidAPIKey, nil
	}
	return apiKey, setting.LlmKeyMeta, "", nil
}

// applyOps validates and applies each operation, counting secret
// refusals and malformed entries as skipped rather than failing the
// batch. Store errors other than validation abort so the job retries.
func (w *Writer) applyOps(ctx context.Context, contextID, userID string, ops []models.MemoryOp, result *models.MemoryWriteResult) error {
	for _, op := range ops {
		if reason := rejectOp(op); reason != "" {
			slog.Debug("Memory op rejected",
				"user_id", userID,
				"op", op.Op,
				"module", op.Module,
				"key", op.Key,
				"reason", reason)
			result.SkippedOps++
			continue
		}

		if op.Op == models.MemoryOpAdd || op.Op == models.MemoryOpUpdate {
			if pattern, found := w.detector.Detect(op.Value); found {
				slog.Warn("Memory op refused, value matches credential pattern",
					"user_id", userID,
					"module", op.Module,
					"key", op.Key,
					"pattern", pattern)
				result.SkippedOps++
				continue
			}
		}

		switch op.Op {
		case models.MemoryOpAdd, models.MemoryOpUpdate:
			level := 5
			if op.Level != nil {
				level = *op.Level
			}
			confidence := 0.6
			if op.Confidence != nil {
				confidence = *op.Confidence
			}
			_, err := w.memories.Upsert(ctx, services.UpsertParams{
				UserID:     userID,
				Module:     op.Module,
				Key:        op.Key,
				Value:      op.Value,
				Level:      level,
				Confidence: confidence,
				Pin:        op.Pin,
				ContextID:  contextID,
			})
			if err != nil {
				if services.IsValidationError(err) || isAlreadyExists(err) {
					result.SkippedOps++
					continue
				}
				return fmt.Errorf("failed to upsert memory %s/%s: %w", op.Module, op.Key, err)
			}
			result.Applied++

		case models.MemoryOpTouch:
			touched, err := w.memories.Touch(ctx, userID, op.Module, op.Key)
			if err != nil {
				return fmt.Errorf("failed to touch memory %s/%s: %w", op.Module, op.Key, err)
			}
			if touched {
				result.Applied++
			} else {
				result.SkippedOps++
			}

		case models.MemoryOpDelete:
			archived, err := w.memories.Archive(ctx, userID, op.Module, op.Key)
			if err != nil {
				return fmt.Errorf("failed to archive memory %s/%s: %w", op.Module, op.Key, err)
			}
			if archived {
				result.Applied++
			} else {
				result.SkippedOps++
			}
		}
	}
	return nil
}

// formatMemories renders the user's active memories grouped by level for
// the distillation prompt. Values were capped on write; the cap is
// re-applied here so a raised cap never inflates old prompt payloads.
func (w *Writer) formatMemories(ctx context.Context, userID string) (string, error) {
	items, err := w.memories.ListActive(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to list memories: %w", err)
	}
	if len(items) == 0 {
		return "", nil
	}

	byLevel := make(map[int][]*ent.MemoryItem)
	for _, item := range items {
		byLevel[item.Level] = append(byLevel[item.Level], item)
	}
	levels := make([]int, 0, len(byLevel))
	for level := range byLevel {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	var b strings.Builder
	for _, level := range levels {
		fmt.Fprintf(&b, "Level %d:\n", level)
		for _, item := range byLevel[level] {
			value := item.Value
			if levelCap, ok := models.MemoryLevelCaps[level]; ok {
				value = truncate(value, levelCap.MaxChars)
			}
			fmt.Fprintf(&b, "- [%s/%s] %s", item.Module, item.Key, value)
			if item.Pinned {
				b.WriteString(" (pinned)")
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// formatSegment renders messages oldest-first as role-prefixed lines.
func formatSegment(msgs []*ent.Message) string {
	var b strings.Builder
	for _, m := range msgs {
		role := "USER"
		if m.Direction == message.DirectionOutbound {
			role = "ASSISTANT"
		}
		fmt.Fprintf(&b, "%s: %s\n", role, strings.TrimSpace(m.Content))
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

func isNotFound(err error) bool {
	return errors.Is(err, services.ErrNotFound)
}

func isAlreadyExists(err error) bool {
	return errors.Is(err, services.ErrAlreadyExists)
}
