package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql so that test schemas created via ent behave like
// migrated production schemas.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// (user_id, module, key) unique among non-archived memory items.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS memoryitem_user_module_key_active
		ON memory_items (user_id, module, key)
		WHERE NOT archived`)
	if err != nil {
		return fmt.Errorf("failed to create active memory key index: %w", err)
	}

	// At most one live job per (queue, dedupe_key).
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS queuejob_queue_dedupe_key_live
		ON queue_jobs (queue, dedupe_key)
		WHERE dedupe_key IS NOT NULL AND status IN ('pending', 'running')`)
	if err != nil {
		return fmt.Errorf("failed to create live job dedupe index: %w", err)
	}

	return nil
}

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These back the memory.search builtin tool and conversation search.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for memory value full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_memory_items_value_gin
		ON memory_items USING gin(to_tsvector('english', value))`)
	if err != nil {
		return fmt.Errorf("failed to create memory value GIN index: %w", err)
	}

	// GIN index for message content full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_messages_content_gin
		ON messages USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create message content GIN index: %w", err)
	}

	return nil
}
