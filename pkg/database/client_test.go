package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	// Check if we're in CI with an external database
	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		// CI mode: use external PostgreSQL service container
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		// Local dev mode: use testcontainers
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		// Get connection string from container
		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	// Open database connection using pgx driver
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	// Configure connection pool for tests
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Create Ent driver from existing database connection
	// Use dialect.Postgres for Ent compatibility while pgx handles the actual connection
	drv := entsql.OpenDB(dialect.Postgres, db)

	// Create Ent client
	entClient := ent.NewClient(ent.Driver(drv))

	// Run migrations (auto-migration for tests)
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	// Partial unique and GIN indexes are raw SQL on top of the ent schema
	err = CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)
	err = CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	// Wrap in our client type
	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	pool, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Greater(t, pool.MaxOpen, 0)
	assert.False(t, pool.Saturated())
}

func TestMemoryFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	item1, err := client.MemoryItem.Create().
		SetID(uuid.NewString()).
		SetUserID("user-1").
		SetLevel(2).
		SetModule("projects").
		SetKey("current_project").
		SetValue("Rebuilding the production deployment pipeline for the analytics cluster").
		Save(ctx)
	require.NoError(t, err)

	item2, err := client.MemoryItem.Create().
		SetID(uuid.NewString()).
		SetUserID("user-1").
		SetLevel(1).
		SetModule("preferences").
		SetKey("reply_style").
		SetValue("Prefers short answers with code samples").
		Save(ctx)
	require.NoError(t, err)

	// Full-text search against the GIN index using raw SQL
	rows, err := client.DB().QueryContext(ctx,
		`SELECT memory_id FROM memory_items
		WHERE to_tsvector('english', value) @@ to_tsquery('english', $1)`,
		"production & pipeline",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		err := rows.Scan(&id)
		require.NoError(t, err)
		results = append(results, id)
	}

	// Should only match item1
	assert.Len(t, results, 1)
	assert.Equal(t, item1.ID, results[0])

	// Search for "code" - should match item2
	rows2, err := client.DB().QueryContext(ctx,
		`SELECT memory_id FROM memory_items
		WHERE to_tsvector('english', value) @@ to_tsquery('english', $1)`,
		"code",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results2 := []string{}
	for rows2.Next() {
		var id string
		err := rows2.Scan(&id)
		require.NoError(t, err)
		results2 = append(results2, id)
	}

	assert.Len(t, results2, 1)
	assert.Equal(t, item2.ID, results2[0])
}

func TestActiveMemoryKeyUniqueness(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.MemoryItem.Create().
		SetID(uuid.NewString()).
		SetUserID("user-2").
		SetLevel(0).
		SetModule("identity").
		SetKey("name").
		SetValue("Sam").
		Save(ctx)
	require.NoError(t, err)

	// Second non-archived item with the same (user_id, module, key) must fail
	_, err = client.MemoryItem.Create().
		SetID(uuid.NewString()).
		SetUserID("user-2").
		SetLevel(0).
		SetModule("identity").
		SetKey("name").
		SetValue("Samuel").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err), "expected constraint error, got: %v", err)

	// Archived duplicates are allowed
	_, err = client.MemoryItem.Create().
		SetID(uuid.NewString()).
		SetUserID("user-2").
		SetLevel(0).
		SetModule("identity").
		SetKey("name").
		SetValue("Samuel").
		SetArchived(true).
		Save(ctx)
	require.NoError(t, err)
}

func TestLiveJobDedupe(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	payload := json.RawMessage(`{"type":"run","runId":"r-1"}`)

	_, err := client.QueueJob.Create().
		SetID(uuid.NewString()).
		SetQueue("runs").
		SetDedupeKey("run:r-1").
		SetPayload(payload).
		Save(ctx)
	require.NoError(t, err)

	// A second live job with the same (queue, dedupe_key) must fail
	_, err = client.QueueJob.Create().
		SetID(uuid.NewString()).
		SetQueue("runs").
		SetDedupeKey("run:r-1").
		SetPayload(payload).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err), "expected constraint error, got: %v", err)

	// Same key in a different queue is fine
	_, err = client.QueueJob.Create().
		SetID(uuid.NewString()).
		SetQueue("wake").
		SetDedupeKey("run:r-1").
		SetPayload(payload).
		Save(ctx)
	require.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)
		os.Setenv("DB_PASSWORD", "test")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "conductor", cfg.User)
		assert.Equal(t, "conductor", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_PASSWORD", "secret")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)
		os.Setenv("DB_PORT", "invalid")
		os.Setenv("DB_PASSWORD", "test")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}
