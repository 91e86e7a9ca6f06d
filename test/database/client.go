// Package database provides per-test PostgreSQL databases. Every test
// gets its own schema on a shared server: an external service container
// in CI, or a single testcontainer started on first use in local dev.
package database

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/pkg/database"
)

var (
	serverOnce sync.Once
	serverConn string
	serverErr  error
)

// NewTestClient returns a *database.Client on a freshly created schema.
// The schema carries the full ent model plus the raw-SQL indexes, and is
// dropped when the test finishes.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	schema := createSchema(t)
	db := openPool(t, withSearchPath(serverConnString(t), schema))

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	migrateSchema(t, entClient, drv)

	t.Cleanup(func() { _ = entClient.Close() })
	return database.NewClientFromEnt(entClient, db)
}

// serverConnString returns the shared server's base connection string,
// starting the local container the first time a test asks for it. The
// container lives for the whole test binary; testcontainers reaps it.
func serverConnString(t *testing.T) string {
	if ci := os.Getenv("CI_DATABASE_URL"); ci != "" {
		return ci
	}

	serverOnce.Do(func() {
		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			serverErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}
		serverConn, serverErr = container.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, serverErr, "shared postgres container unavailable")
	return serverConn
}

// createSchema creates a uniquely named schema and registers its drop.
// The drop opens its own short-lived connection because the test's pool
// is already closed when LIFO cleanup reaches it.
func createSchema(t *testing.T) string {
	connStr := serverConnString(t)
	schema := uniqueSchemaName(t)

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, execErr := db.ExecContext(context.Background(), "CREATE SCHEMA "+schema)
	_ = db.Close()
	require.NoError(t, execErr)

	t.Cleanup(func() {
		drop, err := stdsql.Open("pgx", connStr)
		if err != nil {
			t.Logf("could not connect to drop schema %s: %v", schema, err)
			return
		}
		defer func() { _ = drop.Close() }()
		if _, err := drop.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
			t.Logf("failed to drop schema %s: %v", schema, err)
		}
	})

	return schema
}

// openPool opens a pool whose connections all resolve into the given
// DSN's search_path, closed via t.Cleanup.
func openPool(t *testing.T, dsn string) *stdsql.DB {
	db, err := stdsql.Open("pgx", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// migrateSchema applies the ent model plus the partial unique and GIN
// indexes the schema DSL cannot express, so test schemas behave like
// migrated production schemas.
func migrateSchema(t *testing.T, entClient *ent.Client, drv *entsql.Driver) {
	ctx := context.Background()
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
}

// uniqueSchemaName derives a postgres-safe schema name from the test
// name plus a random suffix, kept under the 63 byte identifier limit.
func uniqueSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	_, err := rand.Read(suffix)
	require.NoError(t, err)
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// withSearchPath pins every pooled connection to the schema.
func withSearchPath(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schema
}
