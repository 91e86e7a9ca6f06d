package database

import (
	stdsql "database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/pkg/database"
)

// SharedTestDB is one migrated schema that several app replicas connect
// to at once, each through its own pool. Multi-replica suites use it to
// exercise FOR UPDATE SKIP LOCKED claim arbitration over one set of rows.
type SharedTestDB struct {
	dsn string
}

// NewSharedTestDB creates the schema and migrates it once through a
// throwaway client; replicas connect afterwards via NewClient. The
// schema drop registered by createSchema runs after all replica
// cleanups (LIFO), so no pool outlives it.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()

	schema := createSchema(t)
	dsn := withSearchPath(serverConnString(t), schema)

	db, err := stdsql.Open("pgx", dsn)
	require.NoError(t, err)
	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	migrateSchema(t, entClient, drv)
	_ = entClient.Close()
	_ = db.Close()

	return &SharedTestDB{dsn: dsn}
}

// NewClient opens an independent *database.Client on the shared schema,
// so one replica can be shut down without touching its peers' pools.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	db := openPool(t, s.dsn)
	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { _ = entClient.Close() })
	return database.NewClientFromEnt(entClient, db)
}
