package runstore

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/rollcast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateRuns_NoneBackend(t *testing.T) {
	err := MigrateRuns(schema.NoneBackend, "", -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestMigrateRuns_UnsupportedBackend(t *testing.T) {
	err := MigrateRuns(schema.DatabaseBackend("oracle"), "", -1)
	assert.Error(t, err)
}

func TestMigrateRuns_SQLiteUpAndDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	// Up to latest, then a second Up is a no-op
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))

	// The migrated schema must be usable by the store
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalRuns)
}

func TestMigrationsDir(t *testing.T) {
	assert.Equal(t, "migrations/sqlite", migrationsDir(schema.SQLiteBackend))
	assert.Equal(t, "migrations/mysql", migrationsDir(schema.MySQLBackend))
	assert.Equal(t, "migrations/postgres", migrationsDir(schema.PostgreSQLBackend))
}
