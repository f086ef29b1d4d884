package wordstore

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mpetrulis/lexirank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_UnsupportedBackend(t *testing.T) {
	err := Migrate(schema.DatabaseBackend("oracle"), "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestMigrate_SQLite(t *testing.T) {
	// Create a temporary database file for testing
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_migration.db")

	// Run migration to latest version
	err := Migrate(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	// Verify migration was successful by checking the database file exists
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	// Run migration again (should be a no-op)
	err = Migrate(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)

	// Run migration to a specific version
	err = Migrate(schema.SQLiteBackend, dbPath, 2)
	assert.NoError(t, err)

	// Rollback to version 0
	err = Migrate(schema.SQLiteBackend, dbPath, 0)
	assert.NoError(t, err)

	// Migrate back up to the latest version
	err = Migrate(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)
}

func TestMigrate_SQLiteInMemory(t *testing.T) {
	// Test with in-memory database
	err := Migrate(schema.SQLiteBackend, ":memory:", -1)
	require.NoError(t, err)
}

// TestMigrationSetsMatchAcrossBackends verifies each backend ships the same
// numbered migrations, so version N means the same schema everywhere.
func TestMigrationSetsMatchAcrossBackends(t *testing.T) {
	listNames := func(backend schema.DatabaseBackend) []string {
		dir, err := migrationDir(backend)
		require.NoError(t, err)
		entries, err := fs.ReadDir(migrationsFS, dir)
		require.NoError(t, err)

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return names
	}

	sqlite := listNames(schema.SQLiteBackend)
	assert.NotEmpty(t, sqlite)
	assert.Equal(t, sqlite, listNames(schema.MySQLBackend))
	assert.Equal(t, sqlite, listNames(schema.PostgreSQLBackend))
}
