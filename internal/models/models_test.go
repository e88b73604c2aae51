package models

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"socialnet/internal/db"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

// createTestUser inserts a user with a unique email derived from name.
func createTestUser(t *testing.T, database *sql.DB, name string) int {
	t.Helper()
	id, err := CreateUser(database, name, name+"@example.com", "hash", true)
	require.NoError(t, err)
	return int(id)
}
