package database

import (
	"path/filepath"
	"testing"
	"time"

	"apartment-portal/internal/models"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *GormDB {
	t.Helper()
	gdb, err := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, gdb.InitSchema())
	t.Cleanup(func() { _ = gdb.Close() })
	return gdb
}

// mustCreate inserts an apartment with an explicit creation time so
// ordering-sensitive tests are deterministic.
func mustCreate(t *testing.T, gdb *GormDB, a models.Apartment, createdAt time.Time) models.Apartment {
	t.Helper()
	if a.Description == "" {
		a.Description = "test apartment"
	}
	a.CreatedAt = createdAt
	require.NoError(t, gdb.CreateApartment(&a))
	return a
}

var fixtureBase = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
