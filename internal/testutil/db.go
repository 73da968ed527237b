// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"workoutapi/internal/infra"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a migrated SQLite database in a per-test temp dir.
// The connection is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "workout.db")
	db, err := infra.NewDatabase(dsn, infra.DefaultPool)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	t.Cleanup(func() { CloseDB(db) })
	return db
}

// CloseDB closes the pool behind db. Used to simulate a lost database.
func CloseDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
