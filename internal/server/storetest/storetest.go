// Package storetest opens migrated in-memory SQLite databases for tests.
package storetest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
)

// New returns a fresh database with the server schema applied, together
// with a repository manager for it. The database is closed on cleanup.
func New(t testing.TB) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()

	db, driver, err := dbx.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rm, err := repomanager.NewSQLRepositoryManager(driver)
	if err != nil {
		t.Fatalf("repository manager: %v", err)
	}
	if err := rm.RunMigrations(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db, rm
}
