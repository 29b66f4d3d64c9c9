// Package repomanager provides a concrete RepositoryManager for the SQL
// stores, wiring together repository constructors and database migrations
// (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/migrations"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/notes"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager vends SQL-backed repository implementations and
// exposes a schema migration hook for the configured dialect.
type SQLRepositoryManager struct {
	dialect goose.Dialect
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

// Notes returns a notes.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Notes(db dbx.DBTX) notes.Repository {
	return notes.NewSQLRepository(db)
}

// migrateUp is a seam for testing the goose provider.
var migrateUp = func(ctx context.Context, dialect goose.Dialect, db *sql.DB, fsys fs.FS) error {
	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return err
	}
	_, err = p.Up(ctx)
	return err
}

// RunMigrations applies the embedded migrations that have not run yet.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	if err := migrateUp(ctx, m.dialect, db, migrations.Migrations); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for the given
// database/sql driver name (see dbx.Open).
func NewSQLRepositoryManager(driver string) (RepositoryManager, error) {
	switch driver {
	case dbx.DriverPostgres:
		return &SQLRepositoryManager{dialect: goose.DialectPostgres}, nil
	case dbx.DriverSQLite:
		return &SQLRepositoryManager{dialect: goose.DialectSQLite3}, nil
	}
	return nil, fmt.Errorf("no migrations dialect for driver %q", driver)
}
