package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/stdlib"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Driver names as registered with database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

var ErrUnsupportedDSN = errors.New("unsupported database DSN")

// ParseDSN picks the driver for dsn and returns the DSN in the form that
// driver expects.
//
//	postgres://..., postgresql://...        -> pgx
//	sqlite://path, sqlite:path, file:..., :memory: -> sqlite (foreign keys on)
func ParseDSN(dsn string) (driver string, normalized string, err error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, dsn, nil

	case strings.HasPrefix(dsn, "sqlite://"):
		return DriverSQLite, withForeignKeys(strings.TrimPrefix(dsn, "sqlite://")), nil

	case strings.HasPrefix(dsn, "sqlite:"):
		return DriverSQLite, withForeignKeys(strings.TrimPrefix(dsn, "sqlite:")), nil

	case strings.HasPrefix(dsn, "file:"), strings.HasPrefix(dsn, ":memory:"):
		return DriverSQLite, withForeignKeys(dsn), nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redact(dsn))
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// redact keeps the scheme of a DSN for error messages and drops the rest,
// which may carry credentials.
func redact(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://..."
	}
	if len(dsn) > 8 {
		return dsn[:8] + "..."
	}
	return dsn
}

// Open connects to the database named by dsn and verifies the connection.
// It returns the pool together with the driver name chosen by ParseDSN.
func Open(ctx context.Context, dsn string) (*sql.DB, string, error) {
	driver, normalized, err := ParseDSN(dsn)
	if err != nil {
		return nil, "", err
	}

	var db *sql.DB

	switch driver {
	case DriverPostgres:
		cfg, err := pgx.ParseConfig(normalized)
		if err != nil {
			return nil, "", fmt.Errorf("parse DSN: %w", err)
		}
		db = stdlib.OpenDB(*cfg)
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)

	case DriverSQLite:
		db, err = sql.Open(DriverSQLite, normalized)
		if err != nil {
			return nil, "", fmt.Errorf("db open error: %w", err)
		}
		// SQLite serializes writers anyway, and an in-memory database lives
		// only as long as its single connection.
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("db ping error: %w", err)
	}

	return db, driver, nil
}

// IsUniqueViolation reports whether err was caused by a unique or primary
// key constraint in either supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE")
	}

	return false
}
