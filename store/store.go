// Package store persists users, groups and posts in SQLite or PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"yatube/db/migrations"
	"yatube/posts"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// DefaultSQLiteDSN is used when no database URL is configured.
const DefaultSQLiteDSN = "./yatube.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Store persists blog state through database/sql.
type Store struct {
	db     *sql.DB
	driver string
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open connects to the database and applies pending migrations.
// The bool reports whether any migration ran.
func Open(ctx context.Context, driver, dsn string) (*Store, bool, error) {
	driver = strings.TrimSpace(driver)
	if driver == "" {
		driver = DriverSQLite
	}
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, false, fmt.Errorf("unsupported database driver %q", driver)
	}
	if strings.TrimSpace(dsn) == "" {
		if driver != DriverSQLite {
			return nil, false, errors.New("database url is required")
		}
		dsn = DefaultSQLiteDSN
	}
	if driver == DriverSQLite {
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, false, fmt.Errorf("open %s db: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, false, fmt.Errorf("ping %s db: %w", driver, err)
	}
	migrated, err := migrateUp(db, driver)
	if err != nil {
		_ = db.Close()
		return nil, false, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db, driver: driver}, migrated, nil
}

func migrateUp(db *sql.DB, driver string) (bool, error) {
	var (
		dbDriver database.Driver
		dir      string
		err      error
	)
	switch driver {
	case DriverSQLite:
		dir = "sqlite"
		dbDriver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case DriverPostgres:
		dir = "postgres"
		dbDriver, err = pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	}
	if err != nil {
		return false, err
	}
	src, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return false, err
	}
	m, err := migrate.NewWithInstance("iofs", src, driver, dbDriver)
	if err != nil {
		return false, err
	}
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// sqliteDSN turns on foreign key enforcement, which cascades and clears
// references on delete, unless the DSN already sets it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

var _ posts.Store = (*Store)(nil)
