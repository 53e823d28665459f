// Package migrations embeds the SQL schema and applies it with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// run binds the embedded sources to a single connection borrowed from db and
// hands the migrator to fn. Closing the migrator returns the connection to the
// pool and leaves db open for the caller.
func run(ctx context.Context, db *sql.DB, fn func(m *migrate.Migrate) error) (err error) {
	source, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("acquire migration connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()
		_ = source.Close()
		return fmt.Errorf("create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		_ = source.Close()
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(sourceErr, dbErr)
		}
	}()

	return fn(m)
}

// Up applies every pending migration. An up-to-date schema is not an error.
func Up(ctx context.Context, db *sql.DB) error {
	return run(ctx, db, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("apply migrations: %w", err)
		}
		return nil
	})
}

// Down rolls back every applied migration.
func Down(ctx context.Context, db *sql.DB) error {
	return run(ctx, db, func(m *migrate.Migrate) error {
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("rollback migrations: %w", err)
		}
		return nil
	})
}

// Version reports the current schema version. A database without any applied
// migration reports version 0.
func Version(ctx context.Context, db *sql.DB) (version uint, dirty bool, err error) {
	err = run(ctx, db, func(m *migrate.Migrate) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			version, dirty = 0, false
			return nil
		}
		if verr != nil {
			return fmt.Errorf("read migration version: %w", verr)
		}
		return nil
	})
	return version, dirty, err
}
