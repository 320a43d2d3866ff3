// Package postgres opens the optional PostgreSQL store and applies its migrations.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"nexstock/pkg/log"
)

const (
	pingTimeout     = 5 * time.Second
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// Connect opens a pooled connection and verifies it with a ping.
func Connect(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Migrate applies every pending up migration found in dir.
// ErrNoChange is not an error.
func Migrate(ctx context.Context, url, dir string, l log.Logger) error {
	l.Infof(ctx, "Running database migrations from %s", dir)

	m, err := migrate.New(fmt.Sprintf("file://%s", dir), url)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()
	m.Log = migrateLogger{ctx: ctx, l: l}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			l.Info(ctx, "Database migration: no change needed")
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}
	l.Infof(ctx, "Database migrated to version %d (dirty=%t)", version, dirty)
	return nil
}

// migrateLogger adapts log.Logger to migrate.Logger.
type migrateLogger struct {
	ctx context.Context
	l   log.Logger
}

func (m migrateLogger) Printf(format string, v ...any) {
	m.l.Debugf(m.ctx, "migrate: "+format, v...)
}

func (m migrateLogger) Verbose() bool { return false }
