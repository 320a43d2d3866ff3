package main

import (
	"context"
	"errors"

	"nexstock/pkg/postgres"
)

func runMigrations(ctx context.Context, dir string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" {
		return errors.New("database.url (or DATABASE_URL) is required to migrate")
	}
	if dir == "" {
		dir = cfg.Database.MigrationsDir
	}
	return postgres.Migrate(ctx, cfg.Database.URL, dir, logger)
}
