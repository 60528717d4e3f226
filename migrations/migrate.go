// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose schema migrations for every supported
// database dialect and applies them on startup.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect names accepted by Migrate.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var ErrUnknownDialect = errors.New("unknown migration dialect")

// Migrate applies all pending migrations for dialect and returns the number
// of migrations applied.
func Migrate(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	gooseDialect, dir, err := resolve(dialect)
	if err != nil {
		return 0, err
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return 0, fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}

func resolve(dialect string) (goose.Dialect, string, error) {
	switch dialect {
	case DialectPostgres:
		return goose.DialectPostgres, "postgres", nil
	case DialectSQLite:
		return goose.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}
