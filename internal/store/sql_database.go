// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/migrations"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// DB wraps *sql.DB with the dialect-specific pieces the repositories need:
// a squirrel statement builder with the right placeholder format and an
// error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// NewConnect opens the database named by cfg.DSN. URLs starting with
// postgres:// or postgresql:// select PostgreSQL; anything else is treated
// as a SQLite file path or URI.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		return nil, ErrUnsupportedDSN
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// Dialect returns the migrations dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies pending schema migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect)
	if err != nil {
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Int("applied", applied).Msg("database migrated")
	return nil
}

// withRetry runs fn again when the classifier marks its error as transient.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		if attempt == maxAttempts {
			break
		}

		logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.withRetry").Int("attempt", attempt).Msg("retrying transient database error")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", err, ctx.Err())
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	return err
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
