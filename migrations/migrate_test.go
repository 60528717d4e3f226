// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: goose's first statement fails
	_, err = Migrate(context.Background(), db, DialectPostgres)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "migration error"), err.Error())
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	_, err := Migrate(context.Background(), db, DialectSQLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = Migrate(context.Background(), db, "oracle")
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	ctx := context.Background()

	applied, err := Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, 3, applied)

	for _, table := range []string{"keys", "key_material", "sealed_secrets", "proof_revocations"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
	}

	again, err := Migrate(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Zero(t, again)
}
