package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

// Storages bundles every repository over one database connection.
type Storages struct {
	KeyRepository             KeyRepository
	KeyMaterialRepository     KeyMaterialRepository
	SecretRepository          SecretRepository
	ProofRevocationRepository ProofRevocationRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return NewStoragesFromDB(db), nil
}

// NewStoragesFromDB builds the repositories over an already migrated
// connection.
func NewStoragesFromDB(db *DB) *Storages {
	return &Storages{
		KeyRepository:             NewKeyRepository(db),
		KeyMaterialRepository:     NewKeyMaterialRepository(db),
		SecretRepository:          NewSecretRepository(db),
		ProofRevocationRepository: NewProofRevocationRepository(db),
		db:                        db,
	}
}

// Ping checks the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
