package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

type keyMaterialRepository struct {
	db *DB
}

func NewKeyMaterialRepository(db *DB) KeyMaterialRepository {
	return &keyMaterialRepository{db: db}
}

func (r *keyMaterialRepository) SaveWrappedKey(ctx context.Context, wrapped models.WrappedKey) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(tableKeyMaterial).
		Columns(keyMaterialColumns...).
		Values(wrapped.KeyID, string(wrapped.Algorithm), wrapped.Salt, wrapped.Material, wrapped.PublicKey).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*keyMaterialRepository.SaveWrappedKey").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrKeyAlreadyExists
		}
		log.Err(err).Str("func", "*keyMaterialRepository.SaveWrappedKey").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *keyMaterialRepository) GetWrappedKey(ctx context.Context, keyID string) (models.WrappedKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(keyMaterialColumns...).
		From(tableKeyMaterial).
		Where(sq.Eq{"key_id": keyID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*keyMaterialRepository.GetWrappedKey").Msg("error building query")
		return models.WrappedKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		wrapped   models.WrappedKey
		algorithm string
	)
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&wrapped.KeyID,
			&algorithm,
			&wrapped.Salt,
			&wrapped.Material,
			&wrapped.PublicKey,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.WrappedKey{}, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*keyMaterialRepository.GetWrappedKey").Msg("unexpected DB error")
		return models.WrappedKey{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	wrapped.Algorithm = models.Algorithm(algorithm)

	return wrapped, nil
}

func (r *keyMaterialRepository) DeleteWrappedKey(ctx context.Context, keyID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(tableKeyMaterial).
		Where(sq.Eq{"key_id": keyID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*keyMaterialRepository.DeleteWrappedKey").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*keyMaterialRepository.DeleteWrappedKey").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
