package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

type keyRepository struct {
	db *DB
}

func NewKeyRepository(db *DB) KeyRepository {
	return &keyRepository{db: db}
}

func (r *keyRepository) CreateKey(ctx context.Context, handle models.KeyHandle) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(tableKeys).
		Columns(keyColumns...).
		Values(
			handle.ID,
			string(handle.Algorithm),
			handle.Policy,
			handle.PublicKey,
			handle.Fingerprint,
			handle.CreatedAt.UTC(),
			handle.UpdatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.CreateKey").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Err(err).Str("func", "*keyRepository.CreateKey").Str("key_id", handle.ID).Msg("key already exists")
			return ErrKeyAlreadyExists
		}
		log.Err(err).Str("func", "*keyRepository.CreateKey").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *keyRepository) GetKey(ctx context.Context, id string) (models.KeyHandle, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(keyColumns...).
		From(tableKeys).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.GetKey").Msg("error building query")
		return models.KeyHandle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var handle models.KeyHandle
	err = r.db.withRetry(ctx, func() error {
		return scanKeyHandle(r.db.QueryRowContext(ctx, query, args...), &handle)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.KeyHandle{}, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.GetKey").Msg("unexpected DB error")
		return models.KeyHandle{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return handle, nil
}

func (r *keyRepository) ListKeys(ctx context.Context) ([]models.KeyHandle, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(keyColumns...).
		From(tableKeys).
		OrderBy("id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.ListKeys").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.ListKeys").Msg("unexpected DB error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	handles := make([]models.KeyHandle, 0)
	for rows.Next() {
		var handle models.KeyHandle
		if err = scanKeyHandle(rows, &handle); err != nil {
			log.Err(err).Str("func", "*keyRepository.ListKeys").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		handles = append(handles, handle)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*keyRepository.ListKeys").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return handles, nil
}

func (r *keyRepository) UpdatePolicy(ctx context.Context, id string, policy models.AccessPolicy, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(tableKeys).
		Set("policy", policy).
		Set("updated_at", updatedAt.UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.UpdatePolicy").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.UpdatePolicy").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrKeyNotFound
	}

	return nil
}

func (r *keyRepository) DeleteKey(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	deleteSecrets, secretArgs, err := r.db.builder.
		Delete(tableSealedSecrets).
		Where(sq.Eq{"key_id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.DeleteKey").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteKey, keyArgs, err := r.db.builder.
		Delete(tableKeys).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.DeleteKey").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.DeleteKey").Msg("error beginning transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, deleteSecrets, secretArgs...); err != nil {
		log.Err(err).Str("func", "*keyRepository.DeleteKey").Msg("error deleting sealed secrets")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	res, err := tx.ExecContext(ctx, deleteKey, keyArgs...)
	if err != nil {
		log.Err(err).Str("func", "*keyRepository.DeleteKey").Msg("error deleting key")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*keyRepository.DeleteKey").Msg("error committing transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanKeyHandle(row rowScanner, handle *models.KeyHandle) error {
	var algorithm string
	if err := row.Scan(
		&handle.ID,
		&algorithm,
		&handle.Policy,
		&handle.PublicKey,
		&handle.Fingerprint,
		&handle.CreatedAt,
		&handle.UpdatedAt,
	); err != nil {
		return err
	}

	handle.Algorithm = models.Algorithm(algorithm)
	handle.CreatedAt = handle.CreatedAt.UTC()
	handle.UpdatedAt = handle.UpdatedAt.UTC()
	return nil
}
