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

type secretRepository struct {
	db *DB
}

func NewSecretRepository(db *DB) SecretRepository {
	return &secretRepository{db: db}
}

func (r *secretRepository) SaveSecret(ctx context.Context, secret models.SealedSecret) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(tableSealedSecrets).
		Columns(sealedSecretColumns...).
		Values(
			secret.ID,
			secret.KeyID,
			string(secret.Algorithm),
			secret.Nonce,
			secret.Ciphertext,
			secret.AssociatedData,
			secret.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.SaveSecret").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.SaveSecret").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *secretRepository) GetSecret(ctx context.Context, id string) (models.SealedSecret, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(sealedSecretColumns...).
		From(tableSealedSecrets).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.GetSecret").Msg("error building query")
		return models.SealedSecret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var secret models.SealedSecret
	err = r.db.withRetry(ctx, func() error {
		return scanSealedSecret(r.db.QueryRowContext(ctx, query, args...), &secret)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.SealedSecret{}, ErrSealedSecretNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.GetSecret").Msg("unexpected DB error")
		return models.SealedSecret{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return secret, nil
}

func (r *secretRepository) ListSecrets(ctx context.Context, keyID string) ([]models.SealedSecret, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(sealedSecretColumns...).
		From(tableSealedSecrets).
		Where(sq.Eq{"key_id": keyID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.ListSecrets").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.ListSecrets").Msg("unexpected DB error")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	secrets := make([]models.SealedSecret, 0)
	for rows.Next() {
		var secret models.SealedSecret
		if err = scanSealedSecret(rows, &secret); err != nil {
			log.Err(err).Str("func", "*secretRepository.ListSecrets").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		secrets = append(secrets, secret)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return secrets, nil
}

func (r *secretRepository) DeleteSecret(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(tableSealedSecrets).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*secretRepository.DeleteSecret").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
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
		log.Err(err).Str("func", "*secretRepository.DeleteSecret").Msg("unexpected DB error")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

func scanSealedSecret(row rowScanner, secret *models.SealedSecret) error {
	var algorithm string
	if err := row.Scan(
		&secret.ID,
		&secret.KeyID,
		&algorithm,
		&secret.Nonce,
		&secret.Ciphertext,
		&secret.AssociatedData,
		&secret.CreatedAt,
	); err != nil {
		return err
	}

	secret.Algorithm = models.Algorithm(algorithm)
	secret.CreatedAt = secret.CreatedAt.UTC()
	return nil
}
