package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

type proofRevocationRepository struct {
	db *DB
}

func NewProofRevocationRepository(db *DB) ProofRevocationRepository {
	return &proofRevocationRepository{db: db}
}

func (r *proofRevocationRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(tableProofRevocations).
		Columns("jti", "expires_at").
		Values(jti, expiresAt.UTC()).
		Suffix("ON CONFLICT (jti) DO NOTHING").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*proofRevocationRepository.Revoke").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*proofRevocationRepository.Revoke").Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *proofRevocationRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(tableProofRevocations).
		Where(sq.Eq{"jti": jti}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*proofRevocationRepository.IsRevoked").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "*proofRevocationRepository.IsRevoked").Msg("unexpected DB error")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *proofRevocationRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(tableProofRevocations).
		Where(sq.Lt{"expires_at": now.UTC()}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*proofRevocationRepository.PurgeExpired").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var purged int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		purged, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*proofRevocationRepository.PurgeExpired").Msg("unexpected DB error")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return purged, nil
}
