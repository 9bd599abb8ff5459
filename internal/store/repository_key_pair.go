// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const keyPairsTable = "key_pairs"

var keyPairColumns = []string{"key_id", "actor_id", "public_key", "wrapped_private_key", "wrap_method", "created_at"}

// keyPairRepository is the SQL implementation of [KeyPairRepository].
// Queries are built with squirrel in the placeholder format of the
// connection dialect and scanned with sqlx.
type keyPairRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewKeyPairRepository constructs a [KeyPairRepository] backed by db.
func NewKeyPairRepository(db *DB, log *logger.Logger) KeyPairRepository {
	log.Debug().Msg("creating key pair repository")
	return &keyPairRepository{db: db, logger: log}
}

// SaveKeyPair implements [KeyPairRepository].
func (r *keyPairRepository) SaveKeyPair(ctx context.Context, rec models.KeyPairRecord) error {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.db.builder().
		Insert(keyPairsTable).
		Columns(keyPairColumns...).
		Values(rec.KeyID, rec.ActorID, rec.PublicKey, rec.WrappedPrivateKey, rec.WrapMethod, rec.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*keyPairRepository.SaveKeyPair").Str("key_id", rec.KeyID).Msg("error saving key pair")
		if r.db.errorClassificator.Classify(err) == UniqueViolation {
			return ErrKeyPairAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetLatestKeyPair implements [KeyPairRepository].
func (r *keyPairRepository) GetLatestKeyPair(ctx context.Context, actorID string) (models.KeyPairRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.selectByActor(actorID).Limit(1).ToSql()
	if err != nil {
		return models.KeyPairRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.KeyPairRecord
	if err = r.db.GetContext(ctx, &rec, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.KeyPairRecord{}, ErrKeyPairNotFound
		}
		log.Err(err).Str("func", "*keyPairRepository.GetLatestKeyPair").Msg("error getting key pair")
		return models.KeyPairRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rec, nil
}

// ListKeyPairs implements [KeyPairRepository].
func (r *keyPairRepository) ListKeyPairs(ctx context.Context, actorID string) ([]models.KeyPairRecord, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.selectByActor(actorID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recs := make([]models.KeyPairRecord, 0)
	if err = r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		log.Err(err).Str("func", "*keyPairRepository.ListKeyPairs").Msg("error listing key pairs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return recs, nil
}

func (r *keyPairRepository) selectByActor(actorID string) sq.SelectBuilder {
	return r.db.builder().
		Select(keyPairColumns...).
		From(keyPairsTable).
		Where(sq.Eq{"actor_id": actorID}).
		OrderBy("created_at DESC", "key_id DESC")
}
