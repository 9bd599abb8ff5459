package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// Storages groups the client storage repositories.
type Storages struct {
	KeyPairRepository KeyPairRepository

	db *DB
}

// NewStorages initialises the key store:
//  1. Opens the database named by cfg.DB.DSN (SQLite file or PostgreSQL).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the repositories to the connection.
func NewStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Storages, error) {
	log.Debug().Str("func", "NewStorages").Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("key store connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		KeyPairRepository: NewKeyPairRepository(db, log),
		db:                db,
	}, nil
}

// Close closes the underlying connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
