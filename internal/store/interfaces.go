package store

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyPairRepository is the local key store. Private keys are stored
// wrapped, never in the clear.
type KeyPairRepository interface {
	// SaveKeyPair inserts rec. A duplicate key id or public key of the same
	// actor fails with [ErrKeyPairAlreadyExists].
	SaveKeyPair(ctx context.Context, rec models.KeyPairRecord) error
	// GetLatestKeyPair returns the newest key pair of actorID, or
	// [ErrKeyPairNotFound].
	GetLatestKeyPair(ctx context.Context, actorID string) (models.KeyPairRecord, error)
	// ListKeyPairs returns all key pairs of actorID, newest first.
	ListKeyPairs(ctx context.Context, actorID string) ([]models.KeyPairRecord, error)
}
