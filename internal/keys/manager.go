package keys

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

// Manager creates key pairs and stores them wrapped in the key store.
type Manager struct {
	repo    store.KeyPairRepository
	wrapper crypto.KeyWrapper
	ids     *utils.UUIDGenerator
	now     func() time.Time
	logger  *logger.Logger
}

// NewManager creates a Manager. wrapper may be nil, in which case Generate
// fails with [ErrNoWrapper].
func NewManager(repo store.KeyPairRepository, wrapper crypto.KeyWrapper, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		repo:    repo,
		wrapper: wrapper,
		ids:     utils.NewUUIDGenerator(),
		now:     func() time.Time { return time.Now().UTC() },
		logger:  log,
	}
}

// Generate creates a fresh key pair for actorID, wraps its private key and
// saves it. The new pair becomes the actor's latest.
func (m *Manager) Generate(ctx context.Context, actorID string) (models.KeyPairRecord, crypto.KeyPair, error) {
	if actorID == "" {
		return models.KeyPairRecord{}, crypto.KeyPair{}, ErrNoActor
	}
	if m.wrapper == nil {
		return models.KeyPairRecord{}, crypto.KeyPair{}, ErrNoWrapper
	}

	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		return models.KeyPairRecord{}, crypto.KeyPair{}, err
	}

	wrapped, err := m.wrapper.Wrap(ctx, []byte(kp.Private().Hex()))
	if err != nil {
		return models.KeyPairRecord{}, crypto.KeyPair{}, fmt.Errorf("wrap private key: %w", err)
	}

	rec := models.KeyPairRecord{
		KeyID:             m.ids.Generate(),
		ActorID:           actorID,
		PublicKey:         kp.Public().String(),
		WrappedPrivateKey: base64.StdEncoding.EncodeToString(wrapped),
		WrapMethod:        m.wrapper.Method(),
		CreatedAt:         m.now(),
	}
	if err := m.repo.SaveKeyPair(ctx, rec); err != nil {
		return models.KeyPairRecord{}, crypto.KeyPair{}, fmt.Errorf("save key pair: %w", err)
	}

	m.logger.Info().
		Str("func", "Manager.Generate").
		Str("key_id", rec.KeyID).
		Str("wrap_method", rec.WrapMethod).
		Msg("key pair generated")
	return rec, kp, nil
}

// List returns the stored key pairs of actorID, newest first.
func (m *Manager) List(ctx context.Context, actorID string) ([]models.KeyPairRecord, error) {
	if actorID == "" {
		return nil, ErrNoActor
	}
	return m.repo.ListKeyPairs(ctx, actorID)
}
