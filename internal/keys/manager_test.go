package keys

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func TestManager_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyPairRepository(ctrl)
	wrapper := mock.NewMockKeyWrapper(ctrl)

	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	m := NewManager(repo, wrapper, logger.Nop())
	m.now = func() time.Time { return fixed }

	var saved models.KeyPairRecord
	wrapper.EXPECT().Method().Return(models.WrapMethodPassphrase).AnyTimes()
	wrapper.EXPECT().Wrap(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, plain []byte) ([]byte, error) {
		assert.Len(t, plain, 2*crypto.KeySize, "hex private key")
		return []byte("sealed"), nil
	})
	repo.EXPECT().SaveKeyPair(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec models.KeyPairRecord) error {
		saved = rec
		return nil
	})

	rec, kp, err := m.Generate(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, saved, rec)
	assert.Equal(t, "alice", rec.ActorID)
	assert.Equal(t, kp.Public().String(), rec.PublicKey)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("sealed")), rec.WrappedPrivateKey)
	assert.Equal(t, models.WrapMethodPassphrase, rec.WrapMethod)
	assert.Equal(t, fixed, rec.CreatedAt)
	assert.Len(t, rec.KeyID, 36)
	assert.True(t, kp.CanDecrypt())
}

func TestManager_GenerateErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyPairRepository(ctrl)
	wrapper := mock.NewMockKeyWrapper(ctrl)
	wrapper.EXPECT().Method().Return(models.WrapMethodKMS).AnyTimes()

	_, _, err := NewManager(repo, wrapper, nil).Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoActor)

	_, _, err = NewManager(repo, nil, nil).Generate(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrNoWrapper)

	wrapper.EXPECT().Wrap(gomock.Any(), gomock.Any()).Return(nil, crypto.ErrWrap)
	_, _, err = NewManager(repo, wrapper, nil).Generate(context.Background(), "alice")
	assert.ErrorIs(t, err, crypto.ErrWrap)

	wrapper.EXPECT().Wrap(gomock.Any(), gomock.Any()).Return([]byte("x"), nil)
	repo.EXPECT().SaveKeyPair(gomock.Any(), gomock.Any()).Return(store.ErrKeyPairAlreadyExists)
	_, _, err = NewManager(repo, wrapper, nil).Generate(context.Background(), "alice")
	assert.ErrorIs(t, err, store.ErrKeyPairAlreadyExists)
}

// TestManager_StoreRoundTrip generates a key with a KMS keeper into a real
// SQLite store and loads it back through the provider.
func TestManager_StoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	keysCfg := config.ClientKeys{KMSURL: "base64key://YWJjZGVmZ2hpamtsbW5vcHFyc3R1dnd4eXoxMjM0NTY="}

	storages, err := store.NewStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "keys.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	wrapper, closeFn, err := OpenWrapper(ctx, keysCfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	_, generated, err := NewManager(storages.KeyPairRepository, wrapper, nil).Generate(ctx, "alice")
	require.NoError(t, err)

	loaded, src, err := NewProvider(keysCfg, "alice", storages.KeyPairRepository, wrapper, nil).KeyPair(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceStore, src)
	assert.Equal(t, generated.Public(), loaded.Public())
	assert.Equal(t, generated.Private().Hex(), loaded.Private().Hex())

	list, err := NewManager(storages.KeyPairRepository, wrapper, nil).List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
