package keys

import (
	"context"
	"encoding/base64"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
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

func newKeys(t *testing.T) crypto.KeyPair {
	t.Helper()
	kp, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	return kp
}

func TestProvider_StaticKeys(t *testing.T) {
	kp := newKeys(t)

	tests := []struct {
		name        string
		keys        config.ClientKeys
		wantDecrypt bool
		wantEncrypt bool
		wantErr     error
	}{
		{name: "private only", keys: config.ClientKeys{PrivateKey: kp.Private().Hex()}, wantDecrypt: true, wantEncrypt: true},
		{name: "both", keys: config.ClientKeys{PrivateKey: kp.Private().Hex(), PublicKey: kp.Public().String()}, wantDecrypt: true, wantEncrypt: true},
		{name: "public only", keys: config.ClientKeys{PublicKey: kp.Public().String()}, wantEncrypt: true},
		{name: "mismatch", keys: config.ClientKeys{PrivateKey: kp.Private().Hex(), PublicKey: newKeys(t).Public().String()}, wantErr: crypto.ErrKeyMismatch},
		{name: "bad hex", keys: config.ClientKeys{PrivateKey: "xyz"}, wantErr: ErrInvalidKeyMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, src, err := NewProvider(tt.keys, "", nil, nil, logger.Nop()).KeyPair(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, SourceStatic, src)
			assert.Equal(t, tt.wantDecrypt, got.CanDecrypt())
			assert.Equal(t, tt.wantEncrypt, got.CanEncrypt())
			assert.Equal(t, kp.Public(), got.Public())
		})
	}
}

func TestProvider_StaticWinsOverStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyPairRepository(ctrl)
	// no EXPECT: the store must not be consulted

	kp := newKeys(t)
	p := NewProvider(config.ClientKeys{PrivateKey: kp.Private().Hex()}, "alice", repo, nil, logger.Nop())

	_, src, err := p.KeyPair(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceStatic, src)
}

func TestProvider_KeyFile(t *testing.T) {
	kp := newKeys(t)
	path := filepath.Join(t.TempDir(), "keys.json")
	require.NoError(t, WriteKeyFile(path, NewKeyFile(kp, true)))

	got, src, err := NewProvider(config.ClientKeys{File: path}, "", nil, nil, logger.Nop()).KeyPair(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFile, src)
	assert.True(t, got.CanDecrypt())
	assert.Equal(t, kp.Private().Hex(), got.Private().Hex())
}

func TestProvider_KeyFileErrors(t *testing.T) {
	_, _, err := NewProvider(config.ClientKeys{File: filepath.Join(t.TempDir(), "missing.json")}, "", nil, nil, logger.Nop()).
		KeyPair(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading key file")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, WriteKeyFile(path, KeyFile{PublicKey: "abc"}))
	_, _, err = NewProvider(config.ClientKeys{File: path}, "", nil, nil, logger.Nop()).KeyPair(context.Background())
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
}

func TestProvider_NothingConfigured(t *testing.T) {
	got, src, err := NewProvider(config.ClientKeys{}, "", nil, nil, logger.Nop()).KeyPair(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceNone, src)
	assert.False(t, got.CanEncrypt())
	assert.False(t, got.CanDecrypt())
}

func TestProvider_StoreNotFoundIsBypass(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyPairRepository(ctrl)
	repo.EXPECT().GetLatestKeyPair(gomock.Any(), "alice").Return(models.KeyPairRecord{}, store.ErrKeyPairNotFound)

	got, src, err := NewProvider(config.ClientKeys{}, "alice", repo, nil, logger.Nop()).KeyPair(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceNone, src)
	assert.False(t, got.CanDecrypt())
}

func TestProvider_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyPairRepository(ctrl)
	repo.EXPECT().GetLatestKeyPair(gomock.Any(), "alice").Return(models.KeyPairRecord{}, assert.AnError)

	_, _, err := NewProvider(config.ClientKeys{}, "alice", repo, nil, logger.Nop()).KeyPair(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestProvider_StoreUnwrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyPairRepository(ctrl)
	wrapper := mock.NewMockKeyWrapper(ctrl)
	kp := newKeys(t)

	rec := models.KeyPairRecord{
		KeyID:             "k1",
		ActorID:           "alice",
		PublicKey:         kp.Public().String(),
		WrappedPrivateKey: base64.StdEncoding.EncodeToString([]byte("sealed")),
		WrapMethod:        models.WrapMethodKMS,
	}
	repo.EXPECT().GetLatestKeyPair(gomock.Any(), "alice").Return(rec, nil)
	wrapper.EXPECT().Method().Return(models.WrapMethodKMS).AnyTimes()
	wrapper.EXPECT().Unwrap(gomock.Any(), []byte("sealed")).Return([]byte(kp.Private().Hex()), nil)

	got, src, err := NewProvider(config.ClientKeys{}, "alice", repo, wrapper, logger.Nop()).KeyPair(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceStore, src)
	assert.True(t, got.CanDecrypt())
	assert.Equal(t, kp.Public(), got.Public())
}

func TestProvider_StoreWithoutWrapperIsPublicOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyPairRepository(ctrl)
	kp := newKeys(t)

	repo.EXPECT().GetLatestKeyPair(gomock.Any(), "alice").
		Return(models.KeyPairRecord{KeyID: "k1", PublicKey: kp.Public().String(), WrapMethod: models.WrapMethodPassphrase}, nil)

	got, src, err := NewProvider(config.ClientKeys{}, "alice", repo, nil, logger.Nop()).KeyPair(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceStore, src)
	assert.True(t, got.CanEncrypt())
	assert.False(t, got.CanDecrypt())
}

func TestProvider_StoreMethodMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyPairRepository(ctrl)
	wrapper := mock.NewMockKeyWrapper(ctrl)

	repo.EXPECT().GetLatestKeyPair(gomock.Any(), "alice").
		Return(models.KeyPairRecord{KeyID: "k1", WrapMethod: models.WrapMethodKMS}, nil)
	wrapper.EXPECT().Method().Return(models.WrapMethodPassphrase).AnyTimes()

	_, _, err := NewProvider(config.ClientKeys{}, "alice", repo, wrapper, logger.Nop()).KeyPair(context.Background())
	assert.ErrorIs(t, err, ErrWrapMethodMismatch)
}

func TestProvider_StoreUnwrapFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockKeyPairRepository(ctrl)
	wrapper := mock.NewMockKeyWrapper(ctrl)

	repo.EXPECT().GetLatestKeyPair(gomock.Any(), "alice").
		Return(models.KeyPairRecord{KeyID: "k1", WrapMethod: models.WrapMethodPassphrase, WrappedPrivateKey: "AAAA"}, nil)
	wrapper.EXPECT().Method().Return(models.WrapMethodPassphrase).AnyTimes()
	wrapper.EXPECT().Unwrap(gomock.Any(), gomock.Any()).Return(nil, crypto.ErrUnwrap)

	_, _, err := NewProvider(config.ClientKeys{}, "alice", repo, wrapper, logger.Nop()).KeyPair(context.Background())
	assert.ErrorIs(t, err, crypto.ErrUnwrap)
}

func TestResolveActor(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	assert.Equal(t, "explicit", ResolveActor("explicit", token, logger.Nop()))
	assert.Equal(t, "user-7", ResolveActor("", token, logger.Nop()))
	assert.Equal(t, "user-7", ResolveActor("", "Bearer "+token, logger.Nop()))
	assert.Equal(t, "", ResolveActor("", "garbage", logger.Nop()))
	assert.Equal(t, "", ResolveActor("", "", logger.Nop()))
}

func TestNewKeyFile(t *testing.T) {
	kp := newKeys(t)

	pub := NewKeyFile(kp, false)
	assert.Equal(t, kp.Public().String(), pub.PublicKey)
	assert.Empty(t, pub.PrivateKey)

	full := NewKeyFile(kp, true)
	assert.Equal(t, kp.Private().Hex(), full.PrivateKey)

	assert.Equal(t, KeyFile{}, NewKeyFile(crypto.KeyPair{}, true))
}

func TestOpenWrapper(t *testing.T) {
	ctx := context.Background()

	w, closeFn, err := OpenWrapper(ctx, config.ClientKeys{})
	require.NoError(t, err)
	assert.Nil(t, w)
	assert.NoError(t, closeFn())

	w, closeFn, err = OpenWrapper(ctx, config.ClientKeys{Passphrase: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.WrapMethodPassphrase, w.Method())
	assert.NoError(t, closeFn())

	w, closeFn, err = OpenWrapper(ctx, config.ClientKeys{KMSURL: "base64key://YWJjZGVmZ2hpamtsbW5vcHFyc3R1dnd4eXoxMjM0NTY="})
	require.NoError(t, err)
	assert.Equal(t, models.WrapMethodKMS, w.Method())
	assert.NoError(t, closeFn())

	_, _, err = OpenWrapper(ctx, config.ClientKeys{KMSURL: "nosuchscheme://x"})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoWrapper))
}
