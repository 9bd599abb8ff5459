package crypto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyPair(t *testing.T) {
	a := mustKeyPair(t)
	b := mustKeyPair(t)

	assert.True(t, a.CanEncrypt())
	assert.True(t, a.CanDecrypt())
	assert.NotEqual(t, a.Public(), b.Public())

	derived, err := a.Private().Public()
	require.NoError(t, err)
	assert.Equal(t, a.Public(), derived)
}

func TestGenerateKeyPair_ShortRandomSource(t *testing.T) {
	_, err := generateKeyPair(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestNewKeyPair(t *testing.T) {
	kp := mustKeyPair(t)
	other := mustKeyPair(t)

	t.Run("derives public key", func(t *testing.T) {
		got, err := NewKeyPair(PublicKey{}, kp.Private())
		require.NoError(t, err)
		assert.Equal(t, kp.Public(), got.Public())
	})

	t.Run("matching public key", func(t *testing.T) {
		_, err := NewKeyPair(kp.Public(), kp.Private())
		assert.NoError(t, err)
	})

	t.Run("mismatched public key", func(t *testing.T) {
		_, err := NewKeyPair(other.Public(), kp.Private())
		assert.ErrorIs(t, err, ErrKeyMismatch)
	})

	t.Run("nil private key", func(t *testing.T) {
		_, err := NewKeyPair(kp.Public(), nil)
		assert.ErrorIs(t, err, ErrNoPrivateKey)
	})
}

func TestKeyPair_Immutable(t *testing.T) {
	kp := mustKeyPair(t)
	before := kp.Private().Hex()

	priv := kp.Private()
	priv[0] ^= 0xFF

	assert.Equal(t, before, kp.Private().Hex())
}

func TestKeyPair_ZeroValueIsBypass(t *testing.T) {
	var kp KeyPair
	assert.False(t, kp.CanEncrypt())
	assert.False(t, kp.CanDecrypt())
	assert.Nil(t, kp.Private())
}

func TestNewPublicKeyPair(t *testing.T) {
	kp := mustKeyPair(t)

	pub := NewPublicKeyPair(kp.Public())
	assert.True(t, pub.CanEncrypt())
	assert.False(t, pub.CanDecrypt())

	empty := NewPublicKeyPair(PublicKey{})
	assert.False(t, empty.CanEncrypt())
}

func TestParseKeys(t *testing.T) {
	kp := mustKeyPair(t)

	pub, err := ParsePublicKey(kp.Public().String())
	require.NoError(t, err)
	assert.Equal(t, kp.Public(), pub)

	priv, err := ParsePrivateKey(kp.Private().Hex())
	require.NoError(t, err)
	assert.Equal(t, kp.Private(), priv)

	_, err = ParsePublicKey("not-hex")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = ParsePrivateKey(strings.Repeat("ab", 16))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestPrivateKey_StringIsRedacted(t *testing.T) {
	kp := mustKeyPair(t)
	assert.Equal(t, "[redacted]", kp.Private().String())
	assert.NotContains(t, kp.Private().String(), kp.Private().Hex())
}
