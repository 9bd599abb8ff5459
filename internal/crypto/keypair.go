// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
)

// KeySize is the length in bytes of both X25519 public and private keys.
const KeySize = curve25519.ScalarSize

// PublicKey is an X25519 public key. Its text form is lowercase hex.
type PublicKey [KeySize]byte

// String returns the hex encoding of the key.
func (p PublicKey) String() string {
	return hex.EncodeToString(p[:])
}

// IsZero reports whether the key is unset.
func (p PublicKey) IsZero() bool {
	var zero PublicKey
	return subtle.ConstantTimeCompare(p[:], zero[:]) == 1
}

// PrivateKey is an X25519 private scalar.
type PrivateKey [KeySize]byte

// String never prints the key material so a private key put in a log line
// by mistake stays secret. Use [PrivateKey.Hex] to export it.
func (p *PrivateKey) String() string {
	return "[redacted]"
}

// Hex returns the hex encoding of the private key.
func (p *PrivateKey) Hex() string {
	return hex.EncodeToString(p[:])
}

// Public derives the X25519 public key belonging to p.
func (p *PrivateKey) Public() (PublicKey, error) {
	var pub PublicKey
	out, err := curve25519.X25519(p[:], curve25519.Basepoint)
	if err != nil {
		return pub, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	copy(pub[:], out)
	return pub, nil
}

// ParsePublicKey decodes a hex encoded X25519 public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var pub PublicKey
	if err := decodeKeyHex(s, pub[:]); err != nil {
		return pub, fmt.Errorf("parse public key: %w", err)
	}
	return pub, nil
}

// ParsePrivateKey decodes a hex encoded X25519 private key.
func ParsePrivateKey(s string) (*PrivateKey, error) {
	priv := new(PrivateKey)
	if err := decodeKeyHex(s, priv[:]); err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return priv, nil
}

func decodeKeyHex(s string, dst []byte) error {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(raw), len(dst))
	}
	copy(dst, raw)
	return nil
}

// KeyPair is the immutable key material of the encryption layer.
//
// Encryption always uses the public key and decryption plus search tokens
// always use the private key. A pair without a private key puts the layer
// into bypass mode. The zero value is an empty pair.
type KeyPair struct {
	public    PublicKey
	hasPublic bool
	private   *PrivateKey
}

// NewKeyPair builds a full key pair. When pub is the zero key it is derived
// from priv; otherwise pub must match priv.
func NewKeyPair(pub PublicKey, priv *PrivateKey) (KeyPair, error) {
	if priv == nil {
		return KeyPair{}, ErrNoPrivateKey
	}

	derived, err := priv.Public()
	if err != nil {
		return KeyPair{}, err
	}
	if !pub.IsZero() && subtle.ConstantTimeCompare(pub[:], derived[:]) != 1 {
		return KeyPair{}, ErrKeyMismatch
	}

	own := *priv
	return KeyPair{public: derived, hasPublic: true, private: &own}, nil
}

// NewPublicKeyPair builds an encrypt-only pair. It cannot decrypt nor
// compute search tokens, so the dispatcher treats it as bypass.
func NewPublicKeyPair(pub PublicKey) KeyPair {
	if pub.IsZero() {
		return KeyPair{}
	}
	return KeyPair{public: pub, hasPublic: true}
}

// GenerateKeyPair creates a fresh random X25519 key pair.
func GenerateKeyPair() (KeyPair, error) {
	return generateKeyPair(rand.Reader)
}

func generateKeyPair(r io.Reader) (KeyPair, error) {
	priv := new(PrivateKey)
	if _, err := io.ReadFull(r, priv[:]); err != nil {
		return KeyPair{}, fmt.Errorf("generate private key: %w", err)
	}
	return NewKeyPair(PublicKey{}, priv)
}

// Public returns the public key. It is the zero key when CanEncrypt is false.
func (k KeyPair) Public() PublicKey {
	return k.public
}

// Private returns a copy of the private key, or nil.
func (k KeyPair) Private() *PrivateKey {
	if k.private == nil {
		return nil
	}
	own := *k.private
	return &own
}

// CanEncrypt reports whether a public key is present.
func (k KeyPair) CanEncrypt() bool {
	return k.hasPublic
}

// CanDecrypt reports whether a private key is present. False means the
// whole encryption layer runs as a passthrough.
func (k KeyPair) CanDecrypt() bool {
	return k.private != nil
}
