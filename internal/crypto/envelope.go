// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
)

const envelopeVersion = 1

const fieldEnvelopeInfo = "go-contact-keeper field envelope v1"

// envelope is the wire shape of one encrypted field value. It is stored as
// a JSON string in place of the plaintext, so the surrounding record keeps
// its shape.
type envelope struct {
	V           int    `json:"v"`
	EphemeralPK string `json:"ephemeralPK"`
	Nonce       string `json:"nonce"`
	CipherText  string `json:"cipherText"`
}

// EncryptField seals plaintext for the holder of the private key matching
// pub.
//
// Scheme (ECIES over X25519):
//
//	eph          = random X25519 key pair
//	shared       = X25519(eph.priv, pub)
//	key          = HKDF-SHA256(shared, salt = eph.pub ‖ pub, info)
//	cipherText   = ChaCha20-Poly1305(key, nonce, plaintext, aad = eph.pub)
//
// Only the public key is needed, so an encrypt-only client can never read
// back what it wrote.
func EncryptField(plaintext string, pub PublicKey) (string, error) {
	return encryptField(rand.Reader, plaintext, pub)
}

func encryptField(r io.Reader, plaintext string, pub PublicKey) (string, error) {
	ephPriv := make([]byte, curve25519.ScalarSize)
	if _, err := io.ReadFull(r, ephPriv); err != nil {
		return "", fmt.Errorf("%w: generate ephemeral key: %v", ErrEncrypt, err)
	}

	ephPub, err := curve25519.X25519(ephPriv, curve25519.Basepoint)
	if err != nil {
		return "", fmt.Errorf("%w: derive ephemeral public key: %v", ErrEncrypt, err)
	}

	shared, err := curve25519.X25519(ephPriv, pub[:])
	if err != nil {
		return "", fmt.Errorf("%w: key agreement: %v", ErrEncrypt, err)
	}

	aead, err := newFieldAEAD(shared, ephPub, pub[:])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncrypt, err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(r, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %v", ErrEncrypt, err)
	}

	sealed := aead.Seal(nil, nonce, []byte(plaintext), ephPub)

	out, err := json.Marshal(envelope{
		V:           envelopeVersion,
		EphemeralPK: hex.EncodeToString(ephPub),
		Nonce:       hex.EncodeToString(nonce),
		CipherText:  hex.EncodeToString(sealed),
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal envelope: %v", ErrEncrypt, err)
	}
	return string(out), nil
}

// DecryptField opens an envelope produced by [EncryptField]. Any input that
// is not a valid envelope for priv (legacy plaintext, corrupted data, a
// different key) fails with an error wrapping [ErrDecrypt].
func DecryptField(serialized string, priv *PrivateKey) (string, error) {
	if priv == nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, ErrNoPrivateKey)
	}

	var env envelope
	if err := json.Unmarshal([]byte(serialized), &env); err != nil {
		return "", fmt.Errorf("%w: not an envelope", ErrDecrypt)
	}
	if env.V != envelopeVersion {
		return "", fmt.Errorf("%w: unsupported envelope version %d", ErrDecrypt, env.V)
	}

	ephPub, err := decodeComponent("ephemeralPK", env.EphemeralPK, curve25519.PointSize)
	if err != nil {
		return "", err
	}
	nonce, err := decodeComponent("nonce", env.Nonce, chacha20poly1305.NonceSize)
	if err != nil {
		return "", err
	}
	sealed, err := hex.DecodeString(env.CipherText)
	if err != nil || len(sealed) < chacha20poly1305.Overhead {
		return "", fmt.Errorf("%w: malformed cipherText", ErrDecrypt)
	}

	recipient, err := priv.Public()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	shared, err := curve25519.X25519(priv[:], ephPub)
	if err != nil {
		return "", fmt.Errorf("%w: key agreement: %v", ErrDecrypt, err)
	}

	aead, err := newFieldAEAD(shared, ephPub, recipient[:])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	plaintext, err := aead.Open(nil, nonce, sealed, ephPub)
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed", ErrDecrypt)
	}
	return string(plaintext), nil
}

func decodeComponent(name, value string, size int) ([]byte, error) {
	raw, err := hex.DecodeString(value)
	if err != nil || len(raw) != size {
		return nil, fmt.Errorf("%w: malformed %s", ErrDecrypt, name)
	}
	return raw, nil
}

func newFieldAEAD(shared, ephPub, recipientPub []byte) (cipher.AEAD, error) {
	salt := make([]byte, 0, len(ephPub)+len(recipientPub))
	salt = append(salt, ephPub...)
	salt = append(salt, recipientPub...)

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared, salt, []byte(fieldEnvelopeInfo)), key); err != nil {
		return nil, fmt.Errorf("derive field key: %w", err)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}
	return aead, nil
}
