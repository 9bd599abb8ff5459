// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-contact-keeper/models"
)

const passphraseSaltSize = 16

// passphraseWrapper wraps private keys under a key-encryption key derived
// from a passphrase with Argon2id. The KEK exists only in memory.
type passphraseWrapper struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPassphraseWrapper constructs a passphrase [KeyWrapper] with the
// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (AES-256)
func NewPassphraseWrapper(passphrase string) (KeyWrapper, error) {
	return newPassphraseWrapper(passphrase, 1, 64*1024, 4)
}

func newPassphraseWrapper(passphrase string, time, memory uint32, threads uint8) (*passphraseWrapper, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	return &passphraseWrapper{
		passphrase:   []byte(passphrase),
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
		argonKeyLen:  32,
	}, nil
}

func (w *passphraseWrapper) Method() string {
	return models.WrapMethodPassphrase
}

// deriveKEK runs Argon2id over the passphrase and salt.
func (w *passphraseWrapper) deriveKEK(salt []byte) []byte {
	return argon2.IDKey(w.passphrase, salt, w.argonTime, w.argonMemory, w.argonThreads, w.argonKeyLen)
}

// Wrap seals plain with AES-256-GCM under a fresh KEK.
// blob = salt (16 bytes) ‖ nonce (12 bytes) ‖ ciphertext.
func (w *passphraseWrapper) Wrap(_ context.Context, plain []byte) ([]byte, error) {
	salt := make([]byte, passphraseSaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: generate salt: %v", ErrWrap, err)
	}

	gcm, err := newGCM(w.deriveKEK(salt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrap, err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %v", ErrWrap, err)
	}

	blob := make([]byte, 0, len(salt)+len(nonce)+len(plain)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plain, nil), nil
}

// Unwrap reverses Wrap. An authentication failure almost always means a
// wrong passphrase.
func (w *passphraseWrapper) Unwrap(_ context.Context, wrapped []byte) ([]byte, error) {
	if len(wrapped) < passphraseSaltSize {
		return nil, fmt.Errorf("%w: blob too short", ErrUnwrap)
	}
	salt, rest := wrapped[:passphraseSaltSize], wrapped[passphraseSaltSize:]

	gcm, err := newGCM(w.deriveKEK(salt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnwrap, err)
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize+gcm.Overhead() {
		return nil, fmt.Errorf("%w: blob too short", ErrUnwrap)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnwrap, err)
	}
	return plain, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
