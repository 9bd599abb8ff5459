// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/hkdf"
)

const searchTokenInfo = "go-contact-keeper search token v1"

// ComputeToken returns the hex encoded HMAC-SHA256 of discriminator under a
// key derived from priv. Equal discriminators under the same private key
// always give equal tokens, which lets the server match encrypted records by
// equality without ever seeing the plaintext. A nil key yields "".
func ComputeToken(discriminator string, priv *PrivateKey) string {
	if priv == nil {
		return ""
	}
	return computeToken(deriveSearchKey(priv), discriminator)
}

// deriveSearchKey domain-separates the HMAC key from the X25519 scalar so
// the same private key material is never used for two primitives.
func deriveSearchKey(priv *PrivateKey) []byte {
	key := make([]byte, sha256.Size)
	// HKDF-SHA256 can emit up to 255*32 bytes, a 32 byte read never fails.
	_, _ = io.ReadFull(hkdf.New(sha256.New, priv[:], nil, []byte(searchTokenInfo)), key)
	return key
}

func computeToken(key []byte, discriminator string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(discriminator))
	return hex.EncodeToString(mac.Sum(nil))
}

type tokenGenerator struct {
	key []byte
}

// NewTokenGenerator returns a [TokenGenerator] bound to the private key of
// kp. Without a private key every token is empty and Tokens returns nil.
func NewTokenGenerator(kp KeyPair) TokenGenerator {
	if !kp.CanDecrypt() {
		return &tokenGenerator{}
	}
	return &tokenGenerator{key: deriveSearchKey(kp.private)}
}

func (g *tokenGenerator) Token(discriminator string) string {
	if g.key == nil {
		return ""
	}
	return computeToken(g.key, discriminator)
}

func (g *tokenGenerator) Tokens(fields map[string]string) map[string]string {
	if g.key == nil {
		return nil
	}

	tokens := make(map[string]string, len(fields))
	for name, value := range fields {
		if value == "" {
			continue
		}
		tokens[name] = computeToken(g.key, value)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
