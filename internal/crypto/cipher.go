// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

type fieldCipher struct {
	keys KeyPair
}

// NewFieldCipher binds the field envelope functions to kp.
func NewFieldCipher(kp KeyPair) FieldCipher {
	return &fieldCipher{keys: kp}
}

func (c *fieldCipher) Encrypt(plaintext string) (string, error) {
	if !c.keys.CanEncrypt() {
		return "", fmt.Errorf("%w: %w", ErrEncrypt, ErrNoPublicKey)
	}
	return EncryptField(plaintext, c.keys.public)
}

func (c *fieldCipher) Decrypt(serialized string) (string, error) {
	return DecryptField(serialized, c.keys.private)
}
