// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
)

// validate checks the client invariants before startup. Key strings are
// parsed here so a typo fails fast instead of silently enabling bypass.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.Concurrency < 0 {
		return fmt.Errorf("%w: negative concurrency", ErrInvalidAppConfigs)
	}

	if cfg.Keys.PrivateKey != "" {
		if _, err := crypto.ParsePrivateKey(cfg.Keys.PrivateKey); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidKeyConfigs, err)
		}
	}
	if cfg.Keys.PublicKey != "" {
		if _, err := crypto.ParsePublicKey(cfg.Keys.PublicKey); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidKeyConfigs, err)
		}
	}
	if cfg.Keys.Passphrase != "" && cfg.Keys.KMSURL != "" {
		return fmt.Errorf("%w: passphrase and kms url are mutually exclusive", ErrInvalidKeyConfigs)
	}

	return nil
}
