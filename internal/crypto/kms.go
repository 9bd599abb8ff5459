// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"

	"github.com/MKhiriev/go-contact-keeper/models"

	// Register KMS provider drivers
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSWrapper wraps private keys with a gocloud.dev secrets keeper. The
// keeper URL selects the provider, e.g. base64key://... for a local key or
// hashivault://mykey for Vault transit.
type KMSWrapper struct {
	keeper *secrets.Keeper
}

// OpenKMSWrapper opens the keeper behind keeperURL.
func OpenKMSWrapper(ctx context.Context, keeperURL string) (*KMSWrapper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keeperURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return NewKMSWrapper(keeper), nil
}

// NewKMSWrapper wraps an already opened keeper. The wrapper takes
// ownership; Close closes the keeper.
func NewKMSWrapper(keeper *secrets.Keeper) *KMSWrapper {
	return &KMSWrapper{keeper: keeper}
}

func (w *KMSWrapper) Method() string {
	return models.WrapMethodKMS
}

func (w *KMSWrapper) Wrap(ctx context.Context, plain []byte) ([]byte, error) {
	wrapped, err := w.keeper.Encrypt(ctx, plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrap, err)
	}
	return wrapped, nil
}

func (w *KMSWrapper) Unwrap(ctx context.Context, wrapped []byte) ([]byte, error) {
	plain, err := w.keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnwrap, err)
	}
	return plain, nil
}

// Close releases the keeper.
func (w *KMSWrapper) Close() error {
	return w.keeper.Close()
}
