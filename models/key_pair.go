// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Wrap methods recorded alongside a stored private key.
const (
	WrapMethodPassphrase = "passphrase"
	WrapMethodKMS        = "kms"
)

// KeyPairRecord is a key pair persisted in the local key store.
//
// PublicKey is the hex encoded X25519 public key. WrappedPrivateKey is the
// base64 encoded blob produced by the key wrapper named in WrapMethod; the
// plaintext private key is never stored.
type KeyPairRecord struct {
	KeyID             string    `db:"key_id" json:"keyId"`
	ActorID           string    `db:"actor_id" json:"actorId"`
	PublicKey         string    `db:"public_key" json:"publicKey"`
	WrappedPrivateKey string    `db:"wrapped_private_key" json:"-"`
	WrapMethod        string    `db:"wrap_method" json:"wrapMethod"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
}
