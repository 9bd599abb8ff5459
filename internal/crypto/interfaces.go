package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// FieldCipher encrypts and decrypts single scalar field values with a fixed
// key pair. Values produced by Encrypt are JSON cipher envelopes that are
// safe to embed as a string anywhere in a record.
type FieldCipher interface {
	// Encrypt seals plaintext with the public key. Errors wrap [ErrEncrypt].
	Encrypt(plaintext string) (string, error)

	// Decrypt opens an envelope with the private key. Legacy plaintext,
	// corrupted envelopes and envelopes for another key fail with an error
	// wrapping [ErrDecrypt]; callers keep the original value in that case.
	Decrypt(serialized string) (string, error)
}

// TokenGenerator computes deterministic search tokens (HMACs) of plaintext
// discriminators. Tokens are one-way and never encrypted.
type TokenGenerator interface {
	// Token returns the search token of one discriminator.
	Token(discriminator string) string

	// Tokens maps every non-empty discriminator to its token, keyed by the
	// same name. Returns nil when nothing was tokenized.
	Tokens(fields map[string]string) map[string]string
}

// KeyWrapper protects a private key at rest.
//
// Wrap output is opaque and self-contained; Unwrap must be called with a
// wrapper of the same Method configured with the same secret.
type KeyWrapper interface {
	// Method names the wrapping scheme ("passphrase", "kms"). It is stored
	// next to the wrapped key.
	Method() string
	Wrap(ctx context.Context, plain []byte) ([]byte, error)
	Unwrap(ctx context.Context, wrapped []byte) ([]byte, error)
}
