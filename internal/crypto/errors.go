package crypto

import "errors"

var (
	// ErrEncrypt wraps every failure of the field envelope encryption path.
	ErrEncrypt = errors.New("field encryption failed")
	// ErrDecrypt wraps every failure of the field envelope decryption path:
	// input that is not an envelope (legacy plaintext), an unknown envelope
	// version, malformed components, a wrong key or corrupted ciphertext.
	ErrDecrypt = errors.New("field decryption failed")

	ErrInvalidKey      = errors.New("invalid key")
	ErrKeyMismatch     = errors.New("public key does not match private key")
	ErrNoPublicKey     = errors.New("no public key configured")
	ErrNoPrivateKey    = errors.New("no private key configured")
	ErrWrap            = errors.New("key wrapping failed")
	ErrUnwrap          = errors.New("key unwrapping failed")
	ErrEmptyPassphrase = errors.New("passphrase is empty")
)
