package keys

import "errors"

var (
	// ErrInvalidKeyMaterial is returned for key strings or key files that
	// cannot be parsed, or whose public and private keys do not match.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrWrapMethodMismatch is returned when the stored key pair was wrapped
	// with a different method than the configured wrapper.
	ErrWrapMethodMismatch = errors.New("key wrap method mismatch")

	// ErrNoActor is returned when a key pair is generated without an actor.
	ErrNoActor = errors.New("no actor id")

	// ErrNoWrapper is returned when a key pair is stored without a
	// configured passphrase or KMS keeper.
	ErrNoWrapper = errors.New("no key wrapper configured")
)
