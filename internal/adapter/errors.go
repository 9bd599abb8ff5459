package adapter

import "errors"

var (
	// ErrInvalidPhase is returned when a cycle step is called out of order.
	ErrInvalidPhase = errors.New("operation cycle: invalid phase")

	// ErrPlaintextLeak is returned by write adapters in strict mode when a
	// designated field could not be encrypted. The operation must not be
	// sent.
	ErrPlaintextLeak = errors.New("designated field would be sent in plaintext")
)
