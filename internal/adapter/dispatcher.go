package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// Dispatcher selects the adapter of an operation. When the key pair has no
// private key every operation gets the identity adapter, whatever its
// name.
type Dispatcher struct {
	registry *Registry
	bypass   bool
	log      *logger.Logger
}

// NewDispatcher creates a dispatcher over registry for kp.
func NewDispatcher(kp crypto.KeyPair, registry *Registry, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	bypass := !kp.CanDecrypt()
	if bypass {
		log.Info().
			Str("func", "NewDispatcher").
			Msg("no private key configured, field encryption is bypassed")
	}
	return &Dispatcher{registry: registry, bypass: bypass, log: log}
}

// Bypass reports whether the whole layer is a passthrough.
func (d *Dispatcher) Bypass() bool {
	return d.bypass
}

// Dispatch returns the adapter registered for name, or the default adapter.
func (d *Dispatcher) Dispatch(name string) Adapter {
	if d.bypass {
		return d.registry.Default()
	}
	if a, ok := d.registry.Lookup(name); ok {
		return a
	}
	d.log.Debug().
		Str("func", "Dispatcher.Dispatch").
		Str("operation", name).
		Msg("no adapter registered, using default")
	return d.registry.Default()
}

// Forward is the outbound hook: it runs the Forward of the adapter selected
// by op.Name.
func (d *Dispatcher) Forward(ctx context.Context, op Operation) (Operation, error) {
	return d.Dispatch(op.Name).Forward(ctx, op)
}

// Map is the inbound hook: it runs the Map of the adapter selected by
// op.Name on resp.
func (d *Dispatcher) Map(ctx context.Context, op Operation, resp Response) Response {
	return d.Dispatch(op.Name).Map(ctx, resp)
}
