// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"sort"

	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/metrics"
	"github.com/MKhiriev/go-contact-keeper/internal/record"
)

// Registry maps operation names to adapters. It is filled at startup and
// read-only afterwards, so concurrent lookups are safe.
type Registry struct {
	adapters map[string]Adapter
	fallback Adapter
	log      *logger.Logger
}

// NewRegistry creates an empty registry whose fallback is the identity
// adapter.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		adapters: make(map[string]Adapter),
		fallback: NewDefaultAdapter(),
		log:      log,
	}
}

// Register adds a under its name. A second adapter with the same name
// replaces the first; this is a configuration mistake and is logged.
func (r *Registry) Register(a Adapter) {
	if _, dup := r.adapters[a.Name()]; dup {
		r.log.Warn().
			Str("func", "Registry.Register").
			Str("adapter", a.Name()).
			Msg("adapter registered twice, last registration wins")
	}
	if a.Name() == DefaultName {
		r.fallback = a
	}
	r.adapters[a.Name()] = a
}

// Lookup returns the adapter registered under exactly name.
func (r *Registry) Lookup(name string) (Adapter, bool) {
	a, ok := r.adapters[name]
	return a, ok
}

// Default returns the identity adapter.
func (r *Registry) Default() Adapter {
	return r.fallback
}

// Names lists the registered operation names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for n := range r.adapters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Options configures the adapters built by [NewDefaultRegistry].
type Options struct {
	// Strict makes write adapters fail instead of sending a designated
	// field in plaintext.
	Strict bool
	// Concurrency bounds parallel field processing inside one record.
	Concurrency int
	Logger      *logger.Logger
	Metrics     metrics.CryptoMetrics
}

// NewDefaultRegistry builds the registry of every contact operation bound
// to kp.
func NewDefaultRegistry(kp crypto.KeyPair, opts Options) *Registry {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.NoopCryptoMetrics()
	}

	transformer := record.NewTransformer(
		crypto.NewFieldCipher(kp),
		record.WithLogger(log),
		record.WithMetrics(m),
		record.WithConcurrency(opts.Concurrency),
	)
	tokens := crypto.NewTokenGenerator(kp)
	contactFields := record.FieldSets[record.KindContact]

	contact := func(name, input, output string, many bool) Adapter {
		return &contactAdapter{
			name:        name,
			input:       input,
			output:      output,
			many:        many,
			fields:      contactFields,
			transformer: transformer,
			tokens:      tokens,
			strict:      opts.Strict,
			log:         log,
		}
	}

	r := NewRegistry(log)
	for _, a := range []Adapter{
		NewDefaultAdapter(),
		contact(CreateContactName, "createContactInput", CreateContactName, false),
		contact(UpdateContactName, "updateContactInput", UpdateContactName, false),
		contact(ContactName, "", ContactName, false),
		contact(ContactsName, "", ContactsName, true),
		&searchAdapter{
			fields:      record.FieldSets[record.KindSearchResult],
			transformer: transformer,
			tokens:      tokens,
		},
	} {
		r.Register(a)
	}
	return r
}
