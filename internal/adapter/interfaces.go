// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the transparent field-level encryption layer between
// the GraphQL client and the network.
//
// Each GraphQL operation name selects an [Adapter] from a fixed [Registry].
// Forward encrypts the designated contact fields of the outbound variables
// and attaches search tokens under "hmacs"; Map decrypts the designated
// fields of the inbound data. Unknown operations, and every operation when
// no private key is configured, go through the identity "default" adapter.
//
// A [Dispatcher] selects adapters and a [Cycle] drives one
// request/response exchange through the Idle, Forwarding, InFlight, Mapping
// and Done phases.
package adapter

import "context"

// Adapter is a named, stateless pair of payload transformations.
type Adapter interface {
	// Name is the GraphQL operation name the adapter applies to.
	Name() string

	// Forward transforms the outbound operation before it is sent. It never
	// modifies op in place. A non-nil error (strict mode only) means the
	// operation must not be sent.
	Forward(ctx context.Context, op Operation) (Operation, error)

	// Map transforms the inbound response. Per-field failures leave the
	// field as received.
	Map(ctx context.Context, resp Response) Response
}
