// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package graphql is the network side of the encryption layer: it sends
// GraphQL operations over HTTP and runs every exchange through an
// [adapter.Cycle], so callers only ever see plaintext contacts.
//
// Transport failures are mapped to the sentinels in errors.go so callers can
// use [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package graphql

//go:generate mockgen -source=interfaces.go -destination=../mock/graphql_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
)

// Client executes GraphQL operations.
type Client interface {
	// Execute forwards op through its adapter, POSTs it and maps the
	// response back. A response with GraphQL errors is returned together
	// with an error wrapping [ErrGraphQL].
	Execute(ctx context.Context, op adapter.Operation) (adapter.Response, error)
}
