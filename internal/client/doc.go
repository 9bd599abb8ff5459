// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the command line client: key store, key
// material, crypto metrics, the adapter dispatcher, the GraphQL transport
// and the contact services, in the order each depends on the previous.
package client
