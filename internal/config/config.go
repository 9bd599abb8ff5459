// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-contact-keeper client. It aggregates all sub-configurations and is
// populated by merging defaults, a .env file, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the GraphQL endpoint settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Keys holds the key material sources and the private key wrapping
	// settings.
	Keys Keys `envPrefix:"KEYS_"`

	// Storage holds the local key store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is the deployment environment. "production" lowers the log level
	// to Info, which hides per-field decrypt failures.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// Actor identifies whose key pair is loaded from the key store. When
	// empty the subject of Adapter.Token is used.
	// Env: APP_ACTOR
	Actor string `env:"ACTOR"`

	// HashKey is the HMAC key of the HashSHA256 request integrity header.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// StrictEncryption aborts write operations whose designated fields
	// could not all be encrypted.
	// Env: APP_STRICT_ENCRYPTION
	StrictEncryption bool `env:"STRICT_ENCRYPTION"`

	// Concurrency bounds parallel field processing inside one record.
	// Env: APP_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Adapter holds the outbound GraphQL transport settings.
type Adapter struct {
	// HTTPAddress is the base address of the API (e.g. "localhost:8080",
	// "https://api.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GraphQLPath is the endpoint path joined to HTTPAddress.
	// Env: ADAPTER_GRAPHQL_PATH
	GraphQLPath string `env:"GRAPHQL_PATH"`

	// RequestTimeout is the maximum duration of one request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent with every request.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Keys holds the key material sources, tried in order: static hex keys,
// key file, key store.
type Keys struct {
	// PrivateKey is a hex encoded X25519 private key.
	// Env: KEYS_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// PublicKey is a hex encoded X25519 public key. Optional when
	// PrivateKey is set.
	// Env: KEYS_PUBLIC_KEY
	PublicKey string `env:"PUBLIC_KEY"`

	// File is a JSON key file {"publicKey": "...", "privateKey": "..."}.
	// Env: KEYS_FILE
	File string `env:"FILE"`

	// Passphrase unlocks private keys of the key store wrapped with the
	// passphrase method.
	// Env: KEYS_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// KMSURL is a gocloud.dev secrets keeper URL (base64key://...,
	// hashivault://...) that wraps private keys of the key store.
	// Env: KEYS_KMS_URL
	KMSURL string `env:"KMS_URL"`
}

// Storage groups the configuration for the local key store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the key store database.
type DB struct {
	// DSN is a SQLite file path or a postgres:// connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Defaults applied before every other source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultGraphQLPath    = "/api-gateway/"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "contact-keeper.db"
	DefaultEnv            = "development"
	DefaultConcurrency    = 1
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:         DefaultEnv,
			Concurrency: DefaultConcurrency,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			GraphQLPath:    DefaultGraphQLPath,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
	}
}
