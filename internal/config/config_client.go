package config

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
)

// ProductionEnv is the App.Env value of production deployments.
const ProductionEnv = "production"

// ClientApp holds client-side application settings.
type ClientApp struct {
	Env              string
	Actor            string
	HashKey          string
	StrictEncryption bool
	Concurrency      int
}

// Production reports whether the client runs in production.
func (a ClientApp) Production() bool {
	return a.Env == ProductionEnv
}

// ClientAdapter holds network settings used by the GraphQL transport.
type ClientAdapter struct {
	HTTPAddress    string
	GraphQLPath    string
	RequestTimeout time.Duration
	Token          string
}

// ClientKeys holds the key material sources.
type ClientKeys struct {
	PrivateKey string
	PublicKey  string
	File       string
	Passphrase string
	KMSURL     string
}

// ClientDB contains key store database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path or PostgreSQL connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Keys    ClientKeys
	Storage ClientStorage
}

// GetClientConfig builds and validates the client config from defaults,
// ./.env, environment variables, the flags of cmd (may be nil) and the JSON
// file named by any of them.
func GetClientConfig(cmd *cli.Command) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(cmd).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientConfig()
	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}
	return clientCfg, nil
}

func (cfg *StructuredConfig) clientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Env:              cfg.App.Env,
			Actor:            cfg.App.Actor,
			HashKey:          cfg.App.HashKey,
			StrictEncryption: cfg.App.StrictEncryption,
			Concurrency:      cfg.App.Concurrency,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GraphQLPath:    cfg.Adapter.GraphQLPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Keys: ClientKeys{
			PrivateKey: cfg.Keys.PrivateKey,
			PublicKey:  cfg.Keys.PublicKey,
			File:       cfg.Keys.File,
			Passphrase: cfg.Keys.Passphrase,
			KMSURL:     cfg.Keys.KMSURL,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
