package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/crypto"
	"github.com/MKhiriev/go-contact-keeper/internal/graphql"
	"github.com/MKhiriev/go-contact-keeper/internal/keys"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/metrics"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

// App owns every long-lived dependency of one client invocation.
type App struct {
	Config     *config.ClientConfig
	Logger     *logger.Logger
	Actor      string
	Keys       *keys.Manager
	KeyPair    crypto.KeyPair
	KeySource  keys.Source
	Stats      *metrics.Stats
	Dispatcher *adapter.Dispatcher
	Services   *service.Services

	storages     *store.Storages
	closeWrapper func() error
}

// NewApp wires the client. On error everything opened so far is closed.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	app := &App{Config: cfg, Logger: log, Stats: metrics.NewStats(), closeWrapper: func() error { return nil }}

	if err := app.init(ctx); err != nil {
		if closeErr := app.Close(ctx); closeErr != nil {
			log.Warn().Err(closeErr).Str("func", "NewApp").Msg("error releasing partially built app")
		}
		return nil, err
	}
	return app, nil
}

func (a *App) init(ctx context.Context) error {
	var err error

	a.storages, err = store.NewStorages(ctx, a.Config.Storage, a.Logger)
	if err != nil {
		return fmt.Errorf("open key store: %w", err)
	}

	wrapper, closeWrapper, err := keys.OpenWrapper(ctx, a.Config.Keys)
	if err != nil {
		return fmt.Errorf("open key wrapper: %w", err)
	}
	a.closeWrapper = closeWrapper

	a.Actor = keys.ResolveActor(a.Config.App.Actor, a.Config.Adapter.Token, a.Logger)
	a.Keys = keys.NewManager(a.storages.KeyPairRepository, wrapper, a.Logger)

	provider := keys.NewProvider(a.Config.Keys, a.Actor, a.storages.KeyPairRepository, wrapper, a.Logger)
	a.KeyPair, a.KeySource, err = provider.KeyPair(ctx)
	if err != nil {
		return fmt.Errorf("load key pair: %w", err)
	}

	cryptoMetrics, err := metrics.NewCryptoMetrics(a.Stats.MeterProvider())
	if err != nil {
		return fmt.Errorf("create crypto metrics: %w", err)
	}

	registry := adapter.NewDefaultRegistry(a.KeyPair, adapter.Options{
		Strict:      a.Config.App.StrictEncryption,
		Concurrency: a.Config.App.Concurrency,
		Logger:      a.Logger,
		Metrics:     cryptoMetrics,
	})
	a.Dispatcher = adapter.NewDispatcher(a.KeyPair, registry, a.Logger)

	gql, err := graphql.NewClient(a.Config.Adapter, a.Config.App, a.Dispatcher, a.Logger)
	if err != nil {
		return fmt.Errorf("create graphql client: %w", err)
	}
	a.Services = service.NewServices(gql, a.Logger)

	a.Logger.Debug().
		Str("func", "App.init").
		Str("actor", a.Actor).
		Str("key_source", string(a.KeySource)).
		Bool("bypass", a.Dispatcher.Bypass()).
		Msg("client initialized")
	return nil
}

// Close releases the key wrapper, the key store and the meter provider.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.closeWrapper != nil {
		errs = append(errs, a.closeWrapper())
	}
	if a.storages != nil {
		errs = append(errs, a.storages.Close())
	}
	if a.Stats != nil {
		errs = append(errs, a.Stats.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
