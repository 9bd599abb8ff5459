package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-contact-keeper/internal/client"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

const flagStats = "stats"

// withApp builds the client from the flags of cmd, runs fn and releases
// the client afterwards.
func withApp(ctx context.Context, cmd *cli.Command, fn func(context.Context, *client.App) error) error {
	cfg, err := config.GetClientConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.NewClientLogger("contact-keeper", cfg.App.Production())

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Str("func", "withApp").Msg("error closing client")
		}
	}()

	runErr := fn(ctx, app)

	if cmd.Root().Bool(flagStats) {
		stats, err := app.Stats.FieldStats(ctx)
		if err != nil {
			log.Warn().Err(err).Str("func", "withApp").Msg("error collecting crypto stats")
		} else if err := printJSON(os.Stderr, stats); err != nil {
			log.Warn().Err(err).Str("func", "withApp").Msg("error printing crypto stats")
		}
	}
	return runErr
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
