package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-contact-keeper/internal/client"
	"github.com/MKhiriev/go-contact-keeper/internal/keys"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const (
	flagOut         = "out"
	flagShowPrivate = "show-private"
)

type generatedKey struct {
	Record models.KeyPairRecord `json:"record"`
	Keys   keys.KeyFile         `json:"keys"`
}

type shownKey struct {
	Source keys.Source  `json:"source"`
	Actor  string       `json:"actor,omitempty"`
	Bypass bool         `json:"bypass"`
	Keys   keys.KeyFile `json:"keys"`
}

func keysCommand() *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "Manage encryption key pairs",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate a key pair for the actor and store it wrapped",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagOut, Usage: "Also write the key pair to this key file"},
					&cli.BoolFlag{Name: flagShowPrivate, Usage: "Print the private key"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withApp(ctx, cmd, func(ctx context.Context, app *client.App) error {
						rec, kp, err := app.Keys.Generate(ctx, app.Actor)
						if err != nil {
							return err
						}
						if out := cmd.String(flagOut); out != "" {
							if err := keys.WriteKeyFile(out, keys.NewKeyFile(kp, true)); err != nil {
								return err
							}
						}
						return printJSON(os.Stdout, generatedKey{
							Record: rec,
							Keys:   keys.NewKeyFile(kp, cmd.Bool(flagShowPrivate)),
						})
					})
				},
			},
			{
				Name:  "show",
				Usage: "Show the key pair in use and where it came from",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withApp(ctx, cmd, func(_ context.Context, app *client.App) error {
						return printJSON(os.Stdout, shownKey{
							Source: app.KeySource,
							Actor:  app.Actor,
							Bypass: app.Dispatcher.Bypass(),
							Keys:   keys.NewKeyFile(app.KeyPair, false),
						})
					})
				},
			},
			{
				Name:  "list",
				Usage: "List the stored key pairs of the actor",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withApp(ctx, cmd, func(ctx context.Context, app *client.App) error {
						records, err := app.Keys.List(ctx, app.Actor)
						if err != nil {
							return err
						}
						return printJSON(os.Stdout, records)
					})
				},
			},
		},
	}
}
