package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-contact-keeper/internal/client"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const (
	flagInput   = "input"
	flagName    = "name"
	flagEmail   = "email"
	flagPhone   = "phone"
	flagAddress = "postal-address"
	flagTitle   = "title"
	flagBlurb   = "blurb"
	flagOffset  = "offset"
	flagLimit   = "limit"
)

var errMissingID = errors.New("contact id argument is required")

func contactFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: flagInput, Aliases: []string{"i"}, Usage: "Contact JSON file, - for stdin"},
		&cli.StringFlag{Name: flagName, Usage: "Full name"},
		&cli.StringSliceFlag{Name: flagEmail, Usage: "Email address, repeatable"},
		&cli.StringSliceFlag{Name: flagPhone, Usage: "Phone number, repeatable"},
		&cli.StringFlag{Name: flagAddress, Usage: "Postal address"},
		&cli.StringFlag{Name: flagTitle, Usage: "Job title"},
		&cli.StringFlag{Name: flagBlurb, Usage: "Short bio"},
	}
}

func contactsCommand() *cli.Command {
	return &cli.Command{
		Name:  "contacts",
		Usage: "Create, update and read contacts",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a contact",
				Flags: contactFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					c, err := contactFromCommand(cmd, os.Stdin)
					if err != nil {
						return err
					}
					return withApp(ctx, cmd, func(ctx context.Context, app *client.App) error {
						out, err := app.Services.ContactService.Create(ctx, c)
						if err != nil {
							return err
						}
						return printJSON(os.Stdout, out)
					})
				},
			},
			{
				Name:      "update",
				Usage:     "Update the set fields of a contact",
				ArgsUsage: "<id>",
				Flags:     contactFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id := cmd.Args().First()
					if id == "" {
						return errMissingID
					}
					c, err := contactFromCommand(cmd, os.Stdin)
					if err != nil {
						return err
					}
					return withApp(ctx, cmd, func(ctx context.Context, app *client.App) error {
						out, err := app.Services.ContactService.Update(ctx, id, c)
						if err != nil {
							return err
						}
						return printJSON(os.Stdout, out)
					})
				},
			},
			{
				Name:      "get",
				Usage:     "Show one contact",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id := cmd.Args().First()
					if id == "" {
						return errMissingID
					}
					return withApp(ctx, cmd, func(ctx context.Context, app *client.App) error {
						out, err := app.Services.ContactService.Get(ctx, id)
						if err != nil {
							return err
						}
						return printJSON(os.Stdout, out)
					})
				},
			},
			{
				Name:  "list",
				Usage: "List contacts",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: flagOffset, Usage: "Number of contacts to skip"},
					&cli.IntFlag{Name: flagLimit, Value: 20, Usage: "Page size"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					q := models.ListContactsQuery{
						Offset: int(cmd.Int(flagOffset)),
						Limit:  int(cmd.Int(flagLimit)),
					}
					return withApp(ctx, cmd, func(ctx context.Context, app *client.App) error {
						out, err := app.Services.ContactService.List(ctx, q)
						if err != nil {
							return err
						}
						return printJSON(os.Stdout, out)
					})
				},
			},
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find contacts by exact name",
		ArgsUsage: "[name]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagName, Usage: "Name to look for"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.String(flagName)
			if name == "" {
				name = cmd.Args().First()
			}
			return withApp(ctx, cmd, func(ctx context.Context, app *client.App) error {
				out, err := app.Services.ContactService.Search(ctx, name)
				if err != nil {
					return err
				}
				return printJSON(os.Stdout, out)
			})
		},
	}
}

// contactFromCommand reads the --input document, if any, and applies the
// field flags on top of it.
func contactFromCommand(cmd *cli.Command, stdin io.Reader) (models.Contact, error) {
	var c models.Contact

	if path := cmd.String(flagInput); path != "" {
		r := stdin
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return models.Contact{}, fmt.Errorf("error opening contact input: %w", err)
			}
			defer f.Close()
			r = f
		}
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return models.Contact{}, fmt.Errorf("error decoding contact input: %w", err)
		}
	}

	if v := cmd.String(flagName); v != "" {
		c.Name = v
	}
	if v := cmd.StringSlice(flagEmail); len(v) > 0 {
		c.Emails = v
	}
	if v := cmd.StringSlice(flagPhone); len(v) > 0 {
		c.Phones = v
	}
	if v := cmd.String(flagAddress); v != "" {
		c.Address = v
	}
	if v := cmd.String(flagTitle); v != "" {
		c.Title = v
	}
	if v := cmd.String(flagBlurb); v != "" {
		c.Blurb = v
	}
	return c, nil
}
