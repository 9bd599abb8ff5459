package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(buildInfo()).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand(info models.AppBuildInfo) *cli.Command {
	return &cli.Command{
		Name:    "contact-keeper",
		Usage:   "Manage contacts with client-side field encryption",
		Version: fmt.Sprintf("%s (%s, %s)", info.BuildVersion(), info.BuildCommit(), info.BuildDate()),
		Flags: append(config.Flags(),
			&cli.BoolFlag{Name: flagStats, Usage: "Print per-field crypto counters to stderr"},
		),
		Commands: []*cli.Command{
			keysCommand(),
			contactsCommand(),
			searchCommand(),
		},
	}
}

func buildInfo() models.AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}
