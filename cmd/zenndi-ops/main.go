package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"github.com/zenndi/zenndi-ops/internal/app"
	"github.com/zenndi/zenndi-ops/internal/config"
)

// silentArg selects the non-interactive mode used by cron jobs.
const silentArg = "pg_backup_silent"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cliApp := newCLI(run)

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newCLI builds the command line surface. Positional arguments are never
// commands: anything other than silentArg opens the menu.
func newCLI(action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name:            "zenndi-ops",
		Usage:           "back up the Postgres container to MinIO",
		ArgsUsage:       "[" + silentArg + "]",
		HideHelp:        true,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: config.DefaultEnvFile,
				Usage: "path to an optional .env file",
			},
		},
		Action: action,
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer application.Shutdown()

	if c.Args().First() == silentArg {
		application.RunSilent(c.Context)
		return nil
	}

	return application.RunInteractive(c.Context)
}
