package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/okra-platform/skelgen/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "skelgen",
		Usage:   "Generate Python, C++ and Java class skeletons from a class description",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("SKELGEN_LOG_LEVEL"),
				Value:       "warn",
				Destination: &ctrl.Flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to skelgen.json (default: searched from the working directory up)",
				Destination: &ctrl.Flags.Config,
			},
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "class description file",
				Destination: &ctrl.Flags.Input,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "generated code file",
				Destination: &ctrl.Flags.Output,
			},
			&cli.StringFlag{
				Name:        "mode",
				Aliases:     []string{"m"},
				Usage:       "input form (auto, declaration, english)",
				Destination: &ctrl.Flags.Mode,
			},
			&cli.StringSliceFlag{
				Name:        "target",
				Aliases:     []string{"t"},
				Usage:       "target language, repeatable or comma separated (python, cpp, java)",
				Destination: &ctrl.Flags.Targets,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)

			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return ctrl.Generate(ctx)
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate skeletons once",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx)
				},
			},
			{
				Name:  "watch",
				Usage: "Regenerate skeletons whenever the input changes",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx)
				},
			},
			{
				Name:  "init",
				Usage: "Create a skelgen.json in the current directory",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx)
				},
			},
			{
				Name:  "targets",
				Usage: "List supported target languages",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Targets(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run skelgen")
	}
}
