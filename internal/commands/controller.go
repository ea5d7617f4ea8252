// Package commands contains the CLI commands for the application
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/okra-platform/skelgen/internal/codegen"
	"github.com/okra-platform/skelgen/internal/config"
	"github.com/okra-platform/skelgen/internal/pipeline"
	"github.com/okra-platform/skelgen/internal/schema"
)

// Flags holds command line values. Empty values fall back to skelgen.json
// and then to the built-in defaults.
type Flags struct {
	LogLevel string
	Config   string
	Input    string
	Output   string
	Mode     string
	Targets  []string
}

type Controller struct {
	Flags *Flags

	// Stdout receives the parse-tree trace and progress messages
	Stdout io.Writer
}

func (c *Controller) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

// Generate runs the pipeline once
func (c *Controller) Generate(ctx context.Context) error {
	opts, err := c.resolveOptions()
	if err != nil {
		return err
	}

	p := pipeline.New(log.Logger, c.stdout())
	if _, err := p.Run(ctx, opts); err != nil {
		return err
	}

	fmt.Fprintf(c.stdout(), "Output generated in %s\n", opts.Output)
	return nil
}

// Targets lists the registered target languages
func (c *Controller) Targets(ctx context.Context) error {
	for _, lang := range codegen.DefaultRegistry.Languages() {
		gen, err := codegen.DefaultRegistry.Get(lang)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stdout(), "%-8s %-8s %s\n", lang, gen.Label(), gen.FileExtension())
	}
	return nil
}

// resolveOptions merges skelgen.json with the command line flags. Paths from
// the config file are relative to the directory holding it.
func (c *Controller) resolveOptions() (pipeline.Options, error) {
	cfg, root, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := pipeline.Options{
		Input:   filepath.Join(root, cfg.Input),
		Output:  filepath.Join(root, cfg.Output),
		Targets: cfg.Targets,
	}
	mode := cfg.Mode

	if c.Flags != nil {
		if c.Flags.Input != "" {
			opts.Input = c.Flags.Input
		}
		if c.Flags.Output != "" {
			opts.Output = c.Flags.Output
		}
		if c.Flags.Mode != "" {
			mode = c.Flags.Mode
		}
		if targets := splitTargets(c.Flags.Targets); len(targets) > 0 {
			opts.Targets = targets
		}
	}

	form, ok := schema.ParseForm(mode)
	if !ok {
		return pipeline.Options{}, fmt.Errorf("invalid mode %q (supported: auto, declaration, english)", mode)
	}
	opts.Form = form

	return opts, nil
}

// loadConfig returns the project config and its directory. Without a config
// file the defaults apply relative to the working directory.
func (c *Controller) loadConfig() (*config.Config, string, error) {
	if c.Flags != nil && c.Flags.Config != "" {
		cfg, err := config.LoadConfigFromPath(c.Flags.Config)
		if err != nil {
			return nil, "", err
		}
		return cfg, filepath.Dir(c.Flags.Config), nil
	}

	cfg, root, err := config.LoadConfig()
	if errors.Is(err, config.ErrNotFound) {
		log.Debug().Msg("no skelgen.json found, using defaults")
		return config.Default(), "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load project config: %w", err)
	}
	log.Debug().Str("root", root).Msg("loaded skelgen.json")
	return cfg, root, nil
}

// splitTargets accepts both repeated flags and comma separated lists
func splitTargets(values []string) []string {
	var targets []string
	for _, value := range values {
		for _, target := range strings.Split(value, ",") {
			if target = strings.TrimSpace(target); target != "" {
				targets = append(targets, target)
			}
		}
	}
	return targets
}
