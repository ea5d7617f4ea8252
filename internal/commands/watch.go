package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/okra-platform/skelgen/internal/config"
	"github.com/okra-platform/skelgen/internal/pipeline"
	"github.com/okra-platform/skelgen/internal/watch"
)

// Watch generates once, then regenerates whenever the input changes, until
// interrupted. Failed runs are reported and watching continues.
func (c *Controller) Watch(ctx context.Context) error {
	opts, err := c.resolveOptions()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(log.Logger, c.stdout())
	c.regenerate(ctx, p, opts)

	patterns, exclude := c.watchPatterns(opts)
	watcher, err := watch.NewFileWatcher(patterns, exclude, func(path string, op fsnotify.Op) {
		fmt.Fprintf(c.stdout(), "Change detected in %s\n", filepath.Base(path))
		c.regenerate(ctx, p, opts)
	}, log.Logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.AddDirectory(filepath.Dir(opts.Input)); err != nil {
		return err
	}

	fmt.Fprintf(c.stdout(), "Watching %s for changes. Press Ctrl+C to stop.\n", opts.Input)
	if err := watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch error: %w", err)
	}
	return nil
}

func (c *Controller) regenerate(ctx context.Context, p *pipeline.Pipeline, opts pipeline.Options) {
	if _, err := p.Run(ctx, opts); err != nil {
		log.Error().Err(err).Str("input", opts.Input).Msg("generation failed")
		fmt.Fprintf(c.stdout(), "Generation failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.stdout(), "Output generated in %s\n", opts.Output)
}

// watchPatterns always watches the input file and never the output file,
// whatever the config says
func (c *Controller) watchPatterns(opts pipeline.Options) ([]string, []string) {
	cfg, _, err := c.loadConfig()
	if err != nil {
		cfg = config.Default()
	}

	patterns := append([]string{filepath.Base(opts.Input)}, cfg.Watch.Patterns...)
	exclude := append([]string{filepath.Base(opts.Output)}, cfg.Watch.Exclude...)
	return patterns, exclude
}
