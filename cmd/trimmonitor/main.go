// Package main provides the CLI entry point for trimmonitor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/trimmonitor/pkg/adapters/filesink"
	"github.com/user/trimmonitor/pkg/adapters/ggrenderer"
	"github.com/user/trimmonitor/pkg/adapters/logger"
	"github.com/user/trimmonitor/pkg/adapters/nullsink"
	"github.com/user/trimmonitor/pkg/adapters/osfilesystem"
	"github.com/user/trimmonitor/pkg/config"
	"github.com/user/trimmonitor/pkg/ports"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "trimmonitor",
		Usage:       l10n.T("Headless trim monitor with match frames"),
		Description: l10n.T("trimmonitor extracts match frames and renders the trim monitor of a video editor without a GUI."),
		Version:     version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    l10n.T("YAML configuration file"),
				Category: l10n.T("Configuration"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"Q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "debug",
				Aliases:  []string{"d"},
				Usage:    l10n.T("Enable debug output"),
				Category: l10n.T("Debug"),
			},
			&cli.StringFlag{
				Name:     "debug-dir",
				Usage:    l10n.T("Directory for debug output"),
				Category: l10n.T("Debug"),
			},
		},
		Commands: []*cli.Command{
			extractCommand(),
			snapshotCommand(),
			probeCommand(),
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, l10n.F("trimmonitor version %s", version))
					return nil
				},
			},
		},
	}
}

// env holds the adapters shared by every command.
type env struct {
	cfg      config.Config
	log      ports.Logger
	fs       ports.FileSystem
	renderer ports.Renderer
	sink     ports.DebugSink
}

// setup loads the configuration and builds the adapters. Global flags override
// the file and the environment.
func setup(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	return &env{cfg: cfg, log: log, fs: fs, renderer: renderer, sink: sink}, nil
}

// sourceArg returns the single positional SOURCE argument.
func sourceArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(l10n.T("Exactly one SOURCE argument is required"), 2)
	}
	return c.Args().First(), nil
}
