package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vbridge/internal/config"
	"github.com/vango-dev/vbridge/internal/errors"
	"github.com/vango-dev/vbridge/internal/showcase"
	"github.com/vango-dev/vbridge/pkg/bridge"
	"github.com/vango-dev/vbridge/pkg/host"
	"github.com/vango-dev/vbridge/pkg/render"
	"github.com/vango-dev/vbridge/pkg/vdom"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// app is the state shared by every subcommand, built once the persistent
// flags are parsed.
type app struct {
	configDir string
	verbose   bool

	cfg      *config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	catalog  *showcase.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "vbridge",
		Short: "Render options-style components through a class-based host",
		Long: `vbridge adapts options-style component definitions (props, data,
computed, watch, methods, hooks, render) into host component classes.

The CLI renders the built-in showcase components to HTML, describes
their generated classes and serves a live preview.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configDir, "config", "c", ".", "Directory containing vbridge.json")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		renderCmd(a),
		inspectCmd(a),
		serveCmd(a),
		versionCmd(),
	)

	return rootCmd
}

// init loads the configuration and generates the showcase classes.
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return err
	}

	level := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	policy, err := bridge.ParseUnmountPolicy(cfg.UnmountPolicy)
	if err != nil {
		return errors.New("E201").Wrap(err)
	}
	opts := []bridge.Option{
		bridge.WithLogger(a.log),
		bridge.WithUnmountPolicy(policy),
	}
	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		opts = append(opts, bridge.WithMetrics(bridge.NewMetrics(
			bridge.WithNamespace(cfg.Metrics.Namespace),
			bridge.WithRegisterer(a.registry),
		)))
	}
	a.catalog = showcase.New(opts...)

	a.log.Debug("configured",
		"config", cfg.Path(),
		"unmountPolicy", policy,
		"metrics", cfg.Metrics.Enabled,
	)
	return nil
}

// renderHTML mounts the named showcase component with props, serializes the
// committed tree and unmounts it again.
func (a *app) renderHTML(ctx context.Context, name string, props vdom.Props, pretty bool) (string, error) {
	entry, err := a.catalog.Get(name)
	if err != nil {
		return "", err
	}

	root := host.New(
		host.WithContext(ctx),
		host.WithLogger(a.log),
		host.WithRenderer(render.RendererConfig{
			Pretty: pretty || a.cfg.Render.Pretty,
			Indent: a.cfg.Render.Indent,
		}),
	)
	if err := root.Mount(entry.Class, props); err != nil {
		return "", err
	}
	defer root.Unmount()

	html, err := root.HTML()
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return html, nil
}
