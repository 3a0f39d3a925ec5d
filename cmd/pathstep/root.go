package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathstep/internal/config"
	"github.com/katalvlaran/pathstep/internal/render"
	"github.com/katalvlaran/pathstep/internal/telemetry"
)

var version = "dev"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	cfg      config.Config
	logger   *slog.Logger
	renderer *render.Renderer
	shutdown func(context.Context) error

	configPath string
	logLevel   string
	color      bool
	telemetry  bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "pathstep",
		Short:         "Step through Dijkstra's shortest-path algorithm",
		Long:          `pathstep builds a small undirected weighted graph and runs Dijkstra's algorithm over it one work unit at a time, showing the distance estimates, the cursor vertex and the frontier after every step.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.flush(cmd.Context())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.color, "color", true, "style the output")
	pf.BoolVar(&a.telemetry, "telemetry", false, "write OpenTelemetry spans and metrics to stderr")

	root.AddCommand(newRunCmd(a), newPathCmd(a))

	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger and renderer.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return a.fail(err)
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if err = cfg.Validate(); err != nil {
		return a.fail(err)
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.Level()}))
	a.renderer = render.New(cfg.Color)

	if a.telemetry {
		a.shutdown, err = telemetry.Init(cmd.Context(), a.errOut, version)
		if err != nil {
			return a.fail(err)
		}
	}
	a.logger.Debug("configuration loaded",
		slog.String("config", a.configPath),
		slog.Int("batch", cfg.Batch),
		slog.String("preset", cfg.Preset),
	)

	return nil
}

// fail prints err, flushes telemetry and returns err, since the root
// command silences errors and cobra skips PersistentPostRunE after one.
func (a *app) fail(err error) error {
	fmt.Fprintln(a.errOut, "error:", err)
	if ferr := a.flush(context.Background()); ferr != nil {
		fmt.Fprintln(a.errOut, "error:", ferr)
	}

	return err
}

// flush shuts the telemetry providers down once.
func (a *app) flush(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	shutdown := a.shutdown
	a.shutdown = nil

	return shutdown(ctx)
}

// stdoutIsTerminal reports whether out is an interactive terminal.
func stdoutIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
