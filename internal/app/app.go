// Package app wires configuration, logging, metrics and the two front ends
// (one-shot CLI and interactive TUI) into a runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/alexbl00m/vo2calc/internal/config"
	apperrors "github.com/alexbl00m/vo2calc/internal/errors"
	"github.com/alexbl00m/vo2calc/internal/logging"
	"github.com/alexbl00m/vo2calc/internal/server"
	"github.com/alexbl00m/vo2calc/internal/tui"
	"github.com/alexbl00m/vo2calc/internal/ui"
)

// Application represents the vo2calc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}

	programName := "vo2calc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else if a.Config.Quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor, a.Config.Theme)

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	return a.runCalculate(ctx, out)
}

// runTUI launches the interactive form, with the optional metrics endpoint
// served alongside it for the lifetime of the session.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var metrics *server.Metrics
	if a.Config.MetricsAddr != "" {
		metrics = server.NewMetrics()
	}

	g, ctx := errgroup.WithContext(ctx)
	if metrics != nil {
		addr := a.Config.MetricsAddr
		g.Go(func() error {
			return server.Serve(ctx, addr, metrics, a.Logger)
		})
	}

	tuiCtx, cancel := context.WithCancel(ctx)
	code := tui.Run(tuiCtx, a.Config, Version, metrics, a.Logger)
	cancel()

	if err := g.Wait(); err != nil && code == apperrors.ExitSuccess {
		a.Logger.Error("metrics server error", logging.Err(err))
		code = apperrors.ExitErrorGeneric
	}
	return code
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForError maps a startup error to a process exit code.
// Configuration errors (bad flag values, unknown protocol or theme, inputs
// outside the documented ranges) exit with ExitErrorConfig; anything else
// gets the generic failure code.
func ExitCodeForError(err error) int {
	var cfgErr apperrors.ConfigError
	if errors.As(err, &cfgErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}
