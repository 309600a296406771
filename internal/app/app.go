// Package app wires configuration, engines, the harness and the presentation
// layers into the fibcompare command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agbru/fibcompare/internal/config"
	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/harness"
	"github.com/agbru/fibcompare/internal/logging"
	"github.com/agbru/fibcompare/internal/metrics"
	"github.com/agbru/fibcompare/internal/ui"
)

// Application represents one fibcompare invocation.
type Application struct {
	Config      config.AppConfig
	Factory     fibonacci.CalculatorFactory
	ErrWriter   io.Writer
	Logger      logging.Logger
	ProgramName string
	clock       harness.Clock
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithClock replaces the harness clock, mainly for tests.
func WithClock(c harness.Clock) AppOption {
	return func(a *Application) { a.clock = c }
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, ProgramName: "fibcompare"}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.GlobalFactory()
	}

	var cmdArgs []string
	if len(args) > 0 {
		app.ProgramName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(app.ProgramName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	a.setupLogging()
	if a.Config.Metrics {
		defer a.dumpMetrics()
	}

	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	switch a.Config.Mode {
	case config.ModeTiming:
		return a.runTiming(ctx, out)
	case config.ModeGraph:
		return a.runGraph(ctx, out)
	case config.ModeVerify:
		return a.runVerify(ctx, out)
	case config.ModeTUI:
		return a.runTUI(ctx)
	}
	return a.runEngine(ctx, out)
}

// setupLogging installs a console logger on the error stream at the
// configured level, both as a.Logger and as zerolog's global logger.
func (a *Application) setupLogging() {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := logging.NewConsoleLogger(a.ErrWriter, a.ProgramName, level, a.Config.NoColor)
	log.Logger = logger.Zerolog()
	a.Logger = logger
}

// lifecycle bounds ctx by the configured timeout and by SIGINT/SIGTERM.
func (a *Application) lifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	cancelTimeout := context.CancelFunc(func() {})
	if a.Config.Timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, a.Config.Timeout)
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

func (a *Application) dumpMetrics() {
	if err := metrics.WriteText(a.ErrWriter); err != nil {
		a.Logger.Error("writing metrics", err)
	}
}

// handleError prints a status line for err on the error stream and returns
// its exit code.
func (a *Application) handleError(err error) int {
	return apperrors.HandleCalculationError(err, 0, a.ErrWriter, ui.Colors{})
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeFor maps an error returned by New to an exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil, IsHelpError(err):
		return apperrors.ExitSuccess
	}
	var cfgErr apperrors.ConfigError
	if errors.As(err, &cfgErr) {
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitErrorGeneric
}

// newHarness pairs the fast doubling engine with the Binet float engine.
func (a *Application) newHarness() (*harness.Harness, error) {
	intCalc, err := a.Factory.Get("int")
	if err != nil {
		return nil, fmt.Errorf("integer engine unavailable: %w", err)
	}
	opts := a.Config.ToCalculationOptions()
	hopts := []harness.Option{harness.WithLogger(a.Logger)}
	if a.clock != nil {
		hopts = append(hopts, harness.WithClock(a.clock))
	}
	return harness.New(
		harness.IntegerMethod(intCalc, opts),
		harness.FloatMethod(fibonacci.NewBinet(), opts),
		hopts...,
	), nil
}
