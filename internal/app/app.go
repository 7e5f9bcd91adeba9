package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/agbru/accumcalc/internal/cli"
	"github.com/agbru/accumcalc/internal/config"
	apperrors "github.com/agbru/accumcalc/internal/errors"
	"github.com/agbru/accumcalc/internal/logging"
	"github.com/agbru/accumcalc/internal/metrics"
	"github.com/agbru/accumcalc/internal/runner"
	"github.com/agbru/accumcalc/internal/ui"
)

// Application represents the accumcalc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Recorder  *metrics.PrometheusRecorder
	ErrWriter io.Writer

	opener runner.Opener
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the console logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithOpener sets how runners open input files.
func WithOpener(open runner.Opener) AppOption {
	return func(a *Application) { a.opener = open }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "accumcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, runner.NewDefaultFactory().List())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "accumcalc", cfg.Verbose)
	}
	app.Recorder = metrics.NewPrometheusRecorder()
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	var code int
	if a.Config.Bench {
		code = a.runBench(ctx, out)
	} else {
		code = a.runSingle(ctx, out)
	}
	if code != apperrors.ExitSuccess {
		return code
	}
	return a.writeMetrics()
}

// newFactory builds a runner factory sharing the application's recorder,
// opener and channel capacity.
func (a *Application) newFactory(logger logging.Logger) *runner.Factory {
	opts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithRecorder(a.Recorder),
		runner.WithChannelBuffer(a.Config.Buffer),
	}
	if a.opener != nil {
		opts = append(opts, runner.WithOpener(a.opener))
	}
	return runner.NewDefaultFactory(opts...)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, runner.NewDefaultFactory().List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// writeMetrics dumps the recorder when -metrics-out is set.
func (a *Application) writeMetrics() int {
	if a.Config.MetricsOut == "" {
		return apperrors.ExitSuccess
	}
	if err := cli.WriteMetricsFile(a.Config.MetricsOut, a.Recorder); err != nil {
		err = apperrors.WrapError(err, "writing metrics to %s", a.Config.MetricsOut)
		a.Logger.Error("failed to write metrics", err)
		return apperrors.ExitCode(err)
	}
	a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsOut))
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
